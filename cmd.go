package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// badArgsMessage is printed verbatim (leading space included) whenever
// the selector is missing or unknown. Scripts at both facilities match
// on this exact line, so it stays frozen even when extra selectors are
// configured.
const badArgsMessage = " --> Bad arguments, must specify 'lcls' or 'facet'"

type launcher struct {
	transport transport

	logfile    string
	configPath string

	table    []facility
	exitCode int
}

func newRootCommand(l *launcher) *cobra.Command {
	root := &cobra.Command{
		Use:   "rtbsa-ssh <lcls|facet>",
		Short: "Start the real-time BSA display on a facility server",
		Long: `rtbsa-ssh opens an interactive ssh session to the selected facility's
physics server and starts the real-time BSA display there. All session
output and authentication is handled by the system ssh client.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Unknown flags fall through to the selector check, so
		// flag-shaped arguments get the frozen diagnostic instead of
		// cobra's parse error.
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogging(l.logfile); err != nil {
				return err
			}

			table, err := loadFacilityTable(l.configPath)
			if err != nil {
				return err
			}

			l.table = table
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return l.launch(cmd.Context(), cmd, args)
		},
	}

	root.PersistentFlags().StringVar(&l.logfile, "logfile", "", "If set, logs will be written to this file.")
	root.PersistentFlags().StringVar(&l.configPath, "config", "", "Optional YAML file overriding the facility table.")

	// facilities is the only word carved out of the selector space;
	// keep cobra's implicit help command from widening it.
	root.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})

	root.AddCommand(newFacilitiesCommand(l))

	return root
}

// launch consults only the first positional argument. A missing
// argument behaves like an unknown selector: one diagnostic line on
// stdout and a zero exit code, with no session attempted.
func (l *launcher) launch(ctx context.Context, cmd *cobra.Command, args []string) error {
	selector := ""
	if len(args) > 0 {
		selector = args[0]
	}

	fac, ok := lookupFacility(l.table, selector)
	if !ok {
		slog.Info("rejected selector", "selector", selector)
		fmt.Fprintln(cmd.OutOrStdout(), badArgsMessage)
		l.exitCode = 0
		return nil
	}

	slog.Info("resolved facility", "selector", selector, "target", fac.identity())

	code, err := l.transport.openInteractiveSession(ctx, fac.identity(), remoteCommand)
	if err != nil {
		return err
	}

	l.exitCode = code
	return nil
}

func newFacilitiesCommand(l *launcher) *cobra.Command {
	return &cobra.Command{
		Use:   "facilities",
		Short: "List known facility selectors and their servers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range l.table {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", f.selector, f.identity())
			}

			return nil
		},
	}
}

func run(ctx context.Context, args []string) (int, error) {
	l := &launcher{transport: sshTransport{}}

	root := newRootCommand(l)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		return 1, err
	}

	return l.exitCode, nil
}

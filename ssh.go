package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"golang.org/x/term"
)

// transport opens an interactive remote session and reports the exit
// code the session ended with.
type transport interface {
	openInteractiveSession(ctx context.Context, identity, command string) (int, error)
}

// sshTransport shells out to the system ssh client so the operator's
// ssh configuration (kerberos, X forwarding, host aliases) applies
// unchanged.
type sshTransport struct{}

func (sshTransport) openInteractiveSession(ctx context.Context, identity, command string) (int, error) {
	args := sshArgs(identity, command, term.IsTerminal(int(os.Stdin.Fd())))

	cmd := exec.CommandContext(ctx, "ssh", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stdout
	cmd.Stdin = os.Stdin

	slog.Info("opening session", "target", identity, "args", cmd.Args)

	return sessionExitCode(identity, cmd.Run())
}

// sshArgs builds the ssh argv. The remote command is a GUI launch and
// needs a pseudo-terminal on the remote side, so allocation is forced
// with -tt when local stdin is not itself a terminal.
func sshArgs(identity, command string, interactive bool) []string {
	ttyFlag := "-tt"
	if interactive {
		ttyFlag = "-t"
	}

	return []string{ttyFlag, identity, command}
}

func sessionExitCode(identity string, err error) (int, error) {
	if err == nil {
		return 0, nil
	}

	var exiterr *exec.ExitError
	if errors.As(err, &exiterr) {
		// terminated by Control-C so ignoring
		if exiterr.ExitCode() == 130 {
			return 0, nil
		}

		return exiterr.ExitCode(), nil
	}

	return 1, fmt.Errorf("error while connecting to %s: %w", identity, err)
}

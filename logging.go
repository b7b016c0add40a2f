package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// See https://github.com/golang/go/issues/62005 for details about why
// we have this. When that issue is closed, we should be able to use
// slog's built in discard handler.
type discardHandler struct {
	slog.TextHandler
}

func (d *discardHandler) Enabled(context.Context, slog.Level) bool {
	return false
}

// setupLogging routes slog to the given file, or discards everything
// when no logfile was requested. Nothing is ever logged to the
// terminal; the session output belongs to ssh alone.
func setupLogging(logfile string) error {
	var l *slog.Logger

	if logfile != "" {
		f, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return fmt.Errorf("couldn't open logfile %q: %w", logfile, err)
		}

		l = slog.New(slog.NewTextHandler(f, nil))
	} else {
		l = slog.New(&discardHandler{})
	}

	slog.SetDefault(l)
	return nil
}

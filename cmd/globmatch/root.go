package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/globmatch/cmd/globmatch/opts"
	"github.com/walteh/globmatch/cmd/globmatch/ui"
)

var (
	// Flags
	debug bool
)

// newRootOpts creates a new rootOpts with initialized dependencies
func newRootOpts(ctx context.Context) *opts.RootOpts {
	return &opts.RootOpts{
		UserLogger: ui.NewUserLogger(ctx),
	}
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog and returns a context carrying the logger
func setupLogging(ctx context.Context) context.Context {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).With().Timestamp().Logger()

	return logger.WithContext(ctx)
}

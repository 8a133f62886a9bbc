package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/globmatch/cmd/globmatch/commands"
	"github.com/walteh/globmatch/cmd/globmatch/ui"
)

func main() {
	// Setup logging
	ctx := setupLogging(context.Background())

	// Create user logger
	userLogger := ui.NewUserLogger(ctx)

	// Create root command
	rootCmd := &cobra.Command{
		Use:   "globmatch",
		Short: "Match filesystem paths against glob patterns",
		Long: `globmatch tests paths against glob patterns with ** support,
walks directory trees, and applies gitignore-style rule files
to decide which paths are included.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Create root options
	opts := newRootOpts(ctx)

	// Add commands
	rootCmd.AddCommand(
		commands.NewMatchCmd(opts),
		commands.NewWalkCmd(opts),
		commands.NewCheckCmd(opts),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		userLogger.LogValidation(false, "Command failed", err)
		os.Exit(1)
	}
}

package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/globmatch/cmd/globmatch/opts"
	"github.com/walteh/globmatch/pkg/glob"
	"github.com/walteh/globmatch/pkg/ruleset"
	"github.com/walteh/globmatch/pkg/walker"
	"gitlab.com/tozd/go/errors"
)

// NewWalkCmd creates a new walk command
func NewWalkCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		matchPattern string
		rulesFile    string
		excludeDirs  []string
	)

	cmd := &cobra.Command{
		Use:   "walk [ROOT...]",
		Short: "Walk directory trees and list matching files",
		Long: `Walk lists every file under the given roots (default ".") whose
root-relative path matches --match, skipping well-known junk
directories. A gitignore-style rule file can be applied with --rules.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "walk").Logger().WithContext(ctx)

			roots := args
			if len(roots) == 0 {
				roots = []string{"."}
			}

			w := &walker.Walker{ExcludeDirs: excludeDirs}

			if matchPattern != "" {
				w.Pattern = glob.Compile(matchPattern)
			}

			if rulesFile != "" {
				f, err := os.Open(rulesFile)
				if err != nil {
					return errors.Errorf("opening rules file: %w", err)
				}
				defer f.Close()

				rules, err := ruleset.ParseRules(f)
				if err != nil {
					return errors.Errorf("parsing rules file: %w", err)
				}

				matcher, err := ruleset.NewMatcher(rules, ruleset.Options{})
				if err != nil {
					return errors.Errorf("compiling rules: %w", err)
				}
				w.Rules = matcher
			}

			files, err := w.WalkAll(ctx, roots...)
			if err != nil {
				return errors.Errorf("walking roots: %w", err)
			}

			for _, file := range files {
				fmt.Fprintln(cmd.OutOrStdout(), file)
			}

			zerolog.Ctx(ctx).Debug().Int("files", len(files)).Msg("walk complete")
			return nil
		},
	}

	cmd.Flags().StringVarP(&matchPattern, "match", "m", "", "glob pattern files must match")
	cmd.Flags().StringVarP(&rulesFile, "rules", "r", "", "gitignore-style rule file to apply")
	cmd.Flags().StringSliceVarP(&excludeDirs, "exclude-dir", "e", walker.DefaultExcludeDirs, "directory names to prune")

	return cmd
}

package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/globmatch/cmd/globmatch/opts"
	"github.com/walteh/globmatch/cmd/globmatch/ui"
	"github.com/walteh/globmatch/pkg/config"
	"github.com/walteh/globmatch/pkg/remote"
	"github.com/walteh/globmatch/pkg/ruleset"
	"github.com/walteh/globmatch/pkg/walker"
	"gitlab.com/tozd/go/errors"

	// Register the github rule-file provider.
	_ "github.com/walteh/globmatch/pkg/remote/github"
)

// NewCheckCmd creates a new check command
func NewCheckCmd(opts *opts.RootOpts) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "check [ROOT...]",
		Short: "Walk configured roots and report the rule decision for every file",
		Long: `Check loads a config file, fetches any remote rule files, walks the
configured roots (or the given ROOT arguments) and reports which
files the combined rules include. Remote rules apply first, local
rules override them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "check").Logger().WithContext(ctx)

			cfg, err := config.Load(ctx, configFile)
			if err != nil {
				return errors.Errorf("loading config: %w", err)
			}

			var rules []ruleset.Rule
			for _, remoteRule := range cfg.RemoteRules {
				fetched, err := remote.FetchRules(ctx, remoteRule)
				if err != nil {
					return errors.Errorf("fetching rules from %s: %w", remoteRule.Repo, err)
				}
				rules = append(rules, fetched...)
			}

			local, err := cfg.LocalRules()
			if err != nil {
				return errors.Errorf("reading local rules: %w", err)
			}
			rules = append(rules, local...)

			matcher, err := ruleset.NewMatcher(rules, ruleset.Options{})
			if err != nil {
				return errors.Errorf("compiling rules: %w", err)
			}

			roots := cfg.Roots
			if len(args) > 0 {
				roots = args
			}

			excludeDirs := cfg.ExcludeDirs
			if len(excludeDirs) == 0 {
				excludeDirs = walker.DefaultExcludeDirs
			}

			w := &walker.Walker{ExcludeDirs: excludeDirs}
			files, err := w.WalkAll(ctx, roots...)
			if err != nil {
				return errors.Errorf("walking roots: %w", err)
			}

			included := 0
			for _, file := range files {
				res := matcher.Decide(file)
				if res.Included {
					included++
				}
				opts.UserLogger.LogDecision(ui.Decision{
					Path:      file,
					Included:  res.Included,
					RuleIndex: res.RuleIndex,
				})
			}

			opts.UserLogger.LogSummary(included, len(files))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", ".globmatch.yaml", "config file path")

	return cmd
}

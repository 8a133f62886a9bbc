package commands

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/globmatch/cmd/globmatch/opts"
	"github.com/walteh/globmatch/pkg/glob"
	"github.com/walteh/globmatch/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// NewMatchCmd creates a new match command
func NewMatchCmd(opts *opts.RootOpts) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "match PATTERN PATH [PATH...]",
		Short: "Test paths against a glob pattern",
		Long: `Match tests each PATH against PATTERN and reports the decision.
Patterns are matched segment by segment: * and ? never cross a
path separator, ** spans any number of segments. Exits non-zero
when no path matched, so --quiet works for scripting.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "match").Logger().WithContext(ctx)

			pattern := glob.Compile(args[0])
			paths := args[1:]

			console := cmd.OutOrStdout()
			if quiet {
				console = io.Discard
			}

			logger := log.New(console, zerolog.Disabled)
			logger.Header(fmt.Sprintf("matching %d paths against %s", len(paths), pattern))

			for _, path := range paths {
				logger.LogMatch(ctx, log.MatchEntry{
					Path:      path,
					Pattern:   pattern.String(),
					Matched:   pattern.Match(path),
					RuleIndex: -1,
				})
			}

			matched := logger.Matched()
			if matched == 0 {
				logger.Warning("no paths matched")
				return errors.New("no paths matched")
			}

			logger.Success(fmt.Sprintf("%d of %d paths matched", matched, len(paths)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress output, use the exit status only")

	return cmd
}

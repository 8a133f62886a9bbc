package walker

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/globmatch/pkg/glob"
	"github.com/walteh/globmatch/pkg/ruleset"
)

// writeTree creates the given relative files (slash-separated) under
// dir, with parent directories as needed.
func writeTree(t *testing.T, dir string, files ...string) {
	t.Helper()

	for _, f := range files {
		path := filepath.Join(dir, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}
}

func TestWalker_Walk(t *testing.T) {
	tests := []struct {
		name   string
		files  []string
		walker Walker
		want   []string
	}{
		{
			name:   "zero_value_yields_everything",
			files:  []string{"a.txt", "sub/b.txt"},
			walker: Walker{},
			want:   []string{"a.txt", "sub/b.txt"},
		},
		{
			name:  "pattern_filters_files",
			files: []string{"main.go", "main_test.go", "docs/readme.md", "pkg/util/util.go"},
			walker: Walker{
				Pattern: glob.Compile("**/*.go"),
			},
			want: []string{"main.go", "main_test.go", "pkg/util/util.go"},
		},
		{
			name:  "excluded_dirs_are_pruned",
			files: []string{"a.go", ".git/objects/junk.go", "vendor/lib/lib.go", "pkg/b.go"},
			walker: Walker{
				ExcludeDirs: DefaultExcludeDirs,
			},
			want: []string{"a.go", "pkg/b.go"},
		},
		{
			name:  "rules_filter_files",
			files: []string{"keep.go", "drop.log", "sub/also.log", "sub/fine.go"},
			walker: Walker{
				Rules: mustMatcher(t, []ruleset.Rule{
					{Pattern: "*.log", Action: ruleset.ActionExclude},
				}),
			},
			want: []string{"keep.go", "sub/fine.go"},
		},
		{
			name:  "pattern_and_rules_combine",
			files: []string{"a/x.go", "a/x.log", "b/y.go"},
			walker: Walker{
				Pattern: glob.Compile("a/**"),
				Rules: mustMatcher(t, []ruleset.Rule{
					{Pattern: "*.log", Action: ruleset.ActionExclude},
				}),
			},
			want: []string{"a/x.go"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeTree(t, dir, tt.files...)

			got, err := tt.walker.Walk(context.Background(), dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func mustMatcher(t *testing.T, rules []ruleset.Rule) *ruleset.Matcher {
	t.Helper()

	m, err := ruleset.NewMatcher(rules, ruleset.Options{})
	require.NoError(t, err)
	return m
}

func TestWalker_Walk_MissingRoot(t *testing.T) {
	w := Walker{}
	_, err := w.Walk(context.Background(), filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
}

func TestWalker_Walk_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, "a.txt")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := Walker{}
	_, err := w.Walk(ctx, dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWalker_WalkAll(t *testing.T) {
	root1 := t.TempDir()
	root2 := t.TempDir()
	writeTree(t, root1, "a.go", "skip.log")
	writeTree(t, root2, "b.go")

	w := Walker{Pattern: glob.Compile("**/*.go")}
	got, err := w.WalkAll(context.Background(), root1, root2)
	require.NoError(t, err)

	want := []string{
		filepath.ToSlash(filepath.Join(root1, "a.go")),
		filepath.ToSlash(filepath.Join(root2, "b.go")),
	}
	assert.Equal(t, want, got)
}

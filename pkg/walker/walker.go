// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package walker enumerates files under directory trees and filters
// them through glob patterns and rule sets. It is the traversal side of
// the matcher: package glob decides, walker feeds it candidates.
package walker

import (
	"context"
	"io/fs"
	"path/filepath"
	"slices"

	"github.com/rs/zerolog"
	"github.com/walteh/globmatch/pkg/glob"
	"github.com/walteh/globmatch/pkg/ruleset"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// DefaultExcludeDirs are directory names that are almost never wanted
// when scanning a source tree for files.
var DefaultExcludeDirs = []string{
	".git",
	".hg",
	".svn",
	".idea",
	".vscode",
	".cache",
	"node_modules",
	"vendor",
}

// Walker filters a directory tree. All fields are optional; the zero
// value yields every file under the root.
type Walker struct {
	// ExcludeDirs are directory names pruned together with their
	// children. Compared by name, not by path.
	ExcludeDirs []string
	// Pattern, when set, keeps only files whose root-relative
	// slash-separated path matches.
	Pattern *glob.Pattern
	// Rules, when set, keeps only files the rule matcher includes.
	// Applied after Pattern.
	Rules *ruleset.Matcher
}

// Walk returns the root-relative slash-separated paths of all files
// under root that pass the walker's filters, in lexical order.
func (w *Walker) Walk(ctx context.Context, root string) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && slices.Contains(w.ExcludeDirs, d.Name()) {
				logger.Debug().Str("dir", path).Msg("pruning excluded directory")
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if w.Pattern != nil && !w.Pattern.Match(rel) {
			return nil
		}

		if w.Rules != nil && !w.Rules.Included(rel) {
			return nil
		}

		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("walking %s: %w", root, err)
	}

	logger.Debug().Str("root", root).Int("files", len(files)).Msg("walk complete")
	return files, nil
}

// WalkAll walks several roots concurrently and returns the combined
// matches joined back onto their roots, in root order.
func (w *Walker) WalkAll(ctx context.Context, roots ...string) ([]string, error) {
	g, ctx := errgroup.WithContext(ctx)
	perRoot := make([][]string, len(roots))

	for i, root := range roots {
		i, root := i, root
		g.Go(func() error {
			files, err := w.Walk(ctx, root)
			if err != nil {
				return err
			}

			joined := make([]string, len(files))
			for j, f := range files {
				joined[j] = filepath.ToSlash(filepath.Join(root, f))
			}

			perRoot[i] = joined
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []string
	for _, files := range perRoot {
		all = append(all, files...)
	}

	return all, nil
}

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

// Package remote fetches rule files from remote repositories so that
// shared ignore lists (for example the github/gitignore templates) can
// feed a ruleset matcher without being vendored locally.
package remote

import (
	"context"
	"io"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/globmatch/pkg/config"
	"github.com/walteh/globmatch/pkg/ruleset"
	"gitlab.com/tozd/go/errors"
)

// Provider retrieves rule files from one kind of remote source.
type Provider interface {
	// Name returns the registry name of the provider (e.g. "github")
	Name() string
	// GetRuleFile returns the raw content of the rule file the args
	// point at. The caller owns the returned reader.
	GetRuleFile(ctx context.Context, args config.RemoteRuleArgs) (io.ReadCloser, error)
}

// Factory builds a provider. Registered by provider packages in init.
type Factory func(ctx context.Context) (Provider, error)

var registry = map[string]Factory{}

// Register registers a provider factory under a name.
func Register(name string, factory Factory) {
	registry[name] = factory
}

// NewProvider builds the named provider.
func NewProvider(ctx context.Context, name string) (Provider, error) {
	factory, ok := registry[name]
	if !ok {
		options := make([]string, 0, len(registry))
		for k := range registry {
			options = append(options, k)
		}
		sort.Strings(options)

		return nil, errors.Errorf("provider %s not found, options: %s", name, strings.Join(options, ", "))
	}

	return factory(ctx)
}

// FetchRules downloads and parses the rule file the args point at.
func FetchRules(ctx context.Context, args config.RemoteRuleArgs) ([]ruleset.Rule, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().
		Str("provider", args.Provider).
		Str("repo", args.Repo).
		Str("path", args.Path).
		Str("ref", args.Ref).
		Msg("fetching remote rules")

	p, err := NewProvider(ctx, args.Provider)
	if err != nil {
		return nil, errors.Errorf("creating provider: %w", err)
	}

	rc, err := p.GetRuleFile(ctx, args)
	if err != nil {
		return nil, errors.Errorf("getting rule file: %w", err)
	}
	defer rc.Close()

	rules, err := ruleset.ParseRules(rc)
	if err != nil {
		return nil, errors.Errorf("parsing rule file: %w", err)
	}

	logger.Debug().Int("rules", len(rules)).Msg("remote rules fetched")
	return rules, nil
}

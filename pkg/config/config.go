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

// Package config loads globmatch run configuration from YAML, JSON, or
// HCL files. The format is picked by a parser registry keyed on the
// file extension.
package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/globmatch/pkg/ruleset"
	"gitlab.com/tozd/go/errors"
)

// Parser is the interface for config parsers
type Parser interface {
	// Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

// parsers is the list of available parsers
var parsers []Parser

// Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// RuleArgs is one include/exclude rule as written in a config file.
type RuleArgs struct {
	Pattern string `json:"pattern" yaml:"pattern" hcl:"pattern"`
	Action  string `json:"action" yaml:"action" hcl:"action"`
}

// RemoteRuleArgs points at a rule file in a remote repository, fetched
// through the provider registry in pkg/remote.
type RemoteRuleArgs struct {
	Provider string `json:"provider,omitempty" yaml:"provider,omitempty" hcl:"provider,optional"` // defaults to github
	Repo     string `json:"repo" yaml:"repo" hcl:"repo"`                                          // e.g. github.com/github/gitignore
	Path     string `json:"path" yaml:"path" hcl:"path"`                                          // file path within the repo
	Ref      string `json:"ref,omitempty" yaml:"ref,omitempty" hcl:"ref,optional"`                // branch or tag, defaults to main
}

// Config is the complete run configuration.
type Config struct {
	Roots       []string         `json:"roots,omitempty" yaml:"roots,omitempty" hcl:"roots,optional"`
	ExcludeDirs []string         `json:"exclude_dirs,omitempty" yaml:"exclude_dirs,omitempty" hcl:"exclude_dirs,optional"`
	Rules       []RuleArgs       `json:"rules,omitempty" yaml:"rules,omitempty" hcl:"rule,block"`
	RemoteRules []RemoteRuleArgs `json:"remote_rules,omitempty" yaml:"remote_rules,omitempty" hcl:"remote_rules,block"`
}

// Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration and fills in defaults.
func (cfg *Config) Validate() error {
	if len(cfg.Roots) == 0 {
		cfg.Roots = []string{"."}
	}

	for i, rule := range cfg.Rules {
		if strings.TrimSpace(rule.Pattern) == "" {
			return errors.Errorf("rules[%d].pattern is required", i)
		}
		if _, err := ruleset.ParseAction(rule.Action); err != nil {
			return errors.Errorf("rules[%d]: %w", i, err)
		}
	}

	for i := range cfg.RemoteRules {
		remote := &cfg.RemoteRules[i]
		if remote.Repo == "" {
			return errors.Errorf("remote_rules[%d].repo is required", i)
		}
		if remote.Path == "" {
			return errors.Errorf("remote_rules[%d].path is required", i)
		}
		if remote.Provider == "" {
			remote.Provider = "github"
		}
		if remote.Ref == "" {
			remote.Ref = "main"
		}
	}

	return nil
}

// LocalRules converts the config's inline rules to ruleset rules.
func (cfg *Config) LocalRules() ([]ruleset.Rule, error) {
	rules := make([]ruleset.Rule, 0, len(cfg.Rules))
	for i, r := range cfg.Rules {
		action, err := ruleset.ParseAction(r.Action)
		if err != nil {
			return nil, errors.Errorf("rules[%d]: %w", i, err)
		}

		rules = append(rules, ruleset.Rule{
			Pattern: r.Pattern,
			Action:  action,
		})
	}

	return rules, nil
}

// String returns a short description of the config.
func (cfg *Config) String() string {
	return fmt.Sprintf("%d roots, %d rules, %d remote rule sources",
		len(cfg.Roots), len(cfg.Rules), len(cfg.RemoteRules))
}

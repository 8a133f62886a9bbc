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

// Package ruleset layers ordered include/exclude rules on top of the
// glob matcher. Rules are evaluated in order and the last matching rule
// wins, gitignore style.
package ruleset

import (
	"github.com/walteh/globmatch/pkg/glob"
	"gitlab.com/tozd/go/errors"
)

// Action is the decision a matching rule applies to a path.
type Action uint8

const (
	// ActionUnknown is the unset placeholder, never valid in a rule.
	ActionUnknown Action = iota
	// ActionExclude drops the matching path.
	ActionExclude
	// ActionInclude keeps the matching path.
	ActionInclude
)

// String returns the config-file spelling of the action.
func (a Action) String() string {
	switch a {
	case ActionInclude:
		return "include"
	case ActionExclude:
		return "exclude"
	default:
		return "unknown"
	}
}

// ParseAction converts a config-file spelling into an Action.
func ParseAction(s string) (Action, error) {
	switch s {
	case "include":
		return ActionInclude, nil
	case "exclude":
		return ActionExclude, nil
	default:
		return ActionUnknown, errors.Errorf("unknown action %q (want include or exclude)", s)
	}
}

func (a Action) valid() bool {
	return a == ActionInclude || a == ActionExclude
}

// Rule is one user-visible path rule.
type Rule struct {
	// Pattern is a path-structured glob, see package glob. A pattern
	// without a separator matches the final path segment only.
	Pattern string
	// Action is applied when the rule matches.
	Action Action
}

// Options controls matcher behavior.
type Options struct {
	// DefaultAction applies when no rule matched. Defaults to include.
	DefaultAction Action
}

// Result is the decision produced for one path.
type Result struct {
	// Included is the final decision.
	Included bool
	// Matched reports whether any rule matched at all.
	Matched bool
	// RuleIndex is the index of the winning rule, -1 when none matched.
	RuleIndex int
}

// Matcher evaluates paths against compiled ordered rules. Safe for
// concurrent use once built.
type Matcher struct {
	compiled      []compiledRule
	defaultAction Action
}

type compiledRule struct {
	pattern *glob.Pattern
	action  Action
	// baseOnly means the pattern has no separator and matches the
	// final segment instead of the whole path.
	baseOnly bool
}

// NewMatcher compiles ordered rules into a matcher.
func NewMatcher(rules []Rule, opts Options) (*Matcher, error) {
	if !opts.DefaultAction.valid() {
		opts.DefaultAction = ActionInclude
	}

	compiled := make([]compiledRule, 0, len(rules))
	for i, rule := range rules {
		if !rule.Action.valid() {
			return nil, errors.Errorf("rule %d: invalid action", i)
		}

		p := glob.Compile(rule.Pattern)
		if p.String() == "" {
			return nil, errors.Errorf("rule %d: empty pattern", i)
		}

		compiled = append(compiled, compiledRule{
			pattern:  p,
			action:   rule.Action,
			baseOnly: !p.HasSeparator(),
		})
	}

	return &Matcher{
		compiled:      compiled,
		defaultAction: opts.DefaultAction,
	}, nil
}

// Decide returns the deterministic include/exclude decision for one
// path. The last matching rule wins; the default action applies when no
// rule matched.
func (m *Matcher) Decide(path string) Result {
	res := Result{
		Included:  m.defaultAction == ActionInclude,
		Matched:   false,
		RuleIndex: -1,
	}

	for i := range m.compiled {
		if !m.compiled[i].matches(path) {
			continue
		}

		res.Matched = true
		res.RuleIndex = i
		res.Included = m.compiled[i].action == ActionInclude
	}

	return res
}

// Included reports whether the path is included under the decision policy.
func (m *Matcher) Included(path string) bool {
	return m.Decide(path).Included
}

// Excluded reports whether the path is excluded under the decision policy.
func (m *Matcher) Excluded(path string) bool {
	return !m.Decide(path).Included
}

// Len returns the number of compiled rules.
func (m *Matcher) Len() int {
	return len(m.compiled)
}

func (r *compiledRule) matches(path string) bool {
	if r.baseOnly {
		return r.pattern.MatchBase(path)
	}

	return r.pattern.Match(path)
}

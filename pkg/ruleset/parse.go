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

package ruleset

import (
	"bufio"
	"io"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ParseRules reads gitignore-like rule lines:
//
//   - blank lines and "#" comments are skipped
//   - a leading "!" makes the rule an include rule
//   - plain lines make exclude rules
//   - `\#` and `\!` escape a leading comment or negation token
func ParseRules(r io.Reader) ([]Rule, error) {
	s := bufio.NewScanner(r)
	var rules []Rule

	for s.Scan() {
		line := strings.TrimSpace(strings.TrimRight(s.Text(), "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, `\#`) {
			line = line[1:]
		}

		action := ActionExclude
		if strings.HasPrefix(line, "!") {
			action = ActionInclude
			line = line[1:]
		} else if strings.HasPrefix(line, `\!`) {
			line = line[1:]
		}

		if line == "" {
			continue
		}

		rules = append(rules, Rule{
			Pattern: line,
			Action:  action,
		})
	}

	if err := s.Err(); err != nil {
		return nil, errors.Errorf("scanning rules: %w", err)
	}

	return rules, nil
}

// ParseRulesString parses rules from an in-memory string.
func ParseRulesString(src string) ([]Rule, error) {
	return ParseRules(strings.NewReader(src))
}

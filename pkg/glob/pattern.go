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

package glob

import "strings"

// Pattern is a pre-split pattern for matching many paths. A nil
// Pattern matches nothing; use Compile.
type Pattern struct {
	source   string
	segments []string
}

// Compile splits a pattern once so it can be matched repeatedly.
// Compilation cannot fail: unterminated character classes degrade to
// literal "[" at match time.
func Compile(pattern string) *Pattern {
	return &Pattern{
		source:   pattern,
		segments: splitSegments(pattern),
	}
}

// Match reports whether the slash-separated path matches the pattern.
func (p *Pattern) Match(pathname string) bool {
	if p == nil {
		return false
	}

	return matchSegments(splitSegments(pathname), p.segments)
}

// MatchBase reports whether the final segment of the path matches.
// Useful for bare-name patterns such as "*.log".
func (p *Pattern) MatchBase(pathname string) bool {
	if p == nil || len(p.segments) == 0 {
		return false
	}

	segs := splitSegments(pathname)
	if len(segs) == 0 {
		return false
	}

	return matchSegments(segs[len(segs)-1:], p.segments)
}

// HasSeparator reports whether the source pattern spans more than one
// segment.
func (p *Pattern) HasSeparator() bool {
	return p != nil && strings.Contains(strings.TrimSuffix(p.source, "/"), "/")
}

// String returns the original pattern source.
func (p *Pattern) String() string {
	if p == nil {
		return ""
	}

	return p.source
}

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

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// doubleStar is the pattern segment that matches zero or more path segments.
const doubleStar = "**"

// Match reports whether the slash-separated path matches the pattern.
//
// The pattern is structured like a filesystem path: each segment is a
// shell glob ("*", "?", "[seq]", "[!seq]") that must match exactly one
// path segment, and the special segment "**" matches any number of
// whole segments, including zero. Matching is case-sensitive, and a
// non-"**" segment never matches across a separator.
//
// Match never fails: an unterminated character class matches its "["
// literally while the rest of the segment keeps its glob meaning, an
// empty pattern matches nothing, and a trailing separator on the
// pattern is ignored.
func Match(pathname, pattern string) bool {
	return matchSegments(splitSegments(pathname), splitSegments(pattern))
}

// matchSegments consumes both segment lists in lockstep from the front.
//
// Runs of "**" collapse into one and resolve greedily: the first path
// segment matching the pattern segment that follows the run wins, and a
// later mismatch is final. There is no backtracking across "**" regions.
func matchSegments(pathSegs, patSegs []string) bool {
	pi, gi := 0, 0 // cursors into pathSegs, patSegs

	for {
		if gi == len(patSegs) {
			return pi == len(pathSegs)
		}

		pat := patSegs[gi]
		gi++

		if pat == doubleStar && pi == len(pathSegs) {
			// "**" happily consumes the nothing that is left.
			return true
		}

		if pi == len(pathSegs) {
			return false
		}

		seg := pathSegs[pi]
		pi++

		if pat != doubleStar {
			if !matchSegment(pat, seg) {
				return false
			}
			continue
		}

		// Collapse adjacent "**" segments, they are equivalent to one.
		for gi < len(patSegs) && patSegs[gi] == doubleStar {
			gi++
		}

		if gi == len(patSegs) {
			// Trailing "**" absorbs whatever is left, including nothing.
			return true
		}

		pat = patSegs[gi]
		gi++

		// Greedy scan: "**" swallows path segments until the first one
		// matching the segment after the run.
		for !matchSegment(pat, seg) {
			if pi == len(pathSegs) {
				return false
			}
			seg = pathSegs[pi]
			pi++
		}
	}
}

// matchSegment matches one glob segment against one path segment.
// An unterminated character class demotes its "[" to a literal while
// the rest of the segment keeps its glob meaning, fnmatch style.
func matchSegment(pattern, segment string) bool {
	if pattern == segment {
		return true
	}

	ok, err := doublestar.Match(pattern, segment)
	if err != nil {
		ok, err = doublestar.Match(escapeUnterminatedClasses(pattern), segment)
		if err != nil {
			return false
		}
	}

	return ok
}

// escapeUnterminatedClasses rewrites every "[" that never finds its
// closing "]" into an escaped literal. A class body may negate with "!"
// or "^" and may contain "]" as its first member.
func escapeUnterminatedClasses(pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern) + 1)

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]

		if c == '\\' && i+1 < len(pattern) {
			b.WriteByte(c)
			b.WriteByte(pattern[i+1])
			i++
			continue
		}

		if c != '[' {
			b.WriteByte(c)
			continue
		}

		j := i + 1
		if j < len(pattern) && (pattern[j] == '!' || pattern[j] == '^') {
			j++
		}
		if j < len(pattern) && pattern[j] == ']' {
			j++
		}
		for j < len(pattern) && pattern[j] != ']' {
			j++
		}

		if j == len(pattern) {
			b.WriteString(`\[`)
			continue
		}

		b.WriteString(pattern[i : j+1])
		i = j
	}

	return b.String()
}

// splitSegments splits a slash-separated path or pattern into segments.
// The root is kept as a "/" segment for absolute inputs; empty and "."
// components (duplicate, leading, or trailing separators) are dropped.
func splitSegments(s string) []string {
	if s == "" {
		return nil
	}

	var segs []string
	if s[0] == '/' {
		segs = append(segs, "/")
	}

	for _, seg := range strings.Split(s, "/") {
		if seg == "" || seg == "." {
			continue
		}
		segs = append(segs, seg)
	}

	return segs
}

// Package glob matches filesystem paths against path-structured glob
// patterns.
//
//	pattern:  src/**/testdata/*.json
//	path:     src/parser/ast/testdata/empty.json   ✓
//	path:     src/parser/testdata.json             ✗
//
// 🎯 Purpose:
// - Segment-wise matching: one glob segment consumes exactly one path segment
// - "**" segments consume any number of path segments, including zero
// - Pure predicate: no I/O, no errors, safe for concurrent use
//
// 🔄 Flow:
// 1. Path and pattern are split into segments on "/"
// 2. Segments are consumed in lockstep from the front
// 3. "**" runs collapse and resolve greedily against the next real segment
// 4. Every other segment is matched as a shell glob (*, ?, [seq], [!seq])
//
// 📝 Design Philosophy:
// The "**" resolution is deliberately greedy and never backtracks: once
// the segment after a "**" run has claimed a path segment, a later
// mismatch fails the whole match instead of retrying a deeper split.
// Callers filtering directory trees depend on this first-match behavior
// being cheap and predictable, so do not "fix" it into a full search.
package glob

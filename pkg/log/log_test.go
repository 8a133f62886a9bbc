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

package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_matched_entry",
			op: func(t *testing.T, logger *Logger) {
				logger.LogMatch(context.Background(), MatchEntry{
					Path:      "src/main.go",
					Pattern:   "src/**/*.go",
					Matched:   true,
					RuleIndex: -1,
				})
			},
			wantLogs: []string{"✓", "src/main.go", "src/**/*.go"},
		},
		{
			name: "log_unmatched_entry",
			op: func(t *testing.T, logger *Logger) {
				logger.LogMatch(context.Background(), MatchEntry{
					Path:      "docs/readme.md",
					Pattern:   "src/**",
					Matched:   false,
					RuleIndex: -1,
				})
			},
			wantLogs: []string{"✗", "docs/readme.md"},
		},
		{
			name: "header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("matching 3 paths")
			},
			wantLogs: []string{"globmatch", "matching 3 paths"},
		},
		{
			name: "success",
			op: func(t *testing.T, logger *Logger) {
				logger.Success("2 of 3 paths matched")
			},
			wantLogs: []string{"✅", "2 of 3 paths matched"},
		},
		{
			name: "warning",
			op: func(t *testing.T, logger *Logger) {
				logger.Warning("no patterns given")
			},
			wantLogs: []string{"⚠️", "no patterns given"},
		},
		{
			name: "error",
			op: func(t *testing.T, logger *Logger) {
				logger.Error("walk failed")
			},
			wantLogs: []string{"❌", "walk failed"},
		},
		{
			name: "infof",
			op: func(t *testing.T, logger *Logger) {
				logger.Infof("fetched %d rules", 12)
			},
			wantLogs: []string{"ℹ️", "fetched 12 rules"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(&buf, zerolog.Disabled)

			tt.op(t, logger)

			out := buf.String()
			for _, want := range tt.wantLogs {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestLogger_Matched(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, zerolog.Disabled)

	logger.LogMatch(context.Background(), MatchEntry{Path: "a", Matched: true})
	logger.LogMatch(context.Background(), MatchEntry{Path: "b", Matched: false})
	logger.LogMatch(context.Background(), MatchEntry{Path: "c", Matched: true})

	assert.Equal(t, 2, logger.Matched())
}

func TestLogger_Context(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, zerolog.Disabled)

	ctx := NewContext(context.Background(), logger)
	require.Equal(t, logger, FromContext(ctx))

	assert.Panics(t, func() {
		FromContext(context.Background())
	})
}

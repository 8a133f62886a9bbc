package ui

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback about match decisions
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 🖼️ Decision represents the outcome for one walked path
type Decision struct {
	Path      string
	Included  bool
	RuleIndex int
}

// 📝 LogDecision logs one path decision with appropriate emoji and formatting
func (u *UserLogger) LogDecision(d Decision) {
	if d.Included {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✓"}).Println(d.Path)
		u.log.Info().Str("path", d.Path).Int("rule_index", d.RuleIndex).Msg("included")
	} else {
		pterm.Debug.WithPrefix(pterm.Prefix{Text: "✗"}).Println(d.Path)
		u.log.Debug().Str("path", d.Path).Int("rule_index", d.RuleIndex).Msg("excluded")
	}
}

// 📊 LogSummary logs the final include/exclude tally
func (u *UserLogger) LogSummary(included, total int) {
	msg := fmt.Sprintf("%d of %d paths included", included, total)
	pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"}).Println(msg)
	u.log.Info().Int("included", included).Int("total", total).Msg(msg)
}

// 🔍 LogValidation logs validation results
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		u.log.Info().Msg(description)
	} else {
		if err != nil {
			pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
			pterm.Error.Println(err)
			u.log.Error().Err(err).Msg(description)
		} else {
			pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(description)
			u.log.Warn().Msg(description)
		}
	}
}

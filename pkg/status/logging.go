package status

import (
	"fmt"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback about file changes
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(log zerolog.Logger) *UserLogger {
	return &UserLogger{log: log}
}

// 📝 LogFileResult prints a file result with appropriate prefix and color
func (u *UserLogger) LogFileResult(res FileResult) {
	relPath := filepath.Base(res.Path)

	var prefix, action string
	var printer *pterm.PrefixPrinter
	switch res.Status {
	case StatusCreated:
		prefix = "✨"
		action = "Created"
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: prefix})
		if res.Output != "" {
			relPath = filepath.Base(res.Output)
		}
	case StatusUpdated:
		prefix = "🔄"
		action = "Updated"
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: prefix})
	case StatusUnchanged:
		prefix = "⏭️"
		action = "Unchanged"
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: prefix})
	case StatusSkipped:
		prefix = "⏭️"
		action = "Skipped"
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: prefix})
	case StatusError:
		prefix = "❌"
		action = "Error"
		printer = pterm.Error.WithPrefix(pterm.Prefix{Text: prefix})
	default:
		prefix = "❔"
		action = "Unknown"
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: prefix})
	}

	msg := fmt.Sprintf("%s %s", action, relPath)
	if len(res.RulesFired) > 0 {
		msg += fmt.Sprintf(" (%d rules fired)", len(res.RulesFired))
	}

	if res.Err != nil {
		printer.Println(msg)
		pterm.Error.Println(res.Err)
		u.log.Error().Err(res.Err).Msg(msg) // Also log to zerolog for debugging
	} else {
		printer.Println(msg)
		u.log.Info().Msg(msg) // Also log to zerolog for debugging
	}
}

// 📊 LogRunStage logs a change of run stage
func (u *UserLogger) LogRunStage(description string) {
	printer := pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"})
	printer.Println(description)
	u.log.Info().Msg(description)
}

// Package status tracks the per-file outcome of a conversion run and turns
// it into user-facing output.
package status

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/walteh/convertrc/pkg/report"
)

// 📊 FileStatus represents the outcome of processing one file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusCreated              // a converted copy was written
	StatusUpdated              // the file was rewritten in place
	StatusUnchanged            // no rule fired
	StatusSkipped              // excluded or not relevant
	StatusError                // processing failed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusUpdated:
		return "updated"
	case StatusUnchanged:
		return "unchanged"
	case StatusSkipped:
		return "skipped"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// 📄 FileResult records what happened to one file
type FileResult struct {
	Path       string     // path of the processed file
	Output     string     // path written, when different from Path
	Kind       string     // "notebook" or "manifest"
	Status     FileStatus // outcome
	RulesFired []string   // names of the rewrite rules that fired
	Err        error      // set when Status is StatusError
}

// 🔧 Manager collects file results and mirrors them to the user logger
type Manager struct {
	user *UserLogger

	mu      sync.Mutex
	results []FileResult
}

// 🏭 NewManager creates a status manager
func NewManager(user *UserLogger) *Manager {
	return &Manager{user: user}
}

// 📝 Track records a file result and prints its status line
func (m *Manager) Track(ctx context.Context, res FileResult) {
	m.mu.Lock()
	m.results = append(m.results, res)
	m.mu.Unlock()

	m.user.LogFileResult(res)

	zerolog.Ctx(ctx).Debug().
		Str("path", res.Path).
		Str("kind", res.Kind).
		Str("status", res.Status.String()).
		Strs("rules", res.RulesFired).
		Err(res.Err).
		Msg("file processed")
}

// 📋 Results returns a copy of all recorded results
func (m *Manager) Results() []FileResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]FileResult, len(m.results))
	copy(out, m.results)
	return out
}

// 📊 Summary tallies the recorded results into a run summary
func (m *Manager) Summary() report.Summary {
	m.mu.Lock()
	defer m.mu.Unlock()

	var s report.Summary
	for _, res := range m.results {
		switch res.Status {
		case StatusCreated, StatusUpdated:
			if res.Kind == "manifest" {
				s.ManifestsUpdated++
			} else {
				s.NotebooksConverted++
			}
		case StatusUnchanged:
			s.Unchanged++
		case StatusSkipped:
			s.Skipped++
		case StatusError:
			s.Failures++
		}
	}
	return s
}

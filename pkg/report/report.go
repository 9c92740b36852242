// Package report renders the human-readable artifacts of a conversion run:
// the markdown scan report and the final run summary.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/convertrc/pkg/scan"
)

// 📊 Summary tallies the outcome of a run
type Summary struct {
	NotebooksConverted int
	ManifestsUpdated   int
	Unchanged          int
	Skipped            int
	Failures           int
}

// Failed reports whether the run should exit non-zero
func (s Summary) Failed() bool {
	return s.Failures > 0
}

// Render returns the end-of-run summary block
func (s Summary) Render() string {
	var b strings.Builder
	b.WriteString(strings.Repeat("=", 60) + "\n")
	b.WriteString("Conversion complete!\n")
	fmt.Fprintf(&b, "  - Converted %d notebooks\n", s.NotebooksConverted)
	fmt.Fprintf(&b, "  - Updated %d requirements files\n", s.ManifestsUpdated)
	if s.Unchanged > 0 {
		fmt.Fprintf(&b, "  - Left %d files unchanged\n", s.Unchanged)
	}
	if s.Skipped > 0 {
		fmt.Fprintf(&b, "  - Skipped %d files\n", s.Skipped)
	}
	if s.Failures > 0 {
		fmt.Fprintf(&b, "  - %d failures\n", s.Failures)
	}
	b.WriteString(strings.Repeat("=", 60) + "\n")
	return b.String()
}

// 📝 Render builds the markdown scan report for a set of use cases
func Render(useCases []scan.UseCase) string {
	var b strings.Builder
	b.WriteString("# Cohere Conversion Report\n\n")
	fmt.Fprintf(&b, "Total use cases scanned: %d\n\n", len(useCases))

	bedrock := 0
	for _, uc := range useCases {
		if uc.UsesBedrock {
			bedrock++
		}
	}
	fmt.Fprintf(&b, "Use cases with Bedrock: %d\n\n", bedrock)

	b.WriteString("## Use Cases\n\n")
	for _, uc := range useCases {
		fmt.Fprintf(&b, "### %s\n", uc.Name)
		fmt.Fprintf(&b, "- Notebooks: %d\n", len(uc.Notebooks))
		fmt.Fprintf(&b, "- Requirements files: %d\n", len(uc.Requirements))
		fmt.Fprintf(&b, "- Uses Bedrock: %s\n", mark(uc.UsesBedrock))

		if len(uc.Notebooks) > 0 {
			b.WriteString("\n**Notebooks:**\n")
			for _, nb := range uc.Notebooks {
				fmt.Fprintf(&b, "- %s\n", filepath.Base(nb))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// 💾 Write renders the scan report and writes it to path
func Write(path string, useCases []scan.UseCase) error {
	if err := os.WriteFile(path, []byte(Render(useCases)), 0644); err != nil {
		return errors.Errorf("writing report: %w", err)
	}
	return nil
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

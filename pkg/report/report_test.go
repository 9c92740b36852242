package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/convertrc/pkg/scan"
)

func sampleUseCases() []scan.UseCase {
	return []scan.UseCase{
		{
			Name:         "finance-assistant",
			Notebooks:    []string{"/samples/finance-assistant/lab1.ipynb", "/samples/finance-assistant/lab2.ipynb"},
			Requirements: []string{"/samples/finance-assistant/requirements.txt"},
			UsesBedrock:  true,
		},
		{
			Name:      "travel-planner",
			Notebooks: []string{"/samples/travel-planner/notebook.ipynb"},
		},
	}
}

func TestRender(t *testing.T) {
	out := Render(sampleUseCases())

	assert.Contains(t, out, "# Cohere Conversion Report")
	assert.Contains(t, out, "Total use cases scanned: 2")
	assert.Contains(t, out, "Use cases with Bedrock: 1")
	assert.Contains(t, out, "### finance-assistant")
	assert.Contains(t, out, "- Notebooks: 2")
	assert.Contains(t, out, "- Uses Bedrock: ✓")
	assert.Contains(t, out, "- Uses Bedrock: ✗")
	assert.Contains(t, out, "- lab1.ipynb")
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	require.NoError(t, Write(path, sampleUseCases()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "### travel-planner")
}

func TestSummary(t *testing.T) {
	s := Summary{NotebooksConverted: 3, ManifestsUpdated: 2, Unchanged: 4, Skipped: 1, Failures: 1}
	assert.True(t, s.Failed())

	out := s.Render()
	assert.Contains(t, out, "Converted 3 notebooks")
	assert.Contains(t, out, "Updated 2 requirements files")
	assert.Contains(t, out, "Left 4 files unchanged")
	assert.Contains(t, out, "Skipped 1 files")
	assert.Contains(t, out, "1 failures")

	assert.False(t, Summary{NotebooksConverted: 1}.Failed())
	assert.NotContains(t, Summary{}.Render(), "failures")
}

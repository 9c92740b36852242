package scan

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bedrockNotebook = `{"cells": [{"cell_type": "code", "source": ["model = BedrockModel(model_id=\"x\")\n"]}]}`
const plainNotebook = `{"cells": [{"cell_type": "code", "source": ["print('hi')\n"]}]}`

// writeTree builds a sample project layout under a temp root
func writeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	files := map[string]string{
		"finance-assistant/lab1.ipynb":                        bedrockNotebook,
		"finance-assistant/lab1_cohere.ipynb":                 plainNotebook,
		"finance-assistant/.draft.ipynb":                      bedrockNotebook,
		"finance-assistant/requirements.txt":                  "strands-agents==1.2.3\n",
		"finance-assistant/.ipynb_checkpoints/lab1-checkpoint.ipynb": bedrockNotebook,
		"travel-planner/notebook.ipynb":                       plainNotebook,
		"travel-planner/deploy/requirements.txt":              "requests\n",
		".hidden/secret.ipynb":                                plainNotebook,
		"README.md":                                           "readme",
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func TestScanner_Notebooks(t *testing.T) {
	root := writeTree(t)
	s := New(root, nil)

	notebooks, err := s.Notebooks(context.Background(), "_cohere")
	require.NoError(t, err)

	var names []string
	for _, nb := range notebooks {
		rel, relErr := filepath.Rel(root, nb)
		require.NoError(t, relErr)
		names = append(names, filepath.ToSlash(rel))
	}

	// checkpoints, hidden dirs and converted copies are excluded
	assert.Equal(t, []string{
		"finance-assistant/lab1.ipynb",
		"travel-planner/notebook.ipynb",
	}, names)
}

func TestScanner_Notebooks_KeepConverted(t *testing.T) {
	root := writeTree(t)
	s := New(root, nil)

	notebooks, err := s.Notebooks(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, notebooks, 3)
}

func TestScanner_Requirements(t *testing.T) {
	root := writeTree(t)
	s := New(root, nil)

	requirements, err := s.Requirements(context.Background())
	require.NoError(t, err)
	assert.Len(t, requirements, 2)
}

func TestScanner_UseCases(t *testing.T) {
	root := writeTree(t)
	s := New(root, nil)

	useCases, err := s.UseCases(context.Background(), "_cohere")
	require.NoError(t, err)
	require.Len(t, useCases, 2)

	assert.Equal(t, "finance-assistant", useCases[0].Name)
	assert.True(t, useCases[0].UsesBedrock)
	assert.Len(t, useCases[0].Notebooks, 1)
	assert.Len(t, useCases[0].Requirements, 1)

	assert.Equal(t, "travel-planner", useCases[1].Name)
	assert.False(t, useCases[1].UsesBedrock)
	assert.Len(t, useCases[1].Requirements, 1)
}

func TestScanner_HiddenFilesExcluded(t *testing.T) {
	// Hidden files are excluded like hidden directories, not just the
	// directories the globs skip descent into
	root := writeTree(t)
	s := New(root, nil)

	notebooks, err := s.Notebooks(context.Background(), "")
	require.NoError(t, err)
	for _, nb := range notebooks {
		assert.NotContains(t, filepath.Base(nb), ".draft")
	}
}

func TestScanner_CustomExcludes(t *testing.T) {
	root := writeTree(t)
	s := New(root, []string{"**/travel-planner"})

	notebooks, err := s.Notebooks(context.Background(), "")
	require.NoError(t, err)
	for _, nb := range notebooks {
		assert.NotContains(t, nb, "travel-planner")
	}
}

func TestScanner_MissingRoot(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "absent"), nil)

	_, err := s.Notebooks(context.Background(), "")
	require.Error(t, err)

	_, err = s.UseCases(context.Background(), "")
	require.Error(t, err)
}

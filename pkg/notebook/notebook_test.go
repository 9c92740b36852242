package notebook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleNotebook = `{
 "cells": [
  {
   "cell_type": "markdown",
   "metadata": {},
   "source": [
    "# Title\n",
    "Some prose."
   ]
  },
  {
   "cell_type": "code",
   "execution_count": null,
   "metadata": {},
   "outputs": [],
   "source": [
    "print('hi')\n",
    "x = 1"
   ]
  }
 ],
 "metadata": {
  "kernelspec": {
   "name": "python3"
  }
 },
 "nbformat": 4,
 "nbformat_minor": 5
}`

func TestParse(t *testing.T) {
	nb, err := Parse([]byte(sampleNotebook))
	require.NoError(t, err)

	require.Len(t, nb.Cells, 2)
	assert.Equal(t, "markdown", nb.Cells[0].CellType)
	assert.Equal(t, "code", nb.Cells[1].CellType)
	assert.False(t, nb.Cells[0].IsCode())
	assert.True(t, nb.Cells[1].IsCode())
	assert.Equal(t, "print('hi')\nx = 1", nb.Cells[1].Text())
}

func TestParse_StringSource(t *testing.T) {
	// The format also allows cell source as a single string
	nb, err := Parse([]byte(`{"cells": [{"cell_type": "code", "source": "a = 1\nb = 2"}]}`))
	require.NoError(t, err)

	require.Len(t, nb.Cells, 1)
	assert.Equal(t, []string{"a = 1\n", "b = 2"}, []string(nb.Cells[0].Source))
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("not json"))
	require.Error(t, err)

	_, err = Parse([]byte(`{"metadata": {}}`))
	require.Error(t, err)
}

func TestCell_SetText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "multi_line",
			text: "a = 1\nb = 2",
			want: []string{"a = 1\n", "b = 2"},
		},
		{
			name: "trailing_newline",
			text: "a = 1\n",
			want: []string{"a = 1\n", ""},
		},
		{
			name: "single_line",
			text: "a = 1",
			want: []string{"a = 1"},
		},
		{
			name: "empty",
			text: "",
			want: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cell Cell
			cell.SetText(tt.text)
			assert.Equal(t, tt.want, []string(cell.Source))
			assert.Equal(t, tt.text, cell.Text())
		})
	}
}

func TestRoundTrip(t *testing.T) {
	nb, err := Parse([]byte(sampleNotebook))
	require.NoError(t, err)

	data, err := nb.Marshal()
	require.NoError(t, err)

	again, err := Parse(data)
	require.NoError(t, err)

	// Cell count, order and content survive a load/save cycle
	require.Len(t, again.Cells, len(nb.Cells))
	for i := range nb.Cells {
		assert.Equal(t, nb.Cells[i].CellType, again.Cells[i].CellType)
		assert.Equal(t, nb.Cells[i].Text(), again.Cells[i].Text())
	}
	assert.JSONEq(t, string(nb.Metadata), string(again.Metadata))
	assert.Equal(t, "4", string(again.NBFormat))

	// execution_count: null is preserved, not dropped
	assert.Contains(t, string(data), `"execution_count": null`)
}

func TestRoundTrip_Attachments(t *testing.T) {
	// Markdown cells can carry inline images in an attachments map
	nb, err := Parse([]byte(`{
 "cells": [
  {
   "cell_type": "markdown",
   "attachments": {
    "img.png": {
     "image/png": "iVBORw0KGgo="
    }
   },
   "metadata": {},
   "source": ["![img](attachment:img.png)"]
  }
 ]
}`))
	require.NoError(t, err)

	data, err := nb.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"attachments"`)

	again, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, again.Cells, 1)
	assert.JSONEq(t,
		`{"img.png": {"image/png": "iVBORw0KGgo="}}`,
		string(again.Cells[0].Attachments))
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.ipynb")
	require.NoError(t, os.WriteFile(path, []byte(sampleNotebook), 0644))

	nb, err := Load(path)
	require.NoError(t, err)

	nb.Cells[1].SetText("print('changed')")
	target := filepath.Join(dir, "sample_out.ipynb")
	require.NoError(t, nb.Save(target))

	again, err := Load(target)
	require.NoError(t, err)
	assert.Equal(t, "print('changed')", again.Cells[1].Text())
	assert.Equal(t, "# Title\nSome prose.", again.Cells[0].Text())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.ipynb"))
	require.Error(t, err)
}

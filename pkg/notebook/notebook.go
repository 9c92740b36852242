// Package notebook loads and saves Jupyter notebook documents with
// round-trip fidelity. Only the cell list and each cell's type and source
// are interpreted; every other field is carried through as raw JSON so an
// untouched document writes back structurally identical.
package notebook

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 📓 Notebook is a parsed notebook document
type Notebook struct {
	Cells         []*Cell         `json:"cells"`
	Metadata      json.RawMessage `json:"metadata,omitempty"`
	NBFormat      json.RawMessage `json:"nbformat,omitempty"`
	NBFormatMinor json.RawMessage `json:"nbformat_minor,omitempty"`
}

// 📄 Cell is one unit of a notebook document, covering every field the
// nbformat cell schema defines. Source is kept as the line array the
// on-disk format uses; fields convertrc never touches stay raw.
type Cell struct {
	CellType       string          `json:"cell_type"`
	ID             json.RawMessage `json:"id,omitempty"`
	ExecutionCount json.RawMessage `json:"execution_count,omitempty"`
	Metadata       json.RawMessage `json:"metadata,omitempty"`
	Attachments    json.RawMessage `json:"attachments,omitempty"`
	Outputs        json.RawMessage `json:"outputs,omitempty"`
	Source         sourceLines     `json:"source"`
}

// sourceLines accepts both the list form and the single-string form the
// notebook format allows for cell source.
type sourceLines []string

func (s *sourceLines) UnmarshalJSON(data []byte) error {
	var lines []string
	if err := json.Unmarshal(data, &lines); err == nil {
		*s = lines
		return nil
	}
	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return errors.Errorf("cell source is neither string nor list: %w", err)
	}
	*s = splitLines(joined)
	return nil
}

// IsCode reports whether this is a code cell
func (c *Cell) IsCode() bool {
	return c.CellType == "code"
}

// 📝 Text returns the cell source joined into a single string
func (c *Cell) Text() string {
	return strings.Join(c.Source, "")
}

// 📝 SetText replaces the cell source, splitting into lines where every line
// but the last keeps its trailing newline.
func (c *Cell) SetText(text string) {
	c.Source = splitLines(text)
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		if i < len(lines)-1 {
			out[i] = line + "\n"
		} else {
			out[i] = line
		}
	}
	return out
}

// 🎯 Load reads and parses a notebook file
func Load(path string) (*Notebook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading notebook: %w", err)
	}

	nb, err := Parse(data)
	if err != nil {
		return nil, errors.Errorf("parsing notebook %s: %w", path, err)
	}
	return nb, nil
}

// Parse parses notebook JSON
func Parse(data []byte) (*Notebook, error) {
	var nb Notebook
	if err := json.Unmarshal(data, &nb); err != nil {
		return nil, errors.Errorf("unmarshaling notebook JSON: %w", err)
	}
	if nb.Cells == nil {
		return nil, errors.New("notebook has no cells field")
	}
	return &nb, nil
}

// 💾 Save writes the notebook back to disk
func (nb *Notebook) Save(path string) error {
	data, err := nb.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Errorf("writing notebook: %w", err)
	}
	return nil
}

// Marshal renders the notebook with single-space indentation and without
// HTML escaping, matching how the documents were authored.
func (nb *Notebook) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", " ")
	if err := enc.Encode(nb); err != nil {
		return nil, errors.Errorf("marshaling notebook JSON: %w", err)
	}
	return buf.Bytes(), nil
}

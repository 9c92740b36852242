// Package manifest reads and writes requirements manifests: plain-text
// dependency lists, one package specifier per line.
package manifest

import (
	"os"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 📜 Manifest is a loaded requirements file
type Manifest struct {
	Path string
	text string
}

// 🎯 Load reads a manifest from disk
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading manifest: %w", err)
	}
	return &Manifest{Path: path, text: string(data)}, nil
}

// Text returns the manifest content as a single string
func (m *Manifest) Text() string {
	return m.text
}

// SetText replaces the manifest content
func (m *Manifest) SetText(text string) {
	m.text = text
}

// Lines returns the manifest split into lines, without trailing newlines
func (m *Manifest) Lines() []string {
	trimmed := strings.TrimRight(m.text, "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

// MentionsAny reports whether any specifier mentions one of the given
// substrings, case-insensitively. Used to skip manifests with no relevant
// dependencies.
func (m *Manifest) MentionsAny(needles ...string) bool {
	lower := strings.ToLower(m.text)
	for _, n := range needles {
		if strings.Contains(lower, strings.ToLower(n)) {
			return true
		}
	}
	return false
}

// 💾 Save writes the manifest back, newline-terminated
func (m *Manifest) Save() error {
	text := m.text
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if err := os.WriteFile(m.Path, []byte(text), 0644); err != nil {
		return errors.Errorf("writing manifest: %w", err)
	}
	return nil
}

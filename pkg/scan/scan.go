// Package scan enumerates the notebooks and requirements manifests a
// conversion run operates on.
package scan

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🚫 DefaultExcludes are directory globs never descended into
var DefaultExcludes = []string{
	"**/.ipynb_checkpoints",
	"**/.*",
	"**/node_modules",
}

// 📦 UseCase is one sample project directory and its convertible contents
type UseCase struct {
	Name         string   // directory name
	Path         string   // absolute path
	Notebooks    []string // *.ipynb files, excluding converted copies
	Requirements []string // requirements.txt files, recursive
	UsesBedrock  bool     // whether any notebook mentions the legacy provider
}

// 🔧 Scanner walks a root directory for convertible files
type Scanner struct {
	root     string
	excludes []string
}

// 🏭 New creates a scanner for the given root. Exclude globs are matched
// against slash-separated paths relative to the root; nil means
// DefaultExcludes.
func New(root string, excludes []string) *Scanner {
	if excludes == nil {
		excludes = DefaultExcludes
	}
	return &Scanner{root: filepath.Clean(root), excludes: excludes}
}

// excluded reports whether a relative path matches any exclude glob
func (s *Scanner) excluded(rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, pattern := range s.excludes {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// 🔍 Find walks the root and returns all paths whose base name matches the
// given glob, sorted, skipping excluded directories.
func (s *Scanner) Find(ctx context.Context, nameGlob string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(s.root, path)
		if relErr != nil {
			return relErr
		}
		if d.IsDir() {
			if rel != "." && s.excluded(rel) {
				zerolog.Ctx(ctx).Trace().Str("dir", rel).Msg("skipping excluded directory")
				return filepath.SkipDir
			}
			return nil
		}
		if s.excluded(rel) {
			return nil
		}
		if ok, matchErr := doublestar.Match(nameGlob, d.Name()); matchErr == nil && ok {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("walking %s: %w", s.root, err)
	}

	sort.Strings(paths)
	return paths, nil
}

// 📓 Notebooks returns the notebooks under the root. Converted copies
// (files carrying the given suffix before .ipynb) are left out so a second
// run does not convert its own output.
func (s *Scanner) Notebooks(ctx context.Context, convertedSuffix string) ([]string, error) {
	all, err := s.Find(ctx, "*.ipynb")
	if err != nil {
		return nil, err
	}

	var notebooks []string
	for _, path := range all {
		stem := strings.TrimSuffix(filepath.Base(path), ".ipynb")
		if convertedSuffix != "" && strings.HasSuffix(stem, convertedSuffix) {
			continue
		}
		notebooks = append(notebooks, path)
	}
	return notebooks, nil
}

// 📜 Requirements returns the requirements manifests under the root
func (s *Scanner) Requirements(ctx context.Context) ([]string, error) {
	return s.Find(ctx, "requirements.txt")
}

// 📋 UseCases treats each direct subdirectory of the root as one sample
// project and gathers its convertible contents.
func (s *Scanner) UseCases(ctx context.Context, convertedSuffix string) ([]UseCase, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, errors.Errorf("reading root %s: %w", s.root, err)
	}

	var useCases []UseCase
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		sub := New(filepath.Join(s.root, entry.Name()), s.excludes)
		notebooks, err := sub.Notebooks(ctx, convertedSuffix)
		if err != nil {
			return nil, err
		}
		requirements, err := sub.Requirements(ctx)
		if err != nil {
			return nil, err
		}
		if len(notebooks) == 0 && len(requirements) == 0 {
			continue
		}

		useCases = append(useCases, UseCase{
			Name:         entry.Name(),
			Path:         sub.root,
			Notebooks:    notebooks,
			Requirements: requirements,
			UsesBedrock:  usesBedrock(notebooks),
		})
	}
	return useCases, nil
}

// usesBedrock is a cheap substring probe over the raw notebook bytes; a
// notebook that cannot be read simply counts as not using the provider.
func usesBedrock(notebooks []string) bool {
	for _, path := range notebooks {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		content := string(data)
		if strings.Contains(content, "BedrockModel") || strings.Contains(content, "bedrock_model") {
			return true
		}
	}
	return false
}

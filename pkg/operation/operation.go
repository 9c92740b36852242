// Package operation provides the batch operations a conversion run is made
// of. Each file is processed independently: a failure is recorded against
// that file and the batch continues, so a run only fails as a whole through
// a non-zero failure count in its summary.
package operation

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/convertrc/pkg/config"
	"github.com/walteh/convertrc/pkg/manifest"
	"github.com/walteh/convertrc/pkg/notebook"
	"github.com/walteh/convertrc/pkg/rewrite"
	"github.com/walteh/convertrc/pkg/scan"
	"github.com/walteh/convertrc/pkg/status"
)

// 🎯 Operation is a single runnable conversion step
type Operation interface {
	// Name identifies the operation in logs
	Name() string
	// Execute runs the operation. Per-file failures are tracked, not
	// returned; an error here is fatal for the whole run.
	Execute(ctx context.Context) error
}

// 🔧 Options contains the shared dependencies of every operation
type Options struct {
	// Config is the run configuration
	Config *config.Config
	// StatusMgr records per-file outcomes
	StatusMgr *status.Manager
}

// validate checks that the required dependencies are present
func (o Options) validate() error {
	if o.Config == nil {
		return errors.New("config is required")
	}
	if o.StatusMgr == nil {
		return errors.New("status manager is required")
	}
	return nil
}

// 🧱 BaseOperation carries the shared dependencies
type BaseOperation struct {
	Config    *config.Config
	StatusMgr *status.Manager
}

// 🏭 NewBaseOperation creates the shared base after validating options
func NewBaseOperation(opts Options) (BaseOperation, error) {
	if err := opts.validate(); err != nil {
		return BaseOperation{}, err
	}
	return BaseOperation{Config: opts.Config, StatusMgr: opts.StatusMgr}, nil
}

// scanner builds the directory scanner for the configured root
func (b BaseOperation) scanner() *scan.Scanner {
	return scan.New(b.Config.Root, b.Config.Excludes)
}

// convertManifest rewrites one requirements manifest and tracks the result
func (b BaseOperation) convertManifest(ctx context.Context, path string, rules *rewrite.RuleSet) {
	res := status.FileResult{Path: path, Kind: "manifest"}

	m, err := manifest.Load(path)
	if err != nil {
		res.Status = status.StatusError
		res.Err = err
		b.StatusMgr.Track(ctx, res)
		return
	}

	// Manifests with no relevant dependencies are left alone
	if !m.MentionsAny("strands-agents", "bedrock") {
		res.Status = status.StatusSkipped
		b.StatusMgr.Track(ctx, res)
		return
	}

	applied := rules.Apply(ctx, m.Text())
	if !applied.Changed {
		res.Status = status.StatusUnchanged
		b.StatusMgr.Track(ctx, res)
		return
	}

	m.SetText(applied.Text)
	if !b.Config.DryRun {
		if err := m.Save(); err != nil {
			res.Status = status.StatusError
			res.Err = err
			b.StatusMgr.Track(ctx, res)
			return
		}
	}

	res.Status = status.StatusUpdated
	res.RulesFired = applied.Fired
	b.StatusMgr.Track(ctx, res)
}

// convertNotebook rewrites one notebook's code cells and tracks the result.
// With outputSuffix empty the file is rewritten in place; otherwise a
// converted sibling (stem + suffix + .ipynb) is written and the original is
// left untouched.
func (b BaseOperation) convertNotebook(ctx context.Context, path, outputSuffix string, makeRules func(raw string) *rewrite.RuleSet) {
	res := status.FileResult{Path: path, Kind: "notebook"}

	data, err := os.ReadFile(path)
	if err != nil {
		res.Status = status.StatusError
		res.Err = errors.Errorf("reading notebook: %w", err)
		b.StatusMgr.Track(ctx, res)
		return
	}

	nb, err := notebook.Parse(data)
	if err != nil {
		res.Status = status.StatusError
		res.Err = err
		b.StatusMgr.Track(ctx, res)
		return
	}

	rules := makeRules(string(data))

	changed := false
	for _, cell := range nb.Cells {
		if !cell.IsCode() {
			continue
		}
		applied := rules.Apply(ctx, cell.Text())
		if !applied.Changed {
			continue
		}
		cell.SetText(applied.Text)
		changed = true
		res.RulesFired = append(res.RulesFired, applied.Fired...)
	}

	if !changed {
		res.Status = status.StatusUnchanged
		b.StatusMgr.Track(ctx, res)
		return
	}

	target := path
	if outputSuffix != "" {
		stem := strings.TrimSuffix(path, filepath.Ext(path))
		target = stem + outputSuffix + filepath.Ext(path)
		res.Output = target
		res.Status = status.StatusCreated
	} else {
		res.Status = status.StatusUpdated
	}

	if !b.Config.DryRun {
		if err := nb.Save(target); err != nil {
			res.Status = status.StatusError
			res.Err = err
			b.StatusMgr.Track(ctx, res)
			return
		}
	}

	b.StatusMgr.Track(ctx, res)
}

// notebookRules builds the per-notebook rule set, probing the raw document
// for extra packages to pin into a rewritten install cell
func (b BaseOperation) notebookRules(raw string) *rewrite.RuleSet {
	extras := rewrite.DetectExtras(raw, b.Config.Install.ExtraCandidates)
	return rewrite.NotebookRules(b.Config.Templates(), extras)
}

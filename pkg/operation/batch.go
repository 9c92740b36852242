package operation

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/walteh/convertrc/pkg/rewrite"
	"github.com/walteh/convertrc/pkg/status"
)

// 📦 NewBatchOperation creates the batch conversion operation: each use case
// under the root has its manifests updated in place, while notebooks that
// reference the legacy provider get a converted sibling copy instead of
// being touched.
func NewBatchOperation(opts Options, user *status.UserLogger) (Operation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	return &batchOperation{BaseOperation: base, user: user}, nil
}

type batchOperation struct {
	BaseOperation
	user *status.UserLogger
}

func (op *batchOperation) Name() string { return "batch" }

func (op *batchOperation) Execute(ctx context.Context) error {
	useCases, err := op.scanner().UseCases(ctx, op.Config.ConvertedSuffix)
	if err != nil {
		return err
	}

	manifestRules := rewrite.ManifestRules(op.Config.Templates())

	for _, uc := range useCases {
		op.user.LogRunStage(fmt.Sprintf("%s:", uc.Name))

		if err := forEachFile(ctx, op.Config.Async, uc.Requirements, func(ctx context.Context, path string) {
			op.convertManifest(ctx, path, manifestRules)
		}); err != nil {
			return err
		}

		if err := forEachFile(ctx, op.Config.Async, uc.Notebooks, func(ctx context.Context, path string) {
			if !mentionsBedrock(path) {
				op.StatusMgr.Track(ctx, status.FileResult{
					Path:   path,
					Kind:   "notebook",
					Status: status.StatusSkipped,
				})
				return
			}
			op.convertNotebook(ctx, path, op.Config.ConvertedSuffix, op.notebookRules)
		}); err != nil {
			return err
		}
	}
	return nil
}

// mentionsBedrock is the cheap pre-parse probe for the legacy provider; an
// unreadable notebook is skipped here and surfaces as a read error only if
// it is actually converted.
func mentionsBedrock(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	content := string(data)
	return strings.Contains(content, "BedrockModel") || strings.Contains(content, "bedrock_model")
}

package operation

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/walteh/convertrc/pkg/rewrite"
)

// 🔄 NewConvertOperation creates the in-place conversion operation: every
// relevant manifest and notebook under the root is rewritten where it is.
func NewConvertOperation(opts Options) (Operation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	return &convertOperation{BaseOperation: base}, nil
}

type convertOperation struct {
	BaseOperation
}

func (op *convertOperation) Name() string { return "convert" }

func (op *convertOperation) Execute(ctx context.Context) error {
	scanner := op.scanner()

	manifests, err := scanner.Requirements(ctx)
	if err != nil {
		return err
	}
	notebooks, err := scanner.Notebooks(ctx, op.Config.ConvertedSuffix)
	if err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().
		Int("manifests", len(manifests)).
		Int("notebooks", len(notebooks)).
		Msg("converting in place")

	manifestRules := rewrite.ManifestRules(op.Config.Templates())
	if err := forEachFile(ctx, op.Config.Async, manifests, func(ctx context.Context, path string) {
		op.convertManifest(ctx, path, manifestRules)
	}); err != nil {
		return err
	}

	return forEachFile(ctx, op.Config.Async, notebooks, func(ctx context.Context, path string) {
		op.convertNotebook(ctx, path, "", op.notebookRules)
	})
}

package operation

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/walteh/convertrc/pkg/rewrite"
)

// 🎓 NewColabOperation creates the hosted-notebook compatibility operation:
// only the dependency-install cell of each notebook is rewritten, in place.
func NewColabOperation(opts Options) (Operation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	return &colabOperation{BaseOperation: base}, nil
}

type colabOperation struct {
	BaseOperation
}

func (op *colabOperation) Name() string { return "colab" }

func (op *colabOperation) Execute(ctx context.Context) error {
	notebooks, err := op.scanner().Notebooks(ctx, "")
	if err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().
		Int("notebooks", len(notebooks)).
		Msg("rewriting install cells")

	return forEachFile(ctx, op.Config.Async, notebooks, func(ctx context.Context, path string) {
		op.convertNotebook(ctx, path, "", func(raw string) *rewrite.RuleSet {
			extras := rewrite.DetectExtras(raw, op.Config.Install.ExtraCandidates)
			return rewrite.InstallOnlyRules(op.Config.Templates(), extras)
		})
	})
}

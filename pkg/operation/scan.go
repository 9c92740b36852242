package operation

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/walteh/convertrc/pkg/report"
	"github.com/walteh/convertrc/pkg/scan"
)

// 🔍 NewScanOperation creates the read-only scan operation, which inventories
// the tree and writes the markdown conversion report.
func NewScanOperation(opts Options) (*ScanOperation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	return &ScanOperation{BaseOperation: base}, nil
}

type ScanOperation struct {
	BaseOperation

	// useCases holds the scan result after Execute, for callers that want
	// to inspect it (the convert command reuses it for its confirmation
	// prompt)
	useCases []scan.UseCase
}

func (op *ScanOperation) Name() string { return "scan" }

// UseCases returns the scan result collected by Execute
func (op *ScanOperation) UseCases() []scan.UseCase {
	return op.useCases
}

func (op *ScanOperation) Execute(ctx context.Context) error {
	useCases, err := op.scanner().UseCases(ctx, op.Config.ConvertedSuffix)
	if err != nil {
		return err
	}
	op.useCases = useCases

	bedrock := 0
	for _, uc := range useCases {
		if uc.UsesBedrock {
			bedrock++
		}
	}
	zerolog.Ctx(ctx).Info().
		Int("use_cases", len(useCases)).
		Int("with_bedrock", bedrock).
		Msg("scan complete")

	if op.Config.DryRun {
		return nil
	}
	return report.Write(op.Config.ReportPath, useCases)
}

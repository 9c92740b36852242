package commands

import (
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/convertrc/pkg/operation"
)

// NewScanCmd creates a new scan command
func NewScanCmd(newOpts OptsProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Inventory the tree and write the conversion report",
		Long: `Scan walks the root directory, lists every use case with its notebooks
and requirements manifests, flags the ones still using the legacy provider,
and writes the markdown conversion report.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ro, err := newOpts(ctx)
			if err != nil {
				return err
			}
			ro.Console.Header("scanning " + ro.Config.Root)

			op, err := operation.NewScanOperation(operation.Options{
				Config:    ro.Config,
				StatusMgr: ro.StatusMgr,
			})
			if err != nil {
				return err
			}
			if err := op.Execute(ctx); err != nil {
				return errors.Errorf("scanning: %w", err)
			}

			if !ro.Config.DryRun {
				ro.Console.Successf("Generated report: %s", ro.Config.ReportPath)
			}
			return nil
		},
	}
}

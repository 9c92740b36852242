package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/convertrc/pkg/operation"
)

// NewConvertCmd creates a new convert command
func NewConvertCmd(newOpts OptsProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "convert",
		Short: "Convert notebooks and manifests in place",
		Long: `Convert rewrites every relevant file under the root where it is:
requirements manifests gain the [openai] extra and missing pins, notebook
cells have their legacy imports and model constructions replaced.
It will:
1. Scan the root for use cases and write the conversion report
2. Ask for confirmation (unless --yes)
3. Rewrite each file, continuing past per-file errors`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ro, err := newOpts(ctx)
			if err != nil {
				return err
			}
			ro.Console.Header("converting " + ro.Config.Root)

			scanOp, err := operation.NewScanOperation(operation.Options{
				Config:    ro.Config,
				StatusMgr: ro.StatusMgr,
			})
			if err != nil {
				return err
			}
			if err := scanOp.Execute(ctx); err != nil {
				return errors.Errorf("scanning: %w", err)
			}

			bedrock := 0
			for _, uc := range scanOp.UseCases() {
				if uc.UsesBedrock {
					bedrock++
				}
			}
			ro.Console.Infof("Found %d use cases with Bedrock models", bedrock)

			if !ro.Yes && !ro.Config.DryRun {
				confirmed, err := pterm.DefaultInteractiveConfirm.
					WithDefaultText(fmt.Sprintf("Convert all %d use cases?", len(scanOp.UseCases()))).
					Show()
				if err != nil {
					return errors.Errorf("reading confirmation: %w", err)
				}
				if !confirmed {
					ro.Console.Warning("Conversion cancelled.")
					return nil
				}
			}

			convertOp, err := operation.NewConvertOperation(operation.Options{
				Config:    ro.Config,
				StatusMgr: ro.StatusMgr,
			})
			if err != nil {
				return err
			}
			return runOps(ctx, ro, convertOp)
		},
	}
}

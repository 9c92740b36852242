package commands

import (
	"github.com/spf13/cobra"

	"github.com/walteh/convertrc/pkg/operation"
)

// NewBatchCmd creates a new batch command
func NewBatchCmd(newOpts OptsProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "batch",
		Short: "Convert use cases, writing converted notebook copies",
		Long: `Batch processes each use case under the root: requirements manifests are
updated in place, while each notebook still using the legacy provider gets a
converted sibling copy (name suffixed with the configured marker) so the
original stays untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ro, err := newOpts(ctx)
			if err != nil {
				return err
			}
			ro.Console.Header("batch converting " + ro.Config.Root)

			op, err := operation.NewBatchOperation(operation.Options{
				Config:    ro.Config,
				StatusMgr: ro.StatusMgr,
			}, ro.UserLogger)
			if err != nil {
				return err
			}
			return runOps(ctx, ro, op)
		},
	}
}

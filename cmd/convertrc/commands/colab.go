package commands

import (
	"github.com/spf13/cobra"

	"github.com/walteh/convertrc/pkg/operation"
)

// NewColabCmd creates a new colab command
func NewColabCmd(newOpts OptsProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "colab",
		Short: "Rewrite install cells for hosted notebook environments",
		Long: `Colab replaces every "pip install -r requirements.txt" cell with an
inline install of the pinned packages, so the notebooks run on hosted
environments that do not ship the repository's requirements files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ro, err := newOpts(ctx)
			if err != nil {
				return err
			}
			ro.Console.Header("rewriting install cells under " + ro.Config.Root)

			op, err := operation.NewColabOperation(operation.Options{
				Config:    ro.Config,
				StatusMgr: ro.StatusMgr,
			})
			if err != nil {
				return err
			}
			return runOps(ctx, ro, op)
		},
	}
}

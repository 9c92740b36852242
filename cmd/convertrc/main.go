package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/walteh/convertrc/cmd/convertrc/commands"
)

func main() {
	root := &cobra.Command{
		Use:   "convertrc",
		Short: "Migrate agent sample notebooks to an OpenAI-compatible provider",
		Long: `convertrc rewrites Jupyter notebook cells and requirements manifests to
move a tree of agent sample projects from the Bedrock model client to an
OpenAI-compatible endpoint, and makes dependency-install cells runnable on
hosted notebook environments.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
	}
	addRootFlags(root)

	root.AddCommand(
		commands.NewScanCmd(newRootOpts),
		commands.NewConvertCmd(newRootOpts),
		commands.NewBatchCmd(newRootOpts),
		commands.NewColabCmd(newRootOpts),
	)

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(context.Background())

	if err := root.ExecuteContext(ctx); err != nil {
		logger.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/convertrc/cmd/convertrc/opts"
	"github.com/walteh/convertrc/pkg/config"
	"github.com/walteh/convertrc/pkg/log"
	"github.com/walteh/convertrc/pkg/status"
)

var (
	// Flags
	configFile string
	rootDir    string
	debug      bool
	dryRun     bool
	async      bool
	yes        bool
)

// newRootOpts creates a new RootOpts with initialized dependencies
func newRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	// Load config, falling back to defaults when no file exists
	cfg, err := config.LoadOrDefault(configFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	// Flags override the file
	if rootDir != "" {
		cfg.Root = rootDir
	}
	if dryRun {
		cfg.DryRun = true
	}
	if async {
		cfg.Async = true
	}

	userLogger := status.NewUserLogger(*zerolog.Ctx(ctx))

	logLevel := zerolog.InfoLevel
	if debug {
		logLevel = zerolog.DebugLevel
	}

	return &opts.RootOpts{
		Config:     cfg,
		StatusMgr:  status.NewManager(userLogger),
		UserLogger: userLogger,
		Console:    log.New(os.Stdout, logLevel),
		Yes:        yes,
	}, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".convertrc", "config file path")
	cmd.PersistentFlags().StringVarP(&rootDir, "root", "r", "", "root directory to scan (overrides config)")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "report without writing any files")
	cmd.PersistentFlags().BoolVar(&async, "async", false, "process files concurrently")
	cmd.PersistentFlags().BoolVarP(&yes, "yes", "y", false, "skip confirmation prompts")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
}

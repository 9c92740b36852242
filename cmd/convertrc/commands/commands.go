// Package commands contains the convertrc subcommands.
package commands

import (
	"context"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/convertrc/cmd/convertrc/opts"
	"github.com/walteh/convertrc/pkg/operation"
)

// OptsProvider builds the shared dependencies after flag parsing
type OptsProvider func(ctx context.Context) (*opts.RootOpts, error)

// finish prints the run summary and turns per-file failures into a non-zero
// exit.
func finish(ro *opts.RootOpts) error {
	summary := ro.StatusMgr.Summary()
	ro.Console.Summary(summary.Render())
	if summary.Failed() {
		return errors.Errorf("run finished with %d failures", summary.Failures)
	}
	return nil
}

// runOps executes the operations and finishes with the summary
func runOps(ctx context.Context, ro *opts.RootOpts, ops ...operation.Operation) error {
	if err := operation.NewRunner(ops...).Run(ctx); err != nil {
		return err
	}
	return finish(ro)
}

package operation

import (
	"context"
	"runtime"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🏃 Runner executes operations in sequence
type Runner struct {
	operations []Operation
}

// 🏭 NewRunner creates a runner for the given operations
func NewRunner(operations ...Operation) *Runner {
	return &Runner{operations: operations}
}

// 🏃 Run executes each operation in order, stopping on the first fatal error
func (r *Runner) Run(ctx context.Context) error {
	for _, op := range r.operations {
		zerolog.Ctx(ctx).Debug().Str("operation", op.Name()).Msg("running operation")
		if err := op.Execute(ctx); err != nil {
			return errors.Errorf("running %s: %w", op.Name(), err)
		}
	}
	return nil
}

// ⚡ forEachFile applies fn to every file. Files are independent in-memory
// documents, so with async set they are fanned out across a bounded
// errgroup; fn records its own per-file failures and only returns an error
// on cancellation.
func forEachFile(ctx context.Context, async bool, files []string, fn func(ctx context.Context, path string)) error {
	if !async {
		for _, path := range files {
			if err := ctx.Err(); err != nil {
				return errors.Errorf("batch cancelled: %w", err)
			}
			fn(ctx, path)
		}
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, path := range files {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(ctx, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return errors.Errorf("batch cancelled: %w", err)
	}
	return nil
}

package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
)

// runConcurrent processes files with bounded parallelism. Completion
// order across workers is unspecified, so overlapping glob matches no
// longer have last-write-wins semantics; the sequential loop stays the
// default for that reason.
func runConcurrent(ctx context.Context, opts Options) error {
	slog.Info("starting concurrent batch", "files", len(opts.Files), "jobs", opts.Jobs)

	if opts.FailFast {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(opts.Jobs)
		for _, file := range opts.Files {
			g.Go(func() error {
				return ConvertFile(gctx, file, opts)
			})
		}
		return g.Wait()
	}

	var (
		mu   sync.Mutex
		errs []error
	)

	g := new(errgroup.Group)
	g.SetLimit(opts.Jobs)
	for _, file := range opts.Files {
		g.Go(func() error {
			err := ConvertFile(ctx, file, opts)
			if err == nil {
				return nil
			}
			// Interrupts abort the batch instead of counting as failures,
			// matching the sequential loop.
			if errors.Is(err, context.Canceled) {
				return err
			}

			slog.Error("file failed, continuing", "file", file, "err", err)
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d of %d files failed: %w", len(errs), len(opts.Files), errors.Join(errs...))
	}
	return nil
}

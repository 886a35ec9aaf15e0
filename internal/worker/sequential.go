package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
)

// runSequential processes files one at a time in glob order. Overlapping
// patterns that matched the same file cause sequential rewrites of the
// same output, last write winning.
func runSequential(ctx context.Context, opts Options) error {
	var errs []error

	for i, file := range opts.Files {
		slog.Debug("processing file",
			"file", fmt.Sprintf("%d/%d", i+1, len(opts.Files)),
			"name", filepath.Base(file))

		err := ConvertFile(ctx, file, opts)
		if err == nil {
			continue
		}
		if opts.FailFast || errors.Is(err, context.Canceled) {
			return err
		}

		slog.Error("file failed, continuing", "file", file, "err", err)
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d of %d files failed: %w", len(errs), len(opts.Files), errors.Join(errs...))
	}
	return nil
}

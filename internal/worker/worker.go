package worker

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dg2srt/internal/caption"
	"dg2srt/internal/fsys"
	"dg2srt/internal/graph"
)

// Options configures a batch run.
type Options struct {
	Files     []string
	Renderer  caption.Renderer
	Marker    string
	OutputExt string
	FailFast  bool
	Jobs      int
	Graphs    bool
}

// Run converts every file in opts.Files. With Jobs <= 1 files are
// processed strictly in the order given, one at a time; otherwise up
// to Jobs files are converted concurrently. By default a failing file
// is logged and the rest of the batch continues, with the collected
// errors returned at the end; FailFast aborts on the first failure.
func Run(ctx context.Context, opts Options) error {
	if opts.Jobs > 1 && len(opts.Files) > 1 {
		return runConcurrent(ctx, opts)
	}
	return runSequential(ctx, opts)
}

// ConvertFile runs the full pipeline for a single input file:
// read, parse, render captions, write the .srt output. Watch mode
// calls this directly, one file per filesystem event.
func ConvertFile(ctx context.Context, path string, opts Options) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %q: %w", path, err)
	}

	resp, err := caption.Parse(data)
	if err != nil {
		return fmt.Errorf("decoding %q: %w", path, err)
	}

	captions, err := opts.Renderer.Render(resp)
	if err != nil {
		return fmt.Errorf("converting %q: %w", path, err)
	}

	outPath := fsys.DeriveOutputPath(path, opts.Marker, opts.OutputExt)
	if err := os.WriteFile(outPath, []byte(captions), 0644); err != nil {
		return fmt.Errorf("writing %q: %w", outPath, err)
	}

	slog.Info("subtitles written", "input", filepath.Base(path), "output", outPath)

	if opts.Graphs {
		graphPath := strings.TrimSuffix(outPath, filepath.Ext(outPath)) + "_graph.html"
		if err := graph.WriteWordRate(resp, filepath.Base(path), graphPath); err != nil {
			return fmt.Errorf("writing graph for %q: %w", path, err)
		}
		slog.Info("graph written", "output", graphPath)
	}

	return nil
}

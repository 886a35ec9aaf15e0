// Package watcher monitors a directory for freshly written Deepgram
// response files and hands them to a conversion handler.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"dg2srt/internal/fsys"

	"github.com/fsnotify/fsnotify"
)

// Handler converts a single response file.
type Handler func(ctx context.Context, path string) error

// Watch monitors dir for new JSON response files and invokes handler for
// each one. Events are handled sequentially on the watcher goroutine.
// A settle delay passes between the filesystem event and the read, and
// files with a companion download temp file are skipped until a later
// event fires for them. Watch returns ctx.Err() on cancellation.
func Watch(ctx context.Context, dir string, settle time.Duration, handler Handler) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watching %q: %w", dir, err)
	}

	slog.Info("watching for response files", "dir", dir)

	for {
		select {
		case <-ctx.Done():
			slog.Info("watcher stopped")
			return ctx.Err()

		case ev, ok := <-w.Events:
			if !ok {
				return fmt.Errorf("watcher event channel closed")
			}
			if !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			if !isResponseFile(ev.Name) {
				slog.Debug("ignoring non-JSON file", "file", ev.Name)
				continue
			}

			// Let the writer finish before reading.
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(settle):
			}

			if fsys.IsPartialDownload(ev.Name) {
				slog.Debug("file still downloading, skipping", "file", ev.Name)
				continue
			}

			slog.Info("new response file detected", "file", filepath.Base(ev.Name))
			if err := handler(ctx, ev.Name); err != nil {
				slog.Error("conversion failed", "file", ev.Name, "err", err)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			slog.Error("watcher error", "err", err)
		}
	}
}

func isResponseFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dg2srt/internal/caption"
	"dg2srt/internal/config"
	"dg2srt/internal/watcher"
	"dg2srt/internal/worker"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Watch a directory and convert response files as they appear",
	Long: `Watch monitors a directory for new Deepgram response JSON files and
converts each one to SRT as soon as it has finished landing on disk.
Files that are still being downloaded are skipped until complete.
Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := args[0]

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("stat %q: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	defaults := config.Default()
	opts := worker.Options{
		Renderer:  caption.NewDeepgramRenderer(),
		Marker:    defaults.ResponseMarker,
		OutputExt: defaults.OutputExtension,
		Graphs:    graphs,
	}

	handler := func(ctx context.Context, path string) error {
		return worker.ConvertFile(ctx, path, opts)
	}

	err = watcher.Watch(ctx, dir, defaults.WatchSettleDelay, handler)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

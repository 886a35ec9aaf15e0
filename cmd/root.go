package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"dg2srt/internal/caption"
	"dg2srt/internal/config"
	"dg2srt/internal/fsys"
	"dg2srt/internal/worker"

	"github.com/spf13/cobra"
)

var (
	verbose  bool
	quiet    bool
	graphs   bool
	failFast bool
	jobs     int
)

var rootCmd = &cobra.Command{
	Use:   "dg2srt <glob> [<glob>...]",
	Short: "Convert Deepgram transcription responses into SRT subtitle files",
	Long: `dg2srt batch-converts Deepgram speech-to-text JSON responses into SubRip
subtitle files. Each matched file produces a sibling .srt file named after
the input with the "_response" marker removed.`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	RunE: runConvert,
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if quiet {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func runConvert(cmd *cobra.Command, args []string) error {
	files, err := fsys.FilesFromGlobs(args)
	if err != nil {
		return fmt.Errorf("expanding file patterns: %w", err)
	}
	if len(files) == 0 {
		slog.Warn("no files matched the given patterns")
		return nil
	}

	// Setup signal handling for graceful cancellation.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	defaults := config.Default()
	opts := worker.Options{
		Files:     files,
		Renderer:  caption.NewDeepgramRenderer(),
		Marker:    defaults.ResponseMarker,
		OutputExt: defaults.OutputExtension,
		FailFast:  failFast,
		Jobs:      jobs,
		Graphs:    graphs,
	}

	if err := worker.Run(ctx, opts); err != nil {
		return err
	}

	if !quiet {
		slog.Info("done", "files", len(files))
	}
	return nil
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	defaults := config.Default()

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&graphs, "graphs", false, "also write a words-per-minute HTML chart per file")

	rootCmd.Flags().BoolVar(&failFast, "fail-fast", false, "abort the batch on the first failing file")
	rootCmd.Flags().IntVarP(&jobs, "jobs", "j", defaults.Jobs, "number of files to convert concurrently")
}

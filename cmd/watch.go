package cmd

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/ZZRSIC/YouTube-crawler/internal/config"
	"github.com/ZZRSIC/YouTube-crawler/internal/watch"
	"github.com/ZZRSIC/YouTube-crawler/internal/worker"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <directory>",
	Short: "Watch a directory and clean caption files dropped into it",
	Long: `Watch runs until interrupted, converting every .vtt file created in the
directory into a cleaned plain-text transcript next to it.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

var (
	watchConcurrent  int
	watchInline      bool
	watchExtraFiller []string
	watchFillersFile string
)

func init() {
	watchCmd.Flags().IntVarP(&watchConcurrent, "max-concurrent", "j", 2, "max concurrent conversions")
	watchCmd.Flags().BoolVar(&watchInline, "inline-fillers", false, "also remove filler phrases inside sentences")
	watchCmd.Flags().StringArrayVar(&watchExtraFiller, "filler", nil, "extra filler phrase to suppress (repeatable)")
	watchCmd.Flags().StringVar(&watchFillersFile, "fillers-file", "", "newline-separated filler phrase list")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	clean, err := cleanOptions(config.CleaningConfig{
		InlineFillers: watchInline,
		ExtraFillers:  watchExtraFiller,
		FillersFile:   watchFillersFile,
	})
	if err != nil {
		return err
	}

	opts := worker.Options{Clean: clean}

	handler := func(ctx context.Context, path string) error {
		out, err := worker.Convert(path, "", "", "", opts)
		if err != nil {
			return err
		}
		slog.Info("converted", "vtt", path, "txt", out)
		return nil
	}

	w, err := watch.New(args[0], handler, watchConcurrent)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("watching for caption files", "dir", args[0])
	return w.Run(ctx)
}

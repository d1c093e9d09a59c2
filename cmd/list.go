package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/ZZRSIC/YouTube-crawler/internal/config"
	"github.com/ZZRSIC/YouTube-crawler/internal/linklist"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <channel-or-playlist-url>",
	Short: "List the videos of a channel or playlist",
	Long: `List resolves a channel or playlist URL with yt-dlp and writes a numbered
"N. Title -> URL" link list without downloading anything.`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

var (
	listOutput    string
	listYtDlpPath string
)

func init() {
	defaults := config.Default()

	listCmd.Flags().StringVarP(&listOutput, "output", "o", defaults.LinkList, "link list path (- for stdout)")
	listCmd.Flags().StringVar(&listYtDlpPath, "yt-dlp", defaults.YtDlp.Path, "yt-dlp binary path")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := config.Default().YtDlp
	cfg.Path = listYtDlpPath

	client, err := newClient(cfg)
	if err != nil {
		return err
	}
	if err := client.CheckBinary(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	entries, err := client.List(ctx, args[0])
	if err != nil {
		return err
	}

	items := make([]linklist.Item, 0, len(entries))
	for i, e := range entries {
		items = append(items, linklist.Item{Index: i + 1, Title: e.Title, URL: e.URL})
	}

	if listOutput == "-" {
		fmt.Print(linklist.Format(items))
		return nil
	}
	if err := linklist.WriteFile(listOutput, items); err != nil {
		return err
	}

	if !quiet {
		slog.Info("link list written", "path", listOutput, "videos", len(items))
	}
	return nil
}

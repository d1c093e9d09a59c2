package cmd

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/ZZRSIC/YouTube-crawler/internal/config"
	"github.com/ZZRSIC/YouTube-crawler/internal/worker"

	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <channel-or-playlist-url>",
	Short: "Download and clean captions for a channel or playlist",
	Long: `Fetch lists the videos behind a channel or playlist URL, saves the numbered
link list, downloads each video's captions with yt-dlp, and converts them
into cleaned plain-text transcripts with a JSON metadata sidecar.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

var (
	fetchConfigPath  string
	fetchOutputDir   string
	fetchLinkList    string
	fetchTopN        int
	fetchNoAsync     bool
	fetchConcurrent  int
	fetchRetries     int
	fetchRateLimit   int
	fetchNoMetadata  bool
	fetchInline      bool
	fetchExtraFiller []string
	fetchFillersFile string
	fetchYtDlpPath   string
	fetchSubLangs    []string
	fetchLimitRate   string
	fetchCookieFile  string
	fetchPlayer      string
)

func init() {
	defaults := config.Default()

	fetchCmd.Flags().StringVarP(&fetchConfigPath, "config", "c", "", "YAML config file")
	fetchCmd.Flags().StringVarP(&fetchOutputDir, "output-dir", "o", defaults.OutputDir, "directory for transcripts")
	fetchCmd.Flags().StringVar(&fetchLinkList, "link-list", defaults.LinkList, "path for the numbered link list")
	fetchCmd.Flags().IntVarP(&fetchTopN, "top", "n", defaults.TopN, "process only the first N videos (0 = all)")
	fetchCmd.Flags().BoolVar(&fetchNoAsync, "no-async", false, "disable concurrent downloads")
	fetchCmd.Flags().IntVarP(&fetchConcurrent, "max-concurrent", "j", defaults.MaxConcurrent, "max concurrent downloads")
	fetchCmd.Flags().IntVar(&fetchRetries, "max-retries", defaults.MaxRetries, "max retries per video")
	fetchCmd.Flags().IntVar(&fetchRateLimit, "rate-limit", defaults.RateLimitPerMin, "yt-dlp invocations per minute")
	fetchCmd.Flags().BoolVar(&fetchNoMetadata, "no-metadata", false, "skip the JSON metadata sidecar")
	fetchCmd.Flags().BoolVar(&fetchInline, "inline-fillers", false, "also remove filler phrases inside sentences")
	fetchCmd.Flags().StringArrayVar(&fetchExtraFiller, "filler", nil, "extra filler phrase to suppress (repeatable)")
	fetchCmd.Flags().StringVar(&fetchFillersFile, "fillers-file", "", "newline-separated filler phrase list")
	fetchCmd.Flags().StringVar(&fetchYtDlpPath, "yt-dlp", defaults.YtDlp.Path, "yt-dlp binary path")
	fetchCmd.Flags().StringSliceVar(&fetchSubLangs, "sub-langs", defaults.YtDlp.SubLangs, "caption languages to request")
	fetchCmd.Flags().StringVar(&fetchLimitRate, "limit-rate", "", "download rate limit, e.g. 500K or 1M")
	fetchCmd.Flags().StringVar(&fetchCookieFile, "cookies", "", "cookies.txt for authenticated requests")
	fetchCmd.Flags().StringVar(&fetchPlayer, "player-client", "", "yt-dlp player client, e.g. web or android")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if fetchConfigPath != "" {
		loaded, err := config.Load(fetchConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flags set on the command line win over the config file.
	flags := cmd.Flags()
	if flags.Changed("output-dir") {
		cfg.OutputDir = fetchOutputDir
	}
	if flags.Changed("link-list") {
		cfg.LinkList = fetchLinkList
	}
	if flags.Changed("top") {
		cfg.TopN = fetchTopN
	}
	if flags.Changed("max-concurrent") {
		cfg.MaxConcurrent = fetchConcurrent
	}
	if flags.Changed("max-retries") {
		cfg.MaxRetries = fetchRetries
	}
	if flags.Changed("rate-limit") {
		cfg.RateLimitPerMin = fetchRateLimit
	}
	if fetchNoMetadata {
		cfg.WriteMetadata = false
	}
	if fetchInline {
		cfg.Cleaning.InlineFillers = true
	}
	if len(fetchExtraFiller) > 0 {
		cfg.Cleaning.ExtraFillers = append(cfg.Cleaning.ExtraFillers, fetchExtraFiller...)
	}
	if flags.Changed("fillers-file") {
		cfg.Cleaning.FillersFile = fetchFillersFile
	}
	if flags.Changed("yt-dlp") {
		cfg.YtDlp.Path = fetchYtDlpPath
	}
	if flags.Changed("sub-langs") {
		cfg.YtDlp.SubLangs = fetchSubLangs
	}
	if flags.Changed("limit-rate") {
		cfg.YtDlp.RateLimit = fetchLimitRate
	}
	if flags.Changed("cookies") {
		cfg.YtDlp.CookieFile = fetchCookieFile
	}
	if flags.Changed("player-client") {
		cfg.YtDlp.PlayerClient = fetchPlayer
	}

	clean, err := cleanOptions(cfg.Cleaning)
	if err != nil {
		return err
	}
	client, err := newClient(cfg.YtDlp)
	if err != nil {
		return err
	}

	// Graceful cancellation on Ctrl-C.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := worker.Options{
		StartURL:        args[0],
		OutputDir:       cfg.OutputDir,
		LinkListPath:    cfg.LinkList,
		TopN:            cfg.TopN,
		NoAsync:         fetchNoAsync,
		MaxConcurrent:   cfg.MaxConcurrent,
		MaxRetries:      cfg.MaxRetries,
		RateLimitPerMin: cfg.RateLimitPerMin,
		WriteMetadata:   cfg.WriteMetadata,
		Clean:           clean,
		Client:          client,
	}

	if err := worker.Run(ctx, opts); err != nil {
		return err
	}

	if !quiet {
		slog.Info("done")
	}
	return nil
}

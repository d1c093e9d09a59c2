package cmd

import (
	"fmt"

	"github.com/ZZRSIC/YouTube-crawler/internal/config"
	"github.com/ZZRSIC/YouTube-crawler/internal/pipeline"
	"github.com/ZZRSIC/YouTube-crawler/internal/ytdlp"
)

// cleanOptions turns a cleaning config into pipeline options, loading the
// filler file if one is set.
func cleanOptions(cfg config.CleaningConfig) (pipeline.Options, error) {
	phrases, err := cfg.Phrases()
	if err != nil {
		return pipeline.Options{}, err
	}
	return pipeline.Options{
		Fillers:       pipeline.NewFillerSet(phrases...),
		InlineFillers: cfg.InlineFillers,
	}, nil
}

// newClient builds a yt-dlp client from config.
func newClient(cfg config.YtDlpConfig) (*ytdlp.Client, error) {
	var limitBytes int64
	if cfg.RateLimit != "" {
		var err error
		limitBytes, err = config.ParseRateLimit(cfg.RateLimit)
		if err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}
	return ytdlp.New(cfg.Path, ytdlp.Options{
		PlayerClient:       cfg.PlayerClient,
		POToken:            cfg.POToken,
		CookieFile:         cfg.CookieFile,
		CookiesFromBrowser: cfg.CookiesFromBrowser,
		RateLimitBytes:     limitBytes,
		SubLangs:           cfg.SubLangs,
	}), nil
}

package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/ZZRSIC/YouTube-crawler/internal/linklist"
	"github.com/ZZRSIC/YouTube-crawler/internal/ytdlp"
)

// processConcurrent fans videos out across bounded workers with request rate
// limiting. Per-video failures are absorbed into the summary; only context
// cancellation stops the batch.
func processConcurrent(ctx context.Context, items []linklist.Item, opts Options) summary {
	slog.Info("starting concurrent processing",
		"videos", len(items),
		"max_concurrent", opts.MaxConcurrent,
		"rate_limit_rpm", opts.RateLimitPerMin)

	// Rate limiter: tokens per second = RPM / 60.
	limiter := rate.NewLimiter(rate.Limit(float64(opts.RateLimitPerMin)/60.0), 1)

	var (
		mu  sync.Mutex
		sum summary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.MaxConcurrent)

	for _, item := range items {
		item := item
		g.Go(func() error {
			if err := limiter.Wait(gctx); err != nil {
				return err
			}

			outcome := processWithRetry(gctx, item, opts)

			mu.Lock()
			switch outcome {
			case outcomeConverted:
				sum.converted++
			case outcomeNoCaptions:
				sum.skipped++
			case outcomeFailed:
				sum.failed++
			}
			mu.Unlock()

			return gctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		slog.Warn("batch interrupted", "err", err)
	}
	return sum
}

type outcome int

const (
	outcomeConverted outcome = iota
	outcomeNoCaptions
	outcomeFailed
)

// processWithRetry runs one video with exponential backoff on transient
// failures. A missing caption track is a normal outcome and is never retried.
func processWithRetry(ctx context.Context, item linklist.Item, opts Options) outcome {
	slog.Info("processing video", "index", item.Index, "title", item.Title)

	var lastErr error
	for attempt := 0; attempt < opts.MaxRetries; attempt++ {
		outTxt, err := processVideo(ctx, item, opts)
		if err == nil {
			slog.Info("transcript saved", "index", item.Index, "path", outTxt)
			return outcomeConverted
		}
		if errors.Is(err, ytdlp.ErrNoCaptions) {
			slog.Info("no captions for video", "index", item.Index, "url", item.URL)
			return outcomeNoCaptions
		}
		if ctx.Err() != nil {
			return outcomeFailed
		}

		lastErr = err
		if attempt < opts.MaxRetries-1 {
			backoff := time.Duration(1<<uint(attempt)) * time.Second // 1s, 2s, 4s...
			slog.Warn("video failed, retrying",
				"index", item.Index,
				"attempt", attempt+1,
				"backoff", backoff,
				"err", err)

			timer := time.NewTimer(backoff)
			select {
			case <-ctx.Done():
				timer.Stop()
				return outcomeFailed
			case <-timer.C:
			}
		}
	}

	slog.Error("video failed after retries",
		"index", item.Index, "url", item.URL, "retries", opts.MaxRetries, "err", lastErr)
	return outcomeFailed
}

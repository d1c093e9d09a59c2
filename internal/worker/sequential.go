package worker

import (
	"context"

	"github.com/ZZRSIC/YouTube-crawler/internal/linklist"
)

// processSequential handles videos one at a time in source order.
func processSequential(ctx context.Context, items []linklist.Item, opts Options) summary {
	var sum summary
	for _, item := range items {
		if ctx.Err() != nil {
			break
		}
		switch processWithRetry(ctx, item, opts) {
		case outcomeConverted:
			sum.converted++
		case outcomeNoCaptions:
			sum.skipped++
		case outcomeFailed:
			sum.failed++
		}
	}
	return sum
}

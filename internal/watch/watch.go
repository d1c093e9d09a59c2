// Package watch converts caption files dropped into a directory, turning the
// cleaner into a long-running companion for external downloaders.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay gives the writer time to finish before the file is read.
const settleDelay = 500 * time.Millisecond

// Handler processes one caption file that appeared in the watched directory.
type Handler func(ctx context.Context, path string) error

// Watcher monitors a directory for new VTT files and hands them to a Handler
// with bounded concurrency.
type Watcher struct {
	dir     string
	handler Handler
	fs      *fsnotify.Watcher
	sem     chan struct{}
	wg      sync.WaitGroup
}

// New creates a watcher for dir. maxConcurrent bounds how many files are
// processed at once; values below 1 default to 2.
func New(dir string, handler Handler, maxConcurrent int) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fs.Add(dir); err != nil {
		fs.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	if maxConcurrent < 1 {
		maxConcurrent = 2
	}
	return &Watcher{
		dir:     dir,
		handler: handler,
		fs:      fs,
		sem:     make(chan struct{}, maxConcurrent),
	}, nil
}

// Run blocks, dispatching new caption files until the context is canceled.
// In-flight handlers are allowed to finish before Run returns.
func (w *Watcher) Run(ctx context.Context) error {
	slog.Info("watching for caption files", "dir", w.dir, "max_concurrent", cap(w.sem))

	for {
		select {
		case <-ctx.Done():
			slog.Info("waiting for in-flight conversions")
			w.wg.Wait()
			return ctx.Err()

		case event, ok := <-w.fs.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !event.Has(fsnotify.Create) || !isCaptionFile(event.Name) {
				continue
			}
			slog.Info("new caption file", "path", event.Name)

			select {
			case w.sem <- struct{}{}:
			case <-ctx.Done():
				w.wg.Wait()
				return ctx.Err()
			}

			w.wg.Add(1)
			go func(path string) {
				defer w.wg.Done()
				defer func() { <-w.sem }()

				time.Sleep(settleDelay)
				if err := w.handler(ctx, path); err != nil {
					slog.Error("conversion failed", "path", path, "err", err)
				}
			}(event.Name)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			slog.Error("watcher error", "err", err)
		}
	}
}

// Close releases the underlying file-system watcher.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

// isCaptionFile reports whether path names a caption track we can convert.
func isCaptionFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".vtt"
}

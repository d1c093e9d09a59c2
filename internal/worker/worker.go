package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZZRSIC/YouTube-crawler/internal/fsutil"
	"github.com/ZZRSIC/YouTube-crawler/internal/linklist"
	"github.com/ZZRSIC/YouTube-crawler/internal/pipeline"
	"github.com/ZZRSIC/YouTube-crawler/internal/ytdlp"
)

// Options configures a batch run.
type Options struct {
	StartURL        string
	OutputDir       string
	LinkListPath    string
	TopN            int // 0 or negative processes all videos
	NoAsync         bool
	MaxConcurrent   int
	MaxRetries      int
	RateLimitPerMin int
	WriteMetadata   bool
	Clean           pipeline.Options
	Client          *ytdlp.Client
}

// Metadata is the JSON sidecar written next to each transcript.
type Metadata struct {
	Title      string `json:"title"`
	UploadDate string `json:"upload_date"`
	VideoURL   string `json:"video_url"`
	SourceVTT  string `json:"source_vtt"`
	OutputTXT  string `json:"output_txt"`
}

// summary counts per-video outcomes of a batch.
type summary struct {
	converted int
	skipped   int // no captions available
	failed    int
}

// Run is the top-level batch orchestrator: list the videos behind the start
// URL, persist the link list, and download + clean captions for each video.
// Individual video failures are logged and skipped; some videos simply have
// no captions and that must not abort the rest of the batch.
func Run(ctx context.Context, opts Options) error {
	if err := opts.Client.CheckBinary(); err != nil {
		return err
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	slog.Info("listing videos", "url", opts.StartURL)
	entries, err := opts.Client.List(ctx, opts.StartURL)
	if err != nil {
		return fmt.Errorf("list videos: %w", err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("no videos found for %s", opts.StartURL)
	}

	items := make([]linklist.Item, 0, len(entries))
	for i, e := range entries {
		items = append(items, linklist.Item{Index: i + 1, Title: e.Title, URL: e.URL})
	}

	if opts.LinkListPath != "" {
		if err := linklist.WriteFile(opts.LinkListPath, items); err != nil {
			slog.Warn("failed to save link list", "err", err)
		} else {
			slog.Info("link list saved", "path", opts.LinkListPath, "videos", len(items))
		}
	}

	if opts.TopN > 0 && len(items) > opts.TopN {
		slog.Info("limiting batch", "top_n", opts.TopN, "total", len(items))
		items = items[:opts.TopN]
	}

	var sum summary
	if !opts.NoAsync && len(items) > 1 {
		sum = processConcurrent(ctx, items, opts)
	} else {
		sum = processSequential(ctx, items, opts)
	}

	sweepLeftovers(opts)

	slog.Info("batch complete",
		"converted", sum.converted, "no_captions", sum.skipped, "failed", sum.failed)

	if err := ctx.Err(); err != nil {
		return err
	}
	if sum.converted == 0 && sum.failed > 0 {
		return fmt.Errorf("all %d attempted videos failed", sum.failed)
	}
	return nil
}

// processVideo handles one video end to end and returns the transcript path.
func processVideo(ctx context.Context, item linklist.Item, opts Options) (string, error) {
	res, err := opts.Client.DownloadSubs(ctx, item.URL, opts.OutputDir)
	if err != nil {
		return "", err
	}

	title := res.Title
	if title == "" {
		title = item.Title
	}
	return Convert(res.VTTPath, title, res.UploadDate, item.URL, opts)
}

// Convert cleans one downloaded caption file into a transcript TXT, writes
// the metadata sidecar, and removes the VTT.
func Convert(vttPath, title, uploadDate, videoURL string, opts Options) (string, error) {
	raw, err := os.ReadFile(vttPath)
	if err != nil {
		return "", fmt.Errorf("read captions: %w", err)
	}

	text := pipeline.CleanBytes(raw, opts.Clean)

	datePart := fsutil.DigitsOnly(uploadDate)
	if datePart == "" {
		datePart = "unknown"
	}
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(vttPath), filepath.Ext(vttPath))
	}
	outTxt := filepath.Join(filepath.Dir(vttPath), fmt.Sprintf("%s_%s.txt", fsutil.Slugify(title), datePart))

	if err := os.WriteFile(outTxt, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("write transcript: %w", err)
	}

	if opts.WriteMetadata {
		meta := Metadata{
			Title:      title,
			UploadDate: uploadDate,
			VideoURL:   videoURL,
			SourceVTT:  vttPath,
			OutputTXT:  outTxt,
		}
		if err := writeMetadata(outTxt, meta); err != nil {
			slog.Warn("failed to write metadata sidecar", "err", err)
		}
	}

	if err := os.Remove(vttPath); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not delete VTT", "path", vttPath, "err", err)
	}
	return outTxt, nil
}

func writeMetadata(txtPath string, meta Metadata) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	jsonPath := strings.TrimSuffix(txtPath, filepath.Ext(txtPath)) + ".json"
	return os.WriteFile(jsonPath, append(data, '\n'), 0o644)
}

// sweepLeftovers converts any VTT files left in the output directory, e.g.
// from an interrupted earlier run. Title and date fall back to the file name.
func sweepLeftovers(opts Options) {
	leftovers, err := filepath.Glob(filepath.Join(opts.OutputDir, "*.vtt"))
	if err != nil || len(leftovers) == 0 {
		return
	}
	slog.Info("converting leftover VTT files", "count", len(leftovers))
	for _, vtt := range leftovers {
		stem, _, _ := strings.Cut(filepath.Base(vtt), ".")
		if _, err := Convert(vtt, stem, "", "", opts); err != nil {
			slog.Warn("leftover conversion failed", "file", filepath.Base(vtt), "err", err)
		}
	}
}

package ytdlp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SubsResult describes a downloaded caption track.
type SubsResult struct {
	VTTPath    string
	Title      string
	UploadDate string // yyyymmdd digits, possibly empty
}

// DownloadSubs fetches the subtitle track (manual or auto-generated) for one
// video into destDir as "<id>.<lang>.vtt" and returns its path along with the
// video title and upload date. Returns ErrNoCaptions when the video has no
// downloadable captions.
func (c *Client) DownloadSubs(ctx context.Context, url, destDir string) (*SubsResult, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	args := append(c.commonArgs(),
		"--skip-download",
		"--write-subs",
		"--write-auto-subs",
		"--sub-format", "vtt",
		"--sub-langs", strings.Join(c.opts.SubLangs, ","),
		"-o", filepath.Join(destDir, "%(id)s.%(ext)s"),
		"--no-simulate",
		"--print", "%(id)s",
		"--print", "%(title)s",
		"--print", "%(upload_date,release_date)s",
		url,
	)
	out, err := c.run(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("download subs %s: %w", url, err)
	}

	id, title, uploadDate := parsePrintedInfo(string(out))
	if id == "" {
		return nil, fmt.Errorf("download subs %s: no video info returned", url)
	}

	vtt, err := findVTT(destDir, id, c.opts.SubLangs)
	if err != nil {
		return nil, err
	}
	return &SubsResult{VTTPath: vtt, Title: title, UploadDate: uploadDate}, nil
}

// parsePrintedInfo reads the three --print lines: id, title, upload date.
// yt-dlp prints "NA" for missing fields; that is treated as empty.
func parsePrintedInfo(out string) (id, title, uploadDate string) {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	get := func(i int) string {
		if i >= len(lines) {
			return ""
		}
		v := strings.TrimSpace(lines[i])
		if v == "NA" {
			return ""
		}
		return v
	}
	return get(0), get(1), get(2)
}

// findVTT locates the downloaded subtitle file for a video id: first the
// exact per-language names, then any VTT with the id as prefix (yt-dlp may
// normalize language codes).
func findVTT(destDir, id string, langs []string) (string, error) {
	for _, lang := range langs {
		p := filepath.Join(destDir, id+"."+lang+".vtt")
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	matches, err := filepath.Glob(filepath.Join(destDir, id+"*.vtt"))
	if err != nil {
		return "", fmt.Errorf("glob subtitles: %w", err)
	}
	if len(matches) == 0 {
		return "", ErrNoCaptions
	}
	return matches[0], nil
}

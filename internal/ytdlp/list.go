package ytdlp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Entry is one video reference returned by a flat-playlist listing.
type Entry struct {
	ID    string
	Title string
	URL   string
}

// List resolves a channel/playlist/video URL into its ordered video entries
// using yt-dlp's flat-playlist mode, which emits one JSON object per line.
// Lines that fail to parse into a usable entry are skipped; the remaining
// entries are returned in source order.
func (c *Client) List(ctx context.Context, url string) ([]Entry, error) {
	args := append(c.commonArgs(), "--flat-playlist", "--skip-download", "-j", url)
	out, err := c.run(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", url, err)
	}

	var entries []Entry
	scanner := bufio.NewScanner(bytes.NewReader(out))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		if e, ok := parseEntryLine(scanner.Bytes()); ok {
			entries = append(entries, e)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan listing output: %w", err)
	}
	return entries, nil
}

// entryJSON mirrors the fields of a flat-playlist info line we care about.
type entryJSON struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	WebpageURL string `json:"webpage_url"`
}

// parseEntryLine parses one flat-playlist JSON line. ok is false for
// malformed lines and for entries with no resolvable URL; such records are
// skipped rather than failing the listing.
func parseEntryLine(line []byte) (Entry, bool) {
	if len(bytes.TrimSpace(line)) == 0 {
		return Entry{}, false
	}
	var raw entryJSON
	if err := json.Unmarshal(line, &raw); err != nil {
		return Entry{}, false
	}

	url := raw.URL
	if url == "" {
		url = raw.WebpageURL
	}
	if url == "" && raw.ID != "" {
		url = "https://www.youtube.com/watch?v=" + raw.ID
	}
	if url == "" {
		return Entry{}, false
	}
	return Entry{
		ID:    raw.ID,
		Title: strings.TrimSpace(raw.Title),
		URL:   url,
	}, true
}

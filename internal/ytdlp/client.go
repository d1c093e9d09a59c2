// Package ytdlp wraps the external yt-dlp binary for the two collaborator
// roles the cleaning core consumes: listing the videos behind a
// channel/playlist/video URL, and downloading a video's caption track as VTT.
package ytdlp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// ErrNoCaptions signals that a video advertises no downloadable captions.
// It is an expected per-video outcome, not a batch-fatal failure.
var ErrNoCaptions = errors.New("no captions available")

// Options mirrors the tweakable yt-dlp knobs. The zero value uses yt-dlp's
// builtin client with no cookies and no rate limit.
type Options struct {
	PlayerClient       string // e.g. web, android, ios
	POToken            string // needed by some player clients
	CookieFile         string // path to cookies.txt
	CookiesFromBrowser string // e.g. firefox, chrome
	RateLimitBytes     int64  // download rate limit in bytes/sec, 0 = unlimited
	SubLangs           []string
}

// Client runs yt-dlp subprocesses.
type Client struct {
	path string
	opts Options
}

// New builds a client for the given binary path. An empty path falls back to
// "yt-dlp" resolved via PATH.
func New(path string, opts Options) *Client {
	if path == "" {
		path = "yt-dlp"
	}
	if len(opts.SubLangs) == 0 {
		opts.SubLangs = []string{"en", "en-*"}
	}
	return &Client{path: path, opts: opts}
}

// CheckBinary verifies that the yt-dlp binary can be resolved.
func (c *Client) CheckBinary() error {
	if _, err := exec.LookPath(c.path); err != nil {
		return fmt.Errorf("yt-dlp not found (%s): %w", c.path, err)
	}
	return nil
}

// commonArgs builds the flags shared by every invocation.
func (c *Client) commonArgs() []string {
	// --no-config keeps user-level yt-dlp configs from changing behavior.
	args := []string{"--no-config", "--no-warnings", "--no-progress"}
	if c.opts.PlayerClient != "" {
		args = append(args, "--extractor-args", "youtube:player_client="+c.opts.PlayerClient)
	}
	if c.opts.POToken != "" {
		args = append(args, "--extractor-args", "youtube:po_token="+c.opts.POToken)
	}
	if c.opts.CookieFile != "" {
		args = append(args, "--cookies", c.opts.CookieFile)
	}
	if c.opts.CookiesFromBrowser != "" {
		args = append(args, "--cookies-from-browser", c.opts.CookiesFromBrowser)
	}
	if c.opts.RateLimitBytes > 0 {
		args = append(args, "--limit-rate", strconv.FormatInt(c.opts.RateLimitBytes, 10))
	}
	return args
}

// run executes yt-dlp and returns stdout, folding stderr into the error.
func (c *Client) run(ctx context.Context, args []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, c.path, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return out, fmt.Errorf("yt-dlp failed: %w: %s", err, msg)
		}
		return out, fmt.Errorf("yt-dlp failed: %w", err)
	}
	return out, nil
}

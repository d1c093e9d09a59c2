package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CleaningConfig holds the transcript-cleaning knobs threaded into the
// pipeline.
type CleaningConfig struct {
	// InlineFillers enables removal of filler phrases inside sentences, not
	// just standalone filler lines.
	InlineFillers bool `yaml:"inline_fillers"`

	// ExtraFillers are additional lowercase phrases to suppress on top of the
	// built-in set.
	ExtraFillers []string `yaml:"extra_fillers"`

	// FillersFile points to a newline-separated filler phrase list. Blank
	// lines and lines starting with '#' are ignored.
	FillersFile string `yaml:"fillers_file"`
}

// YtDlpConfig holds the knobs passed through to the yt-dlp binary.
type YtDlpConfig struct {
	Path               string   `yaml:"path"`
	PlayerClient       string   `yaml:"player_client"`
	POToken            string   `yaml:"po_token"`
	CookieFile         string   `yaml:"cookie_file"`
	CookiesFromBrowser string   `yaml:"cookies_from_browser"`
	RateLimit          string   `yaml:"rate_limit"` // human form, e.g. "500K" or "1M"
	SubLangs           []string `yaml:"sub_langs"`
}

// Config holds the full application configuration.
type Config struct {
	// OutputDir receives downloaded captions and converted transcripts.
	OutputDir string `yaml:"output_dir"`

	// LinkList is where the numbered "N. Title -> URL" listing is persisted.
	LinkList string `yaml:"link_list"`

	// TopN limits a batch to the first N videos; 0 or negative means all.
	TopN int `yaml:"top_n"`

	// WriteMetadata controls the JSON sidecar written next to each transcript.
	WriteMetadata bool `yaml:"write_metadata"`

	MaxConcurrent   int `yaml:"max_concurrent"`
	MaxRetries      int `yaml:"max_retries"`
	RateLimitPerMin int `yaml:"rate_limit_per_min"`

	Cleaning CleaningConfig `yaml:"cleaning"`
	YtDlp    YtDlpConfig    `yaml:"yt_dlp"`
}

// Default returns a Config with the built-in defaults.
func Default() *Config {
	return &Config{
		OutputDir:       "transcripts",
		LinkList:        "youtube_video_links.txt",
		TopN:            5,
		WriteMetadata:   true,
		MaxConcurrent:   3,
		MaxRetries:      3,
		RateLimitPerMin: 30,
		YtDlp: YtDlpConfig{
			Path:     "yt-dlp",
			SubLangs: []string{"en", "en-*"},
		},
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required fields and fills omitted ones with defaults.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.LinkList == "" {
		c.LinkList = "youtube_video_links.txt"
	}
	if c.YtDlp.Path == "" {
		c.YtDlp.Path = "yt-dlp"
	}
	if len(c.YtDlp.SubLangs) == 0 {
		c.YtDlp.SubLangs = []string{"en", "en-*"}
	}
	if c.MaxConcurrent <= 0 {
		c.MaxConcurrent = 3
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = 3
	}
	if c.RateLimitPerMin <= 0 {
		c.RateLimitPerMin = 30
	}
	if _, err := ParseRateLimit(c.YtDlp.RateLimit); err != nil {
		return fmt.Errorf("yt_dlp.rate_limit: %w", err)
	}
	return nil
}

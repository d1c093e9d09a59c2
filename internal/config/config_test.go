package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, "transcripts", cfg.OutputDir)
	require.Equal(t, []string{"en", "en-*"}, cfg.YtDlp.SubLangs)
	require.True(t, cfg.WriteMetadata)
	require.False(t, cfg.Cleaning.InlineFillers)
	require.NoError(t, cfg.Validate())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `
output_dir: out
top_n: 0
cleaning:
  inline_fillers: true
  extra_fillers: ["basically", "sort of"]
yt_dlp:
  player_client: web
  rate_limit: 500K
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "out", cfg.OutputDir)
	require.Equal(t, 0, cfg.TopN)
	require.True(t, cfg.Cleaning.InlineFillers)
	require.Equal(t, []string{"basically", "sort of"}, cfg.Cleaning.ExtraFillers)
	require.Equal(t, "web", cfg.YtDlp.PlayerClient)
	// Untouched fields keep their defaults.
	require.Equal(t, 3, cfg.MaxConcurrent)
	require.Equal(t, "yt-dlp", cfg.YtDlp.Path)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestValidate_RejectsBadRateLimit(t *testing.T) {
	cfg := Default()
	cfg.YtDlp.RateLimit = "fast please"
	require.Error(t, cfg.Validate())
}

func TestValidate_FillsZeroValues(t *testing.T) {
	cfg := &Config{OutputDir: "out"}
	require.NoError(t, cfg.Validate())
	require.Equal(t, 3, cfg.MaxConcurrent)
	require.Equal(t, 3, cfg.MaxRetries)
	require.Equal(t, 30, cfg.RateLimitPerMin)
	require.Equal(t, "yt-dlp", cfg.YtDlp.Path)
}

func TestParseRateLimit(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"", 0},
		{"1024", 1024},
		{"500K", 500 * 1024},
		{"1M", 1024 * 1024},
		{"1.5M", 1536 * 1024},
		{"2G", 2 * 1024 * 1024 * 1024},
		{"500k", 500 * 1024}, // case-insensitive
		{" 1M ", 1024 * 1024},
	}
	for _, tc := range cases {
		got, err := ParseRateLimit(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		require.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseRateLimit_Invalid(t *testing.T) {
	for _, in := range []string{"M", "1X", "abc", "1 M"} {
		_, err := ParseRateLimit(in)
		require.Error(t, err, "input %q", in)
	}
}

func TestLoadFillerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fillers.txt")
	data := "# comment\nUm\n\n  sort of  \nyou know\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	phrases, err := LoadFillerFile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"um", "sort of", "you know"}, phrases)
}

func TestCleaningConfig_Phrases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fillers.txt")
	require.NoError(t, os.WriteFile(path, []byte("right\n"), 0o644))

	c := CleaningConfig{ExtraFillers: []string{"basically"}, FillersFile: path}
	phrases, err := c.Phrases()
	require.NoError(t, err)
	require.Equal(t, []string{"basically", "right"}, phrases)

	_, err = CleaningConfig{FillersFile: filepath.Join(t.TempDir(), "absent")}.Phrases()
	require.Error(t, err)
}

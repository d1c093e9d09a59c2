package worker

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZZRSIC/YouTube-crawler/internal/pipeline"
)

func writeVTT(t *testing.T, dir, name string) string {
	t.Helper()
	content := "WEBVTT\n\n1\n00:00:01.000 --> 00:00:02.000\nhello world\n\n" +
		"2\n00:00:02.000 --> 00:00:03.000\nhello world again.\n"
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConvertVTT(t *testing.T) {
	dir := t.TempDir()
	vtt := writeVTT(t, dir, "abc123.en.vtt")

	opts := Options{WriteMetadata: true, Clean: pipeline.Options{}}
	outTxt, err := Convert(vtt, "My Talk: Part 1", "20240102", "https://example.com/v", opts)
	if err != nil {
		t.Fatal(err)
	}

	if filepath.Base(outTxt) != "My Talk_ Part 1_20240102.txt" {
		t.Errorf("unexpected output name: %s", filepath.Base(outTxt))
	}

	data, err := os.ReadFile(outTxt)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != "hello world again." {
		t.Errorf("unexpected transcript: %q", got)
	}

	// The VTT is removed after conversion.
	if _, err := os.Stat(vtt); !os.IsNotExist(err) {
		t.Errorf("expected VTT removed, stat err = %v", err)
	}

	// Sidecar metadata is written next to the transcript.
	metaPath := strings.TrimSuffix(outTxt, ".txt") + ".json"
	metaData, err := os.ReadFile(metaPath)
	if err != nil {
		t.Fatal(err)
	}
	var meta Metadata
	if err := json.Unmarshal(metaData, &meta); err != nil {
		t.Fatal(err)
	}
	if meta.Title != "My Talk: Part 1" || meta.VideoURL != "https://example.com/v" {
		t.Errorf("unexpected metadata: %+v", meta)
	}
	if meta.OutputTXT != outTxt || meta.SourceVTT != vtt {
		t.Errorf("unexpected metadata paths: %+v", meta)
	}
}

func TestConvertVTT_NoMetadata(t *testing.T) {
	dir := t.TempDir()
	vtt := writeVTT(t, dir, "abc123.en.vtt")

	outTxt, err := Convert(vtt, "Title", "", "", Options{WriteMetadata: false})
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(outTxt) != "Title_unknown.txt" {
		t.Errorf("expected unknown date part, got %s", filepath.Base(outTxt))
	}
	if _, err := os.Stat(strings.TrimSuffix(outTxt, ".txt") + ".json"); !os.IsNotExist(err) {
		t.Errorf("expected no sidecar, stat err = %v", err)
	}
}

func TestConvertVTT_EmptyTitleFallsBackToFileName(t *testing.T) {
	dir := t.TempDir()
	vtt := writeVTT(t, dir, "abc123.en.vtt")

	outTxt, err := Convert(vtt, "", "", "", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(filepath.Base(outTxt), "abc123") {
		t.Errorf("expected file-name fallback, got %s", filepath.Base(outTxt))
	}
}

func TestSweepLeftovers(t *testing.T) {
	dir := t.TempDir()
	writeVTT(t, dir, "leftover.en.vtt")

	sweepLeftovers(Options{OutputDir: dir})

	matches, _ := filepath.Glob(filepath.Join(dir, "*.vtt"))
	if len(matches) != 0 {
		t.Errorf("expected leftover VTTs converted, still present: %v", matches)
	}
	txts, _ := filepath.Glob(filepath.Join(dir, "*.txt"))
	if len(txts) != 1 {
		t.Fatalf("expected one transcript, got %v", txts)
	}
	if filepath.Base(txts[0]) != "leftover_unknown.txt" {
		t.Errorf("unexpected transcript name: %s", filepath.Base(txts[0]))
	}
}

func TestProcessSequential_EmptyList(t *testing.T) {
	sum := processSequential(context.Background(), nil, Options{})
	if sum.converted != 0 || sum.failed != 0 || sum.skipped != 0 {
		t.Errorf("expected zero summary, got %+v", sum)
	}
}

package fsutil

import (
	"strings"
	"testing"
)

func TestSlugify_ReplacesInvalidRunes(t *testing.T) {
	got := Slugify(`Lesson 1: "How/Why?" <Go>`)
	if strings.ContainsAny(got, `\/:*?"<>|`) {
		t.Errorf("slug still contains invalid characters: %q", got)
	}
}

func TestSlugify_CollapsesWhitespace(t *testing.T) {
	if got := Slugify("  too   many\tspaces  "); got != "too many spaces" {
		t.Errorf("expected collapsed whitespace, got %q", got)
	}
}

func TestSlugify_CapsLength(t *testing.T) {
	long := strings.Repeat("a", 200)
	if got := Slugify(long); len([]rune(got)) != 80 {
		t.Errorf("expected 80-rune cap, got %d runes", len([]rune(got)))
	}
}

func TestSlugify_EmptyFallsBack(t *testing.T) {
	if got := Slugify(""); got != "untitled" {
		t.Errorf("expected fallback, got %q", got)
	}
	if got := Slugify("   "); got != "untitled" {
		t.Errorf("expected fallback for whitespace, got %q", got)
	}
}

func TestDigitsOnly(t *testing.T) {
	cases := map[string]string{
		"20240102":   "20240102",
		"2024-01-02": "20240102",
		"unknown":    "",
		"":           "",
	}
	for in, want := range cases {
		if got := DigitsOnly(in); got != want {
			t.Errorf("DigitsOnly(%q) = %q, want %q", in, got, want)
		}
	}
}

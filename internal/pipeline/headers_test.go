package pipeline

import "testing"

func TestStripHeaderLine_Banners(t *testing.T) {
	dropped := []string{
		"Title: My Video",
		"title: lowercase label",
		"Date: 2024-01-02",
		"Link: https://example.com/watch?v=abc",
		"// filepath: /tmp/captions/video.en.vtt",
	}
	for _, line := range dropped {
		if got := StripHeaderLine(line); got != "" {
			t.Errorf("StripHeaderLine(%q) = %q, expected banner dropped", line, got)
		}
	}
}

func TestStripHeaderLine_KeepsContent(t *testing.T) {
	kept := []string{
		"the title of the talk was mentioned",
		"a line with Link: in the middle",
	}
	for _, line := range kept {
		if got := StripHeaderLine(line); got != line {
			t.Errorf("StripHeaderLine(%q) = %q, expected untouched", line, got)
		}
	}
}

func TestStripHeaderLine_KindLanguagePrefix(t *testing.T) {
	line := "Kind: captions Language: en The guiding principle is simple."
	want := "The guiding principle is simple."
	if got := StripHeaderLine(line); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	// A bare preamble with no trailing content drops entirely.
	if got := StripHeaderLine("Kind: captions Language: en-US"); got != "" {
		t.Errorf("expected bare preamble dropped, got %q", got)
	}
}

func TestStripHeaders_PreservesBlankLines(t *testing.T) {
	input := "Title: My Video\nfirst paragraph.\n\nsecond paragraph."
	want := "first paragraph.\n\nsecond paragraph."
	if got := StripHeaders(input); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

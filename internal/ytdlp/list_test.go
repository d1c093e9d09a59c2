package ytdlp

import "testing"

func TestParseEntryLine_WellFormed(t *testing.T) {
	line := []byte(`{"id":"abc123","title":"A Talk","url":"https://www.youtube.com/watch?v=abc123"}`)
	e, ok := parseEntryLine(line)
	if !ok {
		t.Fatal("expected entry parsed")
	}
	if e.ID != "abc123" || e.Title != "A Talk" {
		t.Errorf("unexpected entry: %+v", e)
	}
}

func TestParseEntryLine_FallbackURLs(t *testing.T) {
	// webpage_url when url is absent.
	e, ok := parseEntryLine([]byte(`{"id":"x","title":"t","webpage_url":"https://example.com/w"}`))
	if !ok || e.URL != "https://example.com/w" {
		t.Errorf("expected webpage_url fallback, got %+v ok=%v", e, ok)
	}

	// synthesized watch URL when only the id is present.
	e, ok = parseEntryLine([]byte(`{"id":"abc123","title":"t"}`))
	if !ok || e.URL != "https://www.youtube.com/watch?v=abc123" {
		t.Errorf("expected watch URL synthesized, got %+v ok=%v", e, ok)
	}
}

func TestParseEntryLine_Skipped(t *testing.T) {
	skipped := [][]byte{
		nil,
		[]byte("   "),
		[]byte("not json"),
		[]byte(`{"title":"no id, no url"}`),
	}
	for _, line := range skipped {
		if _, ok := parseEntryLine(line); ok {
			t.Errorf("expected line %q skipped", line)
		}
	}
}

func TestParsePrintedInfo(t *testing.T) {
	id, title, date := parsePrintedInfo("abc123\nA Talk\n20240102\n")
	if id != "abc123" || title != "A Talk" || date != "20240102" {
		t.Errorf("unexpected parse: %q %q %q", id, title, date)
	}

	// "NA" means the field is missing.
	_, _, date = parsePrintedInfo("abc123\nA Talk\nNA\n")
	if date != "" {
		t.Errorf("expected empty date for NA, got %q", date)
	}

	id, _, _ = parsePrintedInfo("")
	if id != "" {
		t.Errorf("expected empty id, got %q", id)
	}
}

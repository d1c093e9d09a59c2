package pipeline

import (
	"html"
	"regexp"
	"strings"
)

var (
	// cueIndexRe matches a line that is nothing but a decimal cue number.
	cueIndexRe = regexp.MustCompile(`^\d+$`)

	// inlineTagRe matches bracketed inline markup such as the per-word timing
	// and styling spans of auto-generated captions: <00:00:01.000>, <c>, </c>.
	inlineTagRe = regexp.MustCompile(`<[^>]+>`)
)

// timingArrow separates the start and end timestamps of a cue timing line.
const timingArrow = "-->"

// NormalizeLine strips timing cues, indices, and inline markup from a single
// raw caption line and unescapes text entities. An empty result means the line
// carries no visible dialogue and should be dropped. Normalizing an
// already-normalized line returns it unchanged.
func NormalizeLine(raw string) string {
	line := strings.TrimSpace(strings.Trim(raw, "\uFEFF"))
	if line == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToUpper(line), "WEBVTT") {
		return ""
	}
	if cueIndexRe.MatchString(line) {
		return ""
	}
	// A timing line is cue metadata, never content.
	if strings.Contains(line, timingArrow) {
		return ""
	}

	line = inlineTagRe.ReplaceAllString(line, " ")
	line = html.UnescapeString(line)
	return collapseWhitespace(line)
}

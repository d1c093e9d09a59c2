package pipeline

import (
	"regexp"
	"strings"
)

// blankRunRe matches three or more consecutive newlines, i.e. two or more
// blank lines in a row.
var blankRunRe = regexp.MustCompile(`\n{3,}`)

// normalizeNewlines converts CRLF and bare CR line endings to LF.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// collapseWhitespace collapses internal whitespace runs to a single space and
// trims both ends.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Reflow normalizes whitespace within each line, caps consecutive blank lines
// at one (bounding paragraph-gap size), and trims leading and trailing blank
// lines.
func Reflow(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = collapseWhitespace(line)
	}
	text = strings.Join(lines, "\n")
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// SplitParagraphs splits reflowed text on blank-line boundaries, dropping any
// paragraphs emptied by upstream filtering.
func SplitParagraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(text, "\n\n") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

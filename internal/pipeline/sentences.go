package pipeline

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// SplitSentences splits a paragraph at boundaries immediately following a
// sentence-terminal character and a run of whitespace. The terminator stays
// attached to its sentence; the whitespace run is consumed.
func SplitSentences(paragraph string) []string {
	text := strings.TrimSpace(paragraph)
	if text == "" {
		return nil
	}

	var (
		parts     []string
		b         strings.Builder
		afterTerm bool
		inGap     bool
	)
	for _, r := range text {
		if inGap {
			if unicode.IsSpace(r) {
				continue
			}
			inGap = false
		}
		if unicode.IsSpace(r) && afterTerm {
			parts = append(parts, b.String())
			b.Reset()
			afterTerm = false
			inGap = true
			continue
		}
		b.WriteRune(r)
		afterTerm = isSentenceTerminator(r)
	}
	if b.Len() > 0 {
		parts = append(parts, b.String())
	}
	return parts
}

// compareKey reduces a sentence to its comparison form: Unicode-normalized,
// lowercased, whitespace-collapsed, with all non-word non-space characters
// removed. Two sentences differing only in case, punctuation, or whitespace
// share a key.
func compareKey(s string) string {
	s = norm.NFKC.String(s)
	s = strings.ToLower(s)
	s = collapseWhitespace(s)

	var b strings.Builder
	for _, r := range s {
		if r == ' ' || r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// DedupSentences removes immediately-adjacent duplicate sentences within one
// paragraph, comparing by compareKey so exact restatements that differ only in
// punctuation, case, or whitespace collapse to a single occurrence. Sentences
// from different paragraphs are never compared. Kept sentences are rejoined
// with single spaces.
func DedupSentences(paragraph string) string {
	var kept []string
	prevKey := ""
	for _, part := range SplitSentences(paragraph) {
		s := strings.TrimSpace(part)
		if s == "" {
			continue
		}
		key := compareKey(s)
		if key != "" && key == prevKey {
			continue
		}
		kept = append(kept, s)
		prevKey = key
	}
	return strings.Join(kept, " ")
}

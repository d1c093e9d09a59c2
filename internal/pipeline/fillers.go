package pipeline

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// FillerSet is a set of lowercase phrases to suppress. Built once per run and
// treated as read-only for the duration of a cleaning pass.
type FillerSet map[string]struct{}

// defaultFillers are the hesitation sounds and discourse markers removed by
// default.
var defaultFillers = []string{
	"aha",
	"mmhm",
	"mhm",
	"yep",
	"uh",
	"um",
	"you know",
	"like",
}

// DefaultFillers returns a fresh copy of the built-in filler set.
func DefaultFillers() FillerSet {
	return NewFillerSet()
}

// NewFillerSet builds a FillerSet from the built-in defaults plus extra
// phrases. Extras are lowercased and trimmed; empty strings are ignored.
func NewFillerSet(extra ...string) FillerSet {
	s := make(FillerSet, len(defaultFillers)+len(extra))
	for _, p := range defaultFillers {
		s[p] = struct{}{}
	}
	for _, p := range extra {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			s[p] = struct{}{}
		}
	}
	return s
}

// Contains reports whether phrase is in the set. The phrase must already be
// lowercase.
func (s FillerSet) Contains(phrase string) bool {
	_, ok := s[phrase]
	return ok
}

// sortedLongestFirst returns the phrases ordered longest-first so that longer
// phrases are removed before any phrase they contain ("you know" before
// "you"). Ties break lexicographically for determinism.
func (s FillerSet) sortedLongestFirst() []string {
	phrases := make([]string, 0, len(s))
	for p := range s {
		phrases = append(phrases, p)
	}
	sort.Slice(phrases, func(i, j int) bool {
		if len(phrases[i]) != len(phrases[j]) {
			return len(phrases[i]) > len(phrases[j])
		}
		return phrases[i] < phrases[j]
	})
	return phrases
}

// nonLetterSpaceRe strips everything except ASCII letters and spaces when
// reducing a line to its filler-comparison form.
var nonLetterSpaceRe = regexp.MustCompile(`[^A-Za-z ]+`)

// maxFillerLineLen bounds the simplified length of a line that may be dropped
// as a standalone filler. Longer lines are real sentences even if their
// letters happen to spell a filler phrase.
const maxFillerLineLen = 20

// FilterFillerLines drops lines that consist of nothing but a filler phrase.
// Comparison is conservative: the line is reduced to letters and spaces,
// lowercased, and must match a phrase exactly while staying short. Blank lines
// are preserved.
func FilterFillerLines(text string, fillers FillerSet) string {
	var kept []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			kept = append(kept, "")
			continue
		}
		simplified := strings.ToLower(strings.TrimSpace(nonLetterSpaceRe.ReplaceAllString(line, "")))
		if len(simplified) <= maxFillerLineLen && fillers.Contains(simplified) {
			continue
		}
		kept = append(kept, raw)
	}
	return strings.Join(kept, "\n")
}

// RemoveInlineFillers removes case-insensitive whole-word occurrences of each
// filler phrase anywhere in the text, longest phrase first. Single-letter
// phrases without an internal space are skipped to avoid mangling words.
// Leftover double spaces or emptied lines are normalized downstream by
// Reflow, not here.
func RemoveInlineFillers(text string, fillers FillerSet) string {
	for _, phrase := range fillers.sortedLongestFirst() {
		if !strings.Contains(phrase, " ") && utf8.RuneCountInString(phrase) <= 1 {
			continue
		}
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
		text = re.ReplaceAllString(text, "")
	}
	return text
}

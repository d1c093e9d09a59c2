package pipeline

import (
	"strings"
	"unicode/utf8"
)

// sentenceTerminators are the characters that end a sentence. A caption line
// ending in one of these flushes the current paragraph buffer, and the same
// set drives sentence splitting during deduplication.
var sentenceTerminators = map[rune]struct{}{
	'.': {},
	'!': {},
	'?': {},
	'…': {},
}

// isSentenceTerminator checks whether a rune ends a sentence.
func isSentenceTerminator(r rune) bool {
	_, ok := sentenceTerminators[r]
	return ok
}

// endsWithTerminator reports whether text ends with a sentence-terminal
// character after trailing whitespace is ignored.
func endsWithTerminator(text string) bool {
	text = strings.TrimRight(text, " \t")
	if text == "" {
		return false
	}
	lastRune, _ := utf8.DecodeLastRuneInString(text)
	if lastRune == utf8.RuneError {
		return false
	}
	return isSentenceTerminator(lastRune)
}

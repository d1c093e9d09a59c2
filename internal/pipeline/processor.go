package pipeline

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Clean runs the full caption-cleaning pipeline: fold the raw timed-caption
// text into paragraphs, then normalize the folded text into clean prose. It is
// a pure, deterministic, total function over any UTF-8 input.
func Clean(raw string, opts Options) string {
	return CleanTranscript(FoldCaptions(norm.NFKC.String(raw)), opts)
}

// CleanBytes cleans a raw caption file read from disk. Invalid UTF-8
// sequences are replaced rather than treated as fatal, so cleaning never
// fails on a mis-encoded file.
func CleanBytes(raw []byte, opts Options) string {
	text := string(raw)
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, string(utf8.RuneError))
	}
	return Clean(text, opts)
}

// CleanTranscript normalizes already-folded transcript text: strips header
// banners, removes filler lines (and, when enabled, inline filler phrases),
// normalizes whitespace, and deduplicates adjacent sentences within each
// paragraph. Paragraphs in the result are separated by a single blank line.
func CleanTranscript(text string, opts Options) string {
	text = norm.NFKC.String(text)
	text = normalizeNewlines(text)
	text = StripHeaders(text)

	fillers := opts.fillerSet()
	text = FilterFillerLines(text, fillers)
	if opts.InlineFillers {
		text = RemoveInlineFillers(text, fillers)
	}

	text = Reflow(text)

	paragraphs := SplitParagraphs(text)
	out := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		if deduped := DedupSentences(p); deduped != "" {
			out = append(out, deduped)
		}
	}
	return strings.Join(out, "\n\n")
}

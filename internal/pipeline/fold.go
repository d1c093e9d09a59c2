package pipeline

import "strings"

// folder is the paragraph-folding state machine. It has two states: an empty
// buffer (just flushed) and a non-empty buffer (accumulating). The single
// transition rule is that a buffered line ending in a sentence terminator
// flushes the buffer as one paragraph.
//
// Auto-generated caption tracks re-emit overlapping text as each caption
// window slides, so the folder also drops a line that exactly repeats the
// previously kept line, and replaces a buffered line when the next kept line
// extends it word-for-word.
type folder struct {
	buf        []string
	prev       string // last kept line, for adjacent dedup across cues
	paragraphs []string
}

// feed consumes one normalized line. Empty lines are skipped.
func (f *folder) feed(line string) {
	if line == "" {
		return
	}
	if line == f.prev {
		return
	}
	// Rolling-window extension: the new cue repeats the previous line with
	// more words appended. Keep only the longer form.
	if f.prev != "" && len(f.buf) > 0 && strings.HasPrefix(line, f.prev+" ") {
		f.buf = f.buf[:len(f.buf)-1]
	}
	f.prev = line
	f.buf = append(f.buf, line)
	if endsWithTerminator(line) {
		f.flush()
	}
}

// flush emits the buffered lines as one paragraph. A no-op on an empty buffer,
// so a document ending exactly at a sentence boundary produces no empty
// trailing paragraph.
func (f *folder) flush() {
	if len(f.buf) == 0 {
		return
	}
	f.paragraphs = append(f.paragraphs, strings.Join(f.buf, " "))
	f.buf = nil
}

// FoldCaptions converts a raw timed-caption document into paragraph text.
// Every line is normalized, provenance banners are stripped, immediate repeats
// are dropped, and the remaining dialogue lines are folded into paragraphs at
// sentence-terminal punctuation. A trailing buffer without a terminator is
// still flushed, so no dialogue is lost when the document ends mid-sentence.
// Paragraphs are joined with a single newline each.
func FoldCaptions(raw string) string {
	var f folder
	for _, rawLine := range strings.Split(normalizeNewlines(raw), "\n") {
		f.feed(StripHeaderLine(NormalizeLine(rawLine)))
	}
	f.flush()
	return strings.Join(f.paragraphs, "\n")
}

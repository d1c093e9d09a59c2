package pipeline

import (
	"regexp"
	"strings"
)

var (
	// metaLabelRe matches provenance banner lines previously written next to a
	// transcript: a recognized metadata label followed by a colon.
	metaLabelRe = regexp.MustCompile(`(?i)^(Title|Date|Link):\s*`)

	// kindLangRe matches the caption-kind/language preamble YouTube sometimes
	// prepends to the first content line, e.g.
	// "Kind: captions Language: en The guiding principle...".
	kindLangRe = regexp.MustCompile(`(?i)^\s*Kind:\s*captions\s+Language:\s*[-\w]+\s*`)
)

// sourcePathPrefix marks a source-path comment emitted by editors/exporters.
const sourcePathPrefix = "// filepath:"

// StripHeaderLine removes provenance metadata from a single line. It returns
// "" when the whole line is a banner (drop it), otherwise the line with any
// kind/language preamble removed.
func StripHeaderLine(line string) string {
	line = strings.TrimSpace(strings.Trim(line, "\uFEFF"))
	if line == "" {
		return ""
	}
	if strings.HasPrefix(line, sourcePathPrefix) {
		return ""
	}
	if metaLabelRe.MatchString(line) {
		return ""
	}
	return strings.TrimSpace(kindLangRe.ReplaceAllString(line, ""))
}

// StripHeaders applies StripHeaderLine to every line of text, dropping banner
// lines entirely. Blank lines are preserved so paragraph breaks survive.
func StripHeaders(text string) string {
	var kept []string
	for _, raw := range strings.Split(text, "\n") {
		if strings.TrimSpace(raw) == "" {
			kept = append(kept, "")
			continue
		}
		line := StripHeaderLine(raw)
		if line == "" {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

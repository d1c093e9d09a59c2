package fsutil

import (
	"regexp"
	"strings"
)

// invalidFileRunes are characters not allowed in file names on common
// filesystems.
var invalidFileRunes = regexp.MustCompile(`[\\/:*?"<>|]`)

// maxSlugLen caps the slug so titles never blow past filesystem name limits
// once the date suffix and extension are appended.
const maxSlugLen = 80

// Slugify turns a video title into a safe file name stem: forbidden characters
// become underscores, whitespace runs collapse to single spaces, and the
// result is capped at 80 runes. An empty result falls back to "untitled".
func Slugify(name string) string {
	name = invalidFileRunes.ReplaceAllString(name, "_")
	name = strings.Join(strings.Fields(name), " ")
	if runes := []rune(name); len(runes) > maxSlugLen {
		name = string(runes[:maxSlugLen])
	}
	if name == "" {
		return "untitled"
	}
	return name
}

// DigitsOnly strips every non-digit rune, reducing an upload date like
// "2024-01-02" or "20240102" to its digits.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

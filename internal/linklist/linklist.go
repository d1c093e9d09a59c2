// Package linklist reads and writes the numbered video listing that a batch
// run persists between the listing and download phases:
//
//	1. First Video Title -> https://www.youtube.com/watch?v=...
//	2. Second Video Title -> https://www.youtube.com/watch?v=...
package linklist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Item is one parsed record of the link-list file.
type Item struct {
	Index int
	Title string
	URL   string
}

// FormatLine renders one Item in the on-disk form.
func FormatLine(it Item) string {
	return fmt.Sprintf("%d. %s -> %s", it.Index, it.Title, it.URL)
}

// Format renders the whole list, one record per line.
func Format(items []Item) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, FormatLine(it))
	}
	return strings.Join(lines, "\n")
}

// ParseLine parses a single "N. Title -> URL" record. ok is false when the
// line is not a well-formed record and should be skipped; the batch loop
// collects only successes.
func ParseLine(line string) (Item, bool) {
	left, url, found := strings.Cut(line, "->")
	if !found {
		return Item{}, false
	}
	numPart, title, found := strings.Cut(left, ".")
	if !found {
		return Item{}, false
	}
	idx, err := strconv.Atoi(strings.TrimSpace(numPart))
	if err != nil {
		return Item{}, false
	}
	return Item{
		Index: idx,
		Title: strings.TrimSpace(title),
		URL:   strings.TrimSpace(url),
	}, true
}

// Parse reads a link list, skipping malformed lines.
func Parse(r io.Reader) ([]Item, error) {
	var items []Item
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if it, ok := ParseLine(scanner.Text()); ok {
			items = append(items, it)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read link list: %w", err)
	}
	return items, nil
}

// ParseFile reads a link list from disk.
func ParseFile(path string) ([]Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open link list: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// WriteFile persists the list to disk, one record per line.
func WriteFile(path string, items []Item) error {
	data := Format(items)
	if data != "" {
		data += "\n"
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("write link list: %w", err)
	}
	return nil
}

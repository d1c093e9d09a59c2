package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadFillerFile reads a newline-separated filler phrase list. Phrases are
// lowercased and trimmed; blank lines and '#' comments are skipped.
func LoadFillerFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fillers file: %w", err)
	}
	defer f.Close()

	var phrases []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		phrases = append(phrases, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read fillers file: %w", err)
	}
	return phrases, nil
}

// Phrases collects all extra filler phrases from the config: the inline list
// plus, when configured, the contents of the fillers file.
func (c CleaningConfig) Phrases() ([]string, error) {
	phrases := append([]string(nil), c.ExtraFillers...)
	if c.FillersFile != "" {
		fromFile, err := LoadFillerFile(c.FillersFile)
		if err != nil {
			return nil, err
		}
		phrases = append(phrases, fromFile...)
	}
	return phrases, nil
}

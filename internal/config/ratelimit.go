package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// rateLimitRe matches human-friendly rate limits like "500K" or "1.5M".
var rateLimitRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)([KMG]?)$`)

// ParseRateLimit converts a human-friendly rate limit ("500K", "1M", "2G")
// into integer bytes per second. An empty string means no limit and returns 0.
func ParseRateLimit(value string) (int64, error) {
	value = strings.ToUpper(strings.TrimSpace(value))
	if value == "" {
		return 0, nil
	}
	m := rateLimitRe.FindStringSubmatch(value)
	if m == nil {
		return 0, fmt.Errorf("invalid rate limit %q", value)
	}
	number, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid rate limit %q: %w", value, err)
	}
	factor := 1.0
	switch m[2] {
	case "K":
		factor = 1024
	case "M":
		factor = 1024 * 1024
	case "G":
		factor = 1024 * 1024 * 1024
	}
	return int64(number * factor), nil
}

package helpers

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// FormatTimeUntil renders the gap between now and start as a compact
// countdown ("2d 4h 10m"). Zero-valued buckets are omitted; a gap under
// one minute renders the floor string, and a start in the past renders
// the started marker. Seconds are never shown.
func FormatTimeUntil(start, now time.Time) string {
	diff := start.Sub(now)
	if diff <= 0 {
		return "Event has started!"
	}

	days := int(diff.Hours()) / 24
	hours := int(diff.Hours()) % 24
	minutes := int(diff.Minutes()) % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}

	if len(parts) == 0 {
		return "Less than 1 minute"
	}
	return strings.Join(parts, " ")
}

// Today truncates a time to the start of its day in UTC, the reference
// point for leader term comparisons.
func Today(now time.Time) time.Time {
	return now.UTC().Truncate(24 * time.Hour)
}

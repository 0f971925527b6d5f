package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTimeUntil(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		start    time.Time
		expected string
	}{
		{"days hours minutes", now.Add(49*time.Hour + 30*time.Minute), "2d 1h 30m"},
		{"hours and minutes only", now.Add(3*time.Hour + 5*time.Minute), "3h 5m"},
		{"minutes only", now.Add(42 * time.Minute), "42m"},
		{"zero buckets omitted", now.Add(48 * time.Hour), "2d"},
		{"under a minute", now.Add(30 * time.Second), "Less than 1 minute"},
		{"already started", now.Add(-time.Minute), "Event has started!"},
		{"starts exactly now", now, "Event has started!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatTimeUntil(tt.start, now))
		})
	}
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Hour, ParseDuration("2h", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("garbage", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
}

func TestToday(t *testing.T) {
	now := time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), Today(now))
}

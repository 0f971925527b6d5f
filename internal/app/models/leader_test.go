package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLeaderIsCurrent(t *testing.T) {
	today := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	datePtr := func(y int, m time.Month, d int) *time.Time {
		t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &t
	}

	tests := []struct {
		name    string
		endDate *time.Time
		current bool
	}{
		{"open-ended term is current", nil, true},
		{"end date in the future", datePtr(2026, 1, 1), true},
		{"ends today still counts", datePtr(2025, 6, 15), true},
		{"ended yesterday is past", datePtr(2025, 6, 14), false},
		{"ended long ago is past", datePtr(2020, 1, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leader := &Leader{
				FullName:  "Test Leader",
				StartDate: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
				EndDate:   tt.endDate,
			}
			assert.Equal(t, tt.current, leader.IsCurrent(today))
		})
	}
}

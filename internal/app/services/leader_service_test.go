package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models"
)

func TestSortLeadersCurrentFirst(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	ended := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	leaders := []*models.Leader{
		{FullName: "Okello Sam", Position: "Chairperson", EndDate: &ended},
		{FullName: "Atim Joan", Position: "Treasurer"},
		{FullName: "Byaruhanga Ivan", Position: "Chairperson"},
		{FullName: "Akello Rita", Position: "Treasurer", EndDate: &ended},
	}

	sortLeadersCurrentFirst(leaders, now)

	names := make([]string, len(leaders))
	for i, l := range leaders {
		names[i] = l.FullName
	}

	// Current terms first, each block ordered position then name.
	assert.Equal(t, []string{
		"Byaruhanga Ivan",
		"Atim Joan",
		"Okello Sam",
		"Akello Rita",
	}, names)
}

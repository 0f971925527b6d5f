package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPerPage(t *testing.T) {
	tests := []struct {
		name           string
		raw            string
		defaultPerPage int
		expected       int
	}{
		{"empty uses default", "", 2, 2},
		{"not a number uses default", "abc", 2, 2},
		{"in range passes through", "5", 2, 5},
		{"below minimum clamps up", "0", 2, 1},
		{"negative clamps up", "-3", 2, 1},
		{"above maximum clamps down", "50", 2, 10},
		{"boundary low", "1", 2, 1},
		{"boundary high", "10", 2, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClampPerPage(tt.raw, tt.defaultPerPage))
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name       string
		totalCount int64
		perPage    int
		expected   int
	}{
		{"zero items", 0, 3, 0},
		{"exact multiple", 6, 3, 2},
		{"partial last page", 7, 3, 3},
		{"single item", 1, 3, 1},
		{"zero per page", 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TotalPages(tt.totalCount, tt.perPage))
		})
	}
}

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := CalculateOffsetLimit(3, 20)
	assert.Equal(t, uint64(40), offset)
	assert.Equal(t, 20, limit)

	// Invalid sizes fall back to the default page size.
	offset, limit = CalculateOffsetLimit(2, 0)
	assert.Equal(t, uint64(10), offset)
	assert.Equal(t, DefaultPageSize, limit)

	// Page numbers below 1 are treated as page 1.
	offset, _ = CalculateOffsetLimit(0, 10)
	assert.Equal(t, uint64(0), offset)
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(25, 2, 10)
	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, 10, info.PageSize)
	assert.Equal(t, int64(25), info.TotalItems)

	// An empty result set still reports one page for page 1.
	info = NewPaginationInfo(0, 1, 10)
	assert.Equal(t, 1, info.TotalPages)

	// Requesting past the end clamps the current page.
	info = NewPaginationInfo(5, 9, 10)
	assert.Equal(t, 1, info.CurrentPage)
}

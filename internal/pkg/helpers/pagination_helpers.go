package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models/dto"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 1 // Default page is 1-based

	// The public feeds clamp per_page much tighter than admin lists.
	FeedMaxPerPage = 10
	FeedMinPerPage = 1
)

// CalculateOffsetLimit calculates the offset and limit for SQL queries based on 1-based page index.
func CalculateOffsetLimit(page, size int) (offset uint64, limit int) {
	if size <= 0 || size > MaxPageSize {
		limit = DefaultPageSize
	} else {
		limit = size
	}

	if page < 1 {
		page = DefaultPage
	}

	offset = uint64((page - 1) * limit)
	return offset, limit
}

// NewPaginationInfo creates a standard PaginationInfo DTO.
// page should be the 1-based page number.
func NewPaginationInfo(totalItems int64, page, size int) dto.PaginationInfo {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(size)))
	} else if page == 1 {
		totalPages = 1
	}

	currentPage := page
	if totalPages > 0 && currentPage > totalPages {
		currentPage = totalPages
	}

	return dto.PaginationInfo{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		PageSize:    size,
		TotalItems:  totalItems,
	}
}

// ParsePaginationParams extracts and validates pagination parameters from the request
func ParsePaginationParams(c *gin.Context) (page, size int) {
	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = DefaultPage
	}

	sizeStr := c.DefaultQuery("size", "10")
	size, err = strconv.Atoi(sizeStr)
	if err != nil || size <= 0 || size > MaxPageSize {
		size = DefaultPageSize
	}

	return page, size
}

// ClampPerPage constrains a raw per_page query value to the feed range,
// falling back to the feed's default when absent or not a number.
func ClampPerPage(raw string, defaultPerPage int) int {
	if raw == "" {
		return defaultPerPage
	}
	perPage, err := strconv.Atoi(raw)
	if err != nil {
		return defaultPerPage
	}
	if perPage < FeedMinPerPage {
		return FeedMinPerPage
	}
	if perPage > FeedMaxPerPage {
		return FeedMaxPerPage
	}
	return perPage
}

// TotalPages returns ceil(totalCount / perPage) for the feed envelopes.
func TotalPages(totalCount int64, perPage int) int {
	if totalCount <= 0 || perPage <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalCount) / float64(perPage)))
}

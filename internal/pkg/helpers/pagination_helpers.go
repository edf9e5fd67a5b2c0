package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	DefaultPage     = 1 // 1-based
)

// NormalizePagination clamps page and pageSize to valid values.
func NormalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize <= 0 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}
	return page, pageSize
}

// CalculateOffsetLimit converts a 1-based page index into an SQL offset
// and limit.
func CalculateOffsetLimit(page, pageSize int) (offset int, limit int) {
	page, limit = NormalizePagination(page, pageSize)
	offset = (page - 1) * limit
	return offset, limit
}

// ParsePaginationParams extracts and validates the page and pageSize
// query parameters from the request.
func ParsePaginationParams(c *gin.Context) (page, pageSize int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	pageSize, err = strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(DefaultPageSize)))
	if err != nil || pageSize <= 0 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}

	return page, pageSize
}

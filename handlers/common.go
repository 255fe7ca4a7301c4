package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// isUniqueViolation detects a unique-constraint failure from the sqlite driver
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// pagination reads page/limit query params with the usual defaults
func pagination(c *gin.Context) (page, limit, offset int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 {
		limit = 10
	}
	return page, limit, (page - 1) * limit
}

// totalPages is ceil(total/limit)
func totalPages(total int64, limit int) int64 {
	return (total + int64(limit) - 1) / int64(limit)
}

// parseID parses a numeric path parameter
func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	return uint(id), err
}

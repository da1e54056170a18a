package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseID extracts the numeric :id path parameter. ok is false when the
// segment is not a positive integer; the caller decides how to respond.
func ParseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

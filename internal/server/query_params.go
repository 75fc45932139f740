package server

import (
	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
)

// parseIDParam parses a snowflake path param. A malformed id can never
// name an existing row, so callers treat failure as not-found.
func parseIDParam(c *gin.Context, name string) (snowflake.ID, bool) {
	id, err := snowflake.ParseString(c.Param(name))
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, target any) error {
	if err := c.ShouldBindJSON(target); err != nil {
		return ErrInvalidRequest
	}
	return nil
}

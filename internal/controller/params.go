package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// uintParam parses a numeric path parameter, 0 and false when malformed.
func uintParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

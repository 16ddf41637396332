// Package handlers is the thin API layer: bind the request, call the entity
// service, map the result onto status codes and message bodies.
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rmartins/tabletrack/internal/httpx"
)

// pathID parses the :id route parameter. On failure it writes the 400
// response itself and reports false.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httpx.Message(c, 400, "Invalid id!")
		return 0, false
	}
	return uint(id), true
}

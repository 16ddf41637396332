// Package httpx maps service results onto the wire format: every non-2xx
// response is a {"message": "..."} body.
package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rmartins/tabletrack/internal/services"
)

// Message writes a {"message": ...} body with the given status.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// Error translates a service error into its HTTP status and message. Internal
// failures are logged and surfaced generically so persistence detail never
// reaches the client.
func Error(c *gin.Context, log *zap.Logger, err error) {
	switch services.KindOf(err) {
	case services.KindValidation, services.KindBlocked:
		Message(c, http.StatusBadRequest, err.Error())
	case services.KindConflict:
		Message(c, http.StatusConflict, err.Error())
	case services.KindNotFound:
		Message(c, http.StatusNotFound, err.Error())
	default:
		log.Error("internal error",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		Message(c, http.StatusInternalServerError, "Something went wrong!")
	}
}

// BadRequest reports an unreadable payload.
func BadRequest(c *gin.Context) {
	Message(c, http.StatusBadRequest, "Invalid request body!")
}

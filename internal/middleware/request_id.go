package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"activities-service/internal/logger"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with a uuid, echoes it in the response
// header and logs the request outcome.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(requestIDHeader, id)

		c.Next()

		logger.Info("request handled", map[string]any{
			"request_id": id,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
		})
	}
}

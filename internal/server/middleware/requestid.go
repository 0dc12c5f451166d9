package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skriptor-labs/postwise/internal/logger"
)

// requestIDHeader is the wire header carrying the request correlation id.
const requestIDHeader = "X-Request-Id"

// RequestID tags every request with a correlation id: the incoming header
// value when the client supplied one, a fresh UUID otherwise. The id lands
// in the gin context under logger.FieldRequestID for the request logger
// and is echoed back on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(logger.FieldRequestID, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

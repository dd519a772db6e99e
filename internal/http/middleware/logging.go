// README: Request logging with a per-request id.
package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"
	ctxRequestID    = "request.id"
)

func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxRequestID, id)
		c.Header(HeaderRequestID, id)

		start := time.Now()
		c.Next()
		log.Printf("http: %s %s %s %d %s", id, c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}

func RequestID(c *gin.Context) string {
	return c.GetString(ctxRequestID)
}

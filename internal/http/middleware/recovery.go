// README: Panic recovery returning a JSON 500.
package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("http: %s panic: %v\n%s", RequestID(c), r, debug.Stack())
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error"})
			}
		}()
		c.Next()
	}
}

// README: Firebase bearer-token auth and role checks.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"smartpark/internal/infra"
)

const (
	ctxUID  = "auth.uid"
	ctxRole = "auth.role"
)

// Auth rejects requests without a valid "Bearer <firebase id token>" header.
func Auth(verifier infra.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "access denied: no token provided"})
			return
		}
		token, err := verifier.VerifyIDToken(c.Request.Context(), strings.TrimSpace(raw))
		if err != nil || token == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid token"})
			return
		}
		c.Set(ctxUID, token.UID)
		c.Set(ctxRole, token.Role())
		c.Next()
	}
}

// RequireRole must run after Auth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := CallerRole(c)
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "access denied: insufficient role"})
	}
}

func CallerUID(c *gin.Context) string {
	return c.GetString(ctxUID)
}

func CallerRole(c *gin.Context) string {
	return c.GetString(ctxRole)
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/imf-ops/gadget-api/pkg/helpers"
	"github.com/imf-ops/gadget-api/pkg/response"
)

// CtxUserIDKey is the Gin context key under which the authenticated user id
// is stored for downstream handlers.
const CtxUserIDKey = "userID"

// BearerAuth extracts the bearer token from the Authorization header,
// validates signature and expiry, and injects the user id into the context.
// Missing, malformed, expired, and badly signed tokens all abort with 401.
func BearerAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.AbortError(c, http.StatusUnauthorized, "missing authorization header")
			return
		}
		parts := strings.SplitN(header, " ", 2)
		// A token containing whitespace (e.g. a doubled "Bearer" prefix) is
		// malformed, not merely invalid.
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" || strings.ContainsAny(parts[1], " \t") {
			response.AbortError(c, http.StatusUnauthorized, "malformed authorization header")
			return
		}
		claims, err := jwt.Parse(parts[1])
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}

package middleware

import (
	"net/http"
	"strings"

	"sanskruti-travels-service/services"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the admin session token.
const SessionCookieName = "sanskruti_session"

var authService services.InterfaceAuthService

// InitAuthMiddleware wires the auth service into the middleware package
func InitAuthMiddleware(auth services.InterfaceAuthService) {
	authService = auth
}

// ExtractSessionToken pulls the session token from the session cookie or,
// failing that, from a Bearer authorization header.
func ExtractSessionToken(c *gin.Context) string {
	if token, err := c.Cookie(SessionCookieName); err == nil && token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// RequireAuth gates admin-only routes. It rejects before the handler runs,
// so a protected operation can never execute partially, and stores the
// session claims in the request context for handlers that want them.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractSessionToken(c)

		claims, ok := authService.Check(token)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Unauthorized",
			})
			c.Abort()
			return
		}

		c.Set("adminID", claims.AdminID)
		c.Set("adminUsername", claims.Username)
		c.Next()
	}
}

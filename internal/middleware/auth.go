package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Garimajunejaa/jobportall/internal/auth"
)

const (
	// CookieName is the session cookie set at login and cleared at logout.
	CookieName = "token"

	ctxUserIDKey = "userID"
	ctxRoleKey   = "role"
)

// Authenticate verifies the token from the session cookie or the
// Authorization header and attaches the caller's identity to the request
// context. Identity is always request-scoped, never process-wide.
func Authenticate(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			abortUnauthorized(c, "User not authenticated")
			return
		}
		claims, err := tokens.Parse(token)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}
		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRole guards routes that only one role may call. It must run after
// Authenticate.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if Role(c) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Access restricted to " + role + " accounts",
			})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated caller's id; zero when unauthenticated.
func UserID(c *gin.Context) uint {
	id, _ := c.Get(ctxUserIDKey)
	userID, _ := id.(uint)
	return userID
}

func Role(c *gin.Context) string {
	value, _ := c.Get(ctxRoleKey)
	role, _ := value.(string)
	return role
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(CookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
	})
}

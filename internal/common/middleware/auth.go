package middleware

import (
	"net/http"
	"strings"

	authservice "taskearn-backend/internal/features/auth/service"
	usermodels "taskearn-backend/internal/features/user/models"

	"github.com/gin-gonic/gin"
)

const (
	ctxKeyUser         = "user"
	ctxKeyUserID       = "user_id"
	ctxKeySessionToken = "session_token"

	// Cookie fallback for browser clients that do not set the header.
	authCookieName = "auth_token"
)

// SessionAuth resolves the session token into the cached user projection
// and stores it in the request context. Requests without a valid session
// pass through anonymous; RequireAuth gates the protected routes.
func SessionAuth(authService authservice.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		user, err := authService.CurrentUser(c.Request.Context(), token)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ctxKeyUser, user)
		c.Set(ctxKeyUserID, user.ID)
		c.Set(ctxKeySessionToken, token)
		c.Next()
	}
}

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, exists := c.Get(ctxKeyUser)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: session token required"})
			return
		}

		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: session token required"})
			return
		}

		if user.Role != usermodels.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Next()
	}
}

// CurrentUser returns the session user projection, or nil for anonymous
// requests.
func CurrentUser(c *gin.Context) *usermodels.UserResponse {
	v, exists := c.Get(ctxKeyUser)
	if !exists {
		return nil
	}

	user, ok := v.(*usermodels.UserResponse)
	if !ok {
		return nil
	}
	return user
}

// UserID returns the authenticated user's id, or "" for anonymous requests.
func UserID(c *gin.Context) string {
	if id, exists := c.Get(ctxKeyUserID); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

// SessionToken returns the raw session token of the current request.
func SessionToken(c *gin.Context) string {
	if token, exists := c.Get(ctxKeySessionToken); exists {
		if s, ok := token.(string); ok {
			return s
		}
	}
	return ""
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}

	return ""
}

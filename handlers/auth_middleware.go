package handlers

import (
	"net/http"

	"devtrack-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthCookieName is the session cookie set at sign-in
const AuthCookieName = "auth-token"

const (
	contextUserIDKey = "userID"
	contextEmailKey  = "userEmail"
)

// RequireAuth verifies the session cookie and stores the caller's identity in
// the request context. Requests without a valid cookie get a 401 and never
// reach the handler.
func RequireAuth(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AuthCookieName)
		if err != nil || token == "" {
			abortUnauthorized(c)
			return
		}

		payload, err := authService.VerifyToken(token)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(contextUserIDKey, payload.UserID)
		c.Set(contextEmailKey, payload.Email)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": "authentication required",
		},
	})
}

// currentUserID returns the authenticated user's ID set by RequireAuth
func currentUserID(c *gin.Context) uuid.UUID {
	id, _ := c.Get(contextUserIDKey)
	userID, _ := id.(uuid.UUID)
	return userID
}

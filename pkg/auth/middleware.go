package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key under which the authenticated user's
// ID is stored.
const ContextUserID = "userID"

const tokenCookie = "token"

// Middleware authenticates a request from the token cookie or a Bearer
// Authorization header and stores the user ID in the context.
func Middleware(tokens *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(tokenCookie)
		if err != nil || token == "" {
			if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
				token = strings.TrimPrefix(h, "Bearer ")
			}
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false, "message": "user not authenticated",
			})
			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, ErrExpiredToken) {
				msg = "token expired, please login again"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false, "message": msg,
			})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID returns the authenticated user's ID set by Middleware.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

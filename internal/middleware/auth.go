package middleware

import (
	"net/http"
	"strings"

	"quibble/internal/token"

	"github.com/gin-gonic/gin"
)

const CallerIDKey = "caller_id"

// AuthRequired verifies the Authorization bearer credential and stores the
// caller's user id in the context. The store is not consulted: a valid
// signature is trusted even if the account row has since disappeared.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}

		raw := authHeader
		if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			raw = parts[1]
		}

		userID, err := token.VerifyAccess(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		c.Set(CallerIDKey, userID)
		c.Next()
	}
}

// CallerID returns the authenticated user id set by AuthRequired.
func CallerID(c *gin.Context) uint {
	return c.MustGet(CallerIDKey).(uint)
}

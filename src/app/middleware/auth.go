package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"forumapi/src/app/http/response"
	"forumapi/src/core/ports"
)

// UserIDKey is the context key holding the authenticated user id.
const UserIDKey = "user_id"

// BearerAuth enforces a valid access token in the Authorization header.
// On success it stores the token's user id in the context under UserIDKey.
func BearerAuth(tokens ports.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := GetRequestID(c)

		token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found || token == "" {
			response.Unauthorized(c, "Missing authentication", requestID)
			c.Abort()
			return
		}

		userID, err := tokens.VerifyAccessToken(token)
		if err != nil {
			response.Unauthorized(c, "invalid access token", requestID)
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// GetUserID returns the authenticated user id, or "" outside BearerAuth.
func GetUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

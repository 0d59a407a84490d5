package middleware

import (
	"github.com/gin-gonic/gin"

	"second-brain/cmd/api/auth"
)

// UserIDKey is the gin context key holding the authenticated user id.
const UserIDKey = "user_id"

// TokenParser verifies an access token and returns the user id.
type TokenParser interface {
	ParseAccessToken(token string) (string, error)
}

// RequireAuth rejects requests without a valid bearer token and stores
// the user id in the context for handlers.
func RequireAuth(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		userID, err := parser.ParseAccessToken(token)
		if err != nil {
			auth.AbortWithUnauthorized(c, auth.ErrInvalidToken)
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id set by RequireAuth.
func UserID(c *gin.Context) string {
	id, _ := c.Get(UserIDKey)
	s, _ := id.(string)
	return s
}

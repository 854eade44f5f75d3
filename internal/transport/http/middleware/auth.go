package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const errUnauthorized = "Authorization required"

// TokenVerifier is the subset of token.Manager the gate needs.
type TokenVerifier interface {
	Verify(raw string) (string, error)
}

// Auth is the gate in front of every protected route. It accepts only an
// Authorization header of the exact shape "Bearer <token>", verifies the
// token, and sets "userID" in the gin context. Handlers behind it trust
// that value as the request identity and nothing else.
func Auth(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": errUnauthorized})
			return
		}

		subject, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": errUnauthorized})
			return
		}

		c.Set("userID", subject)
		c.Next()
	}
}

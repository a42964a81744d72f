package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Himanshur25/recipe-master/internal/apperr"
)

// TokenClaims is the decoded identity a bearer token carries.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
}

// TokenValidator is an interface for validating JWT tokens
type TokenValidator interface {
	ValidateToken(token string) (*TokenClaims, error)
}

// Auth validates the bearer token and stores the caller's identity in the
// request context. Missing, malformed and expired tokens are rejected with
// the same response.
func Auth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			abortUnauthorized(c)
			return
		}

		claims, err := validator.ValidateToken(parts[1])
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	failure := apperr.Unauthorized()
	c.AbortWithStatusJSON(failure.Code, gin.H{
		"statusCode": failure.Code,
		"data":       gin.H{},
		"message":    failure.Message,
	})
}

// UserID returns the authenticated caller's id from the request context.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}

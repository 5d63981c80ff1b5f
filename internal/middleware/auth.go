package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/cardinalnav/campus-backend-go/pkg/response"
)

// Claims is the JWT payload for setup-mode sessions.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Auth validates a Bearer token and stores the claims in the context.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			response.Unauthorized(c, "Missing authorization token")
			c.Abort()
			return
		}
		token = strings.TrimPrefix(token, "Bearer ")

		claims := &Claims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			return secret, nil
		})
		if err != nil || !parsed.Valid {
			response.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Next()
	}
}

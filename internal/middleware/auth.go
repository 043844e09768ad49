package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/slot-booker/internal/httperr"
)

const (
	ContextUserID    = "userID"
	ContextRequestID = "requestID"
)

// AuthMiddleware validates an HS256 bearer token and stores its subject.
// With an empty secret every request passes unauthenticated.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing_authorization_header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "invalid_authorization_header")
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(secret), nil
		}, jwt.WithExpirationRequired())
		if err != nil || !token.Valid {
			abortUnauthorized(c, "invalid_token")
			return
		}

		sub, err := token.Claims.GetSubject()
		if err != nil || sub == "" {
			abortUnauthorized(c, "invalid_token_payload")
			return
		}

		c.Set(ContextUserID, sub)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, code string) {
	httperr.Unauthorized(c, code, "unauthorized.")
	c.Abort()
}

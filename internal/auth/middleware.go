package auth

import (
	"net/http"
	"strings"

	"fintrack/internal/api"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey    = "user_id"
	userEmailKey = "user_email"
)

// AuthMiddleware resolves the bearer token to a user id. A missing token is
// 401, a token that does not validate is 403.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, present := bearerToken(c.GetHeader("Authorization"))
		if !present {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Authentication token required."})
			return
		}

		claims, err := validate(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, api.ErrorResponse{Message: "Invalid or expired token."})
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Set(userEmailKey, claims.Email)

		c.Next()
	}
}

func validate(tokenString, secret string) (*JWTClaims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}
	return ValidateToken(tokenString, secret)
}

// bearerToken returns the token of an Authorization header and whether a
// credential was sent at all. The scheme matches case-insensitively; a
// credential under any other scheme is present but yields no token.
func bearerToken(header string) (string, bool) {
	fields := strings.Fields(header)
	if len(fields) < 2 {
		return "", false
	}
	if !strings.EqualFold(fields[0], "Bearer") {
		return "", true
	}
	return fields[1], true
}

func GetUserID(c *gin.Context) (int64, bool) {
	userID, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}

	id, ok := userID.(int64)
	if !ok {
		return 0, false
	}

	return id, true
}

// SetUserID stores id the way AuthMiddleware does.
func SetUserID(c *gin.Context, id int64) {
	c.Set(userIDKey, id)
}

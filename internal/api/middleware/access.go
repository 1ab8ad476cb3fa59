package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"moto-catalog-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the bearer token claims accepted by AccessControl
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AccessControl grants or denies calls based on an HS256 bearer token.
// It performs no authorization beyond checking the token.
type AccessControl struct {
	secret []byte
}

// NewAccessControl creates access control for tokens signed with secret
func NewAccessControl(secret string) *AccessControl {
	return &AccessControl{secret: []byte(secret)}
}

// Validate parses and verifies a token string
func (a *AccessControl) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// RequireAuth rejects requests without a valid bearer token and records the
// caller for log lines
func (a *AccessControl) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := a.Validate(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			return
		}

		user := claims.Username
		if user == "" {
			user = claims.Subject
		}
		c.Set("username", user)
		c.Request = c.Request.WithContext(logger.ContextWithUser(c.Request.Context(), user))
		c.Next()
	}
}

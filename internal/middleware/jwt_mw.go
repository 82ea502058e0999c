package middleware

import (
	"net/http"
	"strings"

	"sisauth/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	AuthUserKey  = "authUser"
	AuthTokenKey = "authToken"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			unauthenticated(c)
			return
		}

		userID, err := jwtUtil.Verify(tokenString)
		if err != nil {
			log.Debug().Err(err).Str("path", c.FullPath()).Msg("token rejected")
			unauthenticated(c)
			return
		}

		c.Set(AuthUserKey, userID)
		c.Set(AuthTokenKey, tokenString)

		c.Next()
	}
}

// AuthUserID returns the id set by JWTAuthMiddleware.
func AuthUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(AuthUserKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok && id > 0
}

// AuthToken returns the raw bearer token of the current request.
func AuthToken(c *gin.Context) (string, bool) {
	v, exists := c.Get(AuthTokenKey)
	if !exists {
		return "", false
	}
	token, ok := v.(string)
	return token, ok && token != ""
}

func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

func unauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated."})
}

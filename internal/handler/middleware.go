package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lifecal/backend/internal/model"
	"github.com/lifecal/backend/internal/service"
	"github.com/rs/zerolog/log"
)

const authUserKey = "auth_user"

// AuthMiddleware guards protected routes. It extracts the bearer token,
// verifies it as an access token and attaches the caller's identity to
// the request context. Token contents are never logged.
func AuthMiddleware(tokens *service.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		token := ""
		if strings.HasPrefix(header, "Bearer ") {
			token = strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.Response{
				Success: false,
				Error:   "Access token required",
			})
			return
		}

		claims, err := tokens.VerifyAccess(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, model.Response{
				Success: false,
				Error:   "Invalid or expired token",
			})
			return
		}

		c.Set(authUserKey, &model.AuthUser{
			UserID: claims.UserID,
			Email:  claims.Email,
		})
		c.Next()
	}
}

// GetAuthUser returns the identity attached by AuthMiddleware, or nil
// on an unauthenticated request.
func GetAuthUser(c *gin.Context) *model.AuthUser {
	if value, ok := c.Get(authUserKey); ok {
		if user, ok := value.(*model.AuthUser); ok {
			return user
		}
	}
	return nil
}

// RequestLogger emits one structured line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

package httpapi

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Toxic209/noteForge/internal/apperror"
	"github.com/Toxic209/noteForge/internal/server/auth"
)

const ctxUserIDKey = "userID"

// requireAuth extracts the bearer token, verifies it, and stores the
// requester's user id on the gin context.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			s.respondError(c, apperror.Unauthorized("missing or malformed authorization header"))
			c.Abort()
			return
		}

		userID, err := auth.GetUserIDFromToken(strings.TrimPrefix(header, "Bearer "), s.jwtSecret)
		if err != nil {
			s.respondError(c, apperror.Unauthorized("invalid or expired token"))
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Next()
	}
}

// requesterID returns the authenticated user id placed by requireAuth.
func requesterID(c *gin.Context) string {
	return c.GetString(ctxUserIDKey)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}

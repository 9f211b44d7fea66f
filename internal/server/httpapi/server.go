// Package httpapi is the HTTP/JSON transport over the account service. It
// owns request decoding and validation, bearer-token authentication, and the
// translation of typed service errors into HTTP responses.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Toxic209/noteForge/internal/logging"
	"github.com/Toxic209/noteForge/internal/server/config"
	"github.com/Toxic209/noteForge/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

// UserService is the slice of the account service the transport consumes.
type UserService interface {
	Register(ctx context.Context, username, email, password, firstName, lastName string) (*services.Registration, error)
	Login(ctx context.Context, identifier, password string) (string, error)
	GetProfile(ctx context.Context, id string) (*services.Profile, error)
	Delete(ctx context.Context, requesterID, targetID string) error
	UpdateUsername(ctx context.Context, id, newUsername string) error
	UpdateEmail(ctx context.Context, id, newEmail, currentPassword string) error
	UpdatePassword(ctx context.Context, id, newPassword, currentPassword string) error
}

type Server struct {
	address          string
	logger           logging.Logger
	users            UserService
	jwtSecret        []byte
	tokenValidityDur time.Duration
}

func NewServer(cfg *config.Config, l logging.Logger, us UserService) *Server {
	return &Server{
		address:          cfg.EndpointAddrHTTP,
		logger:           l.With("module", "httpapi"),
		users:            us,
		jwtSecret:        []byte(cfg.SecretKey),
		tokenValidityDur: cfg.AccessTokenValidityDuration,
	}
}

func (s *Server) routes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	api.POST("/users", s.register)
	api.POST("/auth/login", s.login)

	authed := api.Group("", s.requireAuth())
	authed.GET("/users/:userId", s.profile)
	authed.DELETE("/users/:userId", s.deleteUser)
	authed.PATCH("/users/me/username", s.updateUsername)
	authed.PATCH("/users/me/email", s.updateEmail)
	authed.PATCH("/users/me/password", s.updatePassword)

	return router
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

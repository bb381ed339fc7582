package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/minashiro/recruit-admin/internal/clients/auth"
	"github.com/minashiro/recruit-admin/internal/logger"
	"github.com/minashiro/recruit-admin/internal/provider"
	log "github.com/sirupsen/logrus"
)

// Server exposes the provider's verbs as a uniform JSON API for the admin SPA.
type Server struct {
	echo       *echo.Echo
	provider   *provider.Provider
	authClient *auth.Client
	tokens     *auth.TokenStore
	port       int
}

func NewServer(prov *provider.Provider, authClient *auth.Client, tokens *auth.TokenStore, port int) *Server {

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(requestLogging())

	s := &Server{
		echo:       e,
		provider:   prov,
		authClient: authClient,
		tokens:     tokens,
		port:       port,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {

	s.echo.POST("/auth/login", s.login)

	admin := s.echo.Group("/admin")
	admin.GET("/:resource", s.getList)
	admin.GET("/:resource/:id", s.getOne)
	admin.POST("/:resource", s.create)
	admin.PUT("/:resource/many", s.updateMany)
	admin.PUT("/:resource/:id", s.update)
	admin.DELETE("/:resource/many", s.deleteMany)
	admin.DELETE("/:resource/:id", s.delete)
	admin.PUT("/advertisements/:id/approval", s.approve)
	admin.PUT("/advertisements/:id/rejection", s.reject)
}

func (s *Server) Start() error {
	log.Infof("gateway listening on port %d", s.port)
	return s.echo.Start(fmt.Sprintf(":%d", s.port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func requestLogging() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			entry := log.WithFields(log.Fields{
				"method":  c.Request().Method,
				"path":    c.Request().URL.Path,
				"status":  c.Response().Status,
				"elapsed": time.Since(start).String(),
			})
			if err != nil {
				entry.WithField(logger.ErrorTypeField, logger.ErrorTypeGateway).
					Errorf("request failed: %v", err)
			} else {
				entry.Debug("request handled")
			}
			return err
		}
	}
}

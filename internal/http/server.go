// Package http provides the API and metrics HTTP servers.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/allisson/storefront/internal/auth/domain"
	authHTTP "github.com/allisson/storefront/internal/auth/http"
	"github.com/allisson/storefront/internal/config"
	"github.com/allisson/storefront/internal/metrics"
	productHTTP "github.com/allisson/storefront/internal/product/http"
	userHTTP "github.com/allisson/storefront/internal/user/http"
)

const readinessTimeout = 2 * time.Second

// Handlers groups the domain handlers mounted by SetupRouter.
type Handlers struct {
	Auth          *authHTTP.AuthHandler
	User          *userHTTP.UserHandler
	Product       *productHTTP.ProductHandler
	Authenticator authHTTP.TokenAuthenticator
}

// Server is the public API server.
type Server struct {
	db     *sql.DB
	server *http.Server
	router *gin.Engine
	logger *slog.Logger

	// ctx bounds background work started by the router, such as rate limiter cleanup.
	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a Server. SetupRouter must be called before Start.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		db:     db,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the gin engine. Every API route declares its authorization policy here:
//
//	POST   /api/auth/login      anonymous, per-IP rate limited
//	GET    /api/auth/me         authenticated
//	GET    /api/products        authenticated
//	GET    /api/products/:id    authenticated
//	POST   /api/products        role ADMIN
//	PUT    /api/products/:id    role ADMIN
//	DELETE /api/products/:id    role ADMIN
//	POST   /api/users           role ADMIN
func (s *Server) SetupRouter(cfg *config.Config, handlers Handlers, metricsProvider *metrics.Provider) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	policy := func(p authDomain.Policy) gin.HandlerFunc {
		return authHTTP.AuthorizationMiddleware(p, s.logger)
	}
	authenticated := authDomain.PolicyAuthenticated
	adminOnly := authDomain.RequireRole(authDomain.RoleAdmin)

	api := router.Group("/api")

	login := []gin.HandlerFunc{}
	if cfg.RateLimitLoginEnabled {
		login = append(login, authHTTP.LoginRateLimitMiddleware(
			s.ctx,
			cfg.RateLimitLoginRequestsPerSec,
			cfg.RateLimitLoginBurst,
			s.logger,
		))
	}
	login = append(login, authHTTP.Protect(authDomain.PolicyAnonymous, handlers.Authenticator, s.logger)...)
	login = append(login, handlers.Auth.LoginHandler)
	api.POST("/auth/login", login...)

	protected := api.Group("")
	protected.Use(authHTTP.AuthenticationMiddleware(handlers.Authenticator, false, s.logger))
	if cfg.RateLimitEnabled {
		protected.Use(authHTTP.RateLimitMiddleware(s.ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	protected.GET("/auth/me", policy(authenticated), handlers.Auth.MeHandler)

	products := protected.Group("/products")
	{
		products.GET("", policy(authenticated), handlers.Product.ListHandler)
		products.GET("/:id", policy(authenticated), handlers.Product.GetHandler)
		products.POST("", policy(adminOnly), handlers.Product.CreateHandler)
		products.PUT("/:id", policy(adminOnly), handlers.Product.UpdateHandler)
		products.DELETE("/:id", policy(adminOnly), handlers.Product.DeleteHandler)
	}

	protected.POST("/users", policy(adminOnly), handlers.User.CreateUserHandler)

	s.router = router
	s.server.Handler = router
}

// GetHandler returns the configured handler, or nil before SetupRouter.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start serves until Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	if s.server.Handler == nil && s.router != nil {
		s.server.Handler = s.router
	}

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown stops accepting connections, waits for in-flight requests and stops background work.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	defer s.cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) readinessHandler(c *gin.Context) {
	database := "ok"
	if s.db == nil {
		database = "error"
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
		defer cancel()
		if err := s.db.PingContext(ctx); err != nil {
			s.logger.Warn("readiness check failed", slog.Any("error", err))
			database = "error"
		}
	}

	status, code := "ready", http.StatusOK
	if database != "ok" {
		status, code = "not_ready", http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":     status,
		"components": gin.H{"database": database},
	})
}

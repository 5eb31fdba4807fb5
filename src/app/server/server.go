// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"forumapi/src/app/http/handler"
	"forumapi/src/app/http/response"
	"forumapi/src/app/middleware"
	"forumapi/src/core/ports"
	"forumapi/src/core/usecase"
	"forumapi/src/infra/config"
)

// Dependencies are the adapters the server wires into its use cases.
type Dependencies struct {
	Threads  ports.ThreadRepository
	Comments ports.CommentRepository
	Users    ports.UserRepository
	Auths    ports.AuthenticationRepository
	Hasher   ports.PasswordHash
	Tokens   ports.TokenManager

	// Store is probed by /health/detailed. It may be nil.
	Store ports.Repository
}

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server
	tokens ports.TokenManager

	// Handlers
	healthHandler  *handler.HealthHandler
	userHandler    *handler.UserHandler
	authHandler    *handler.AuthHandler
	threadHandler  *handler.ThreadHandler
	commentHandler *handler.CommentHandler
}

// New creates a new Server with all dependencies wired up.
func New(cfg *config.Config, log *slog.Logger, deps Dependencies) *Server {
	// Set Gin mode based on log level
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router without default middleware
	router := gin.New()

	// Create services
	healthService := usecase.NewHealthService(deps.Store, log)
	userService := usecase.NewUserService(deps.Users, deps.Hasher, log)
	authService := usecase.NewAuthService(deps.Users, deps.Auths, deps.Hasher, deps.Tokens, log)
	threadService := usecase.NewThreadService(deps.Threads, deps.Comments, log)
	commentService := usecase.NewCommentService(deps.Threads, deps.Comments, log)

	s := &Server{
		cfg:            cfg,
		log:            log,
		router:         router,
		tokens:         deps.Tokens,
		healthHandler:  handler.NewHealthHandler(healthService),
		userHandler:    handler.NewUserHandler(userService),
		authHandler:    handler.NewAuthHandler(authService),
		threadHandler:  handler.NewThreadHandler(threadService),
		commentHandler: handler.NewCommentHandler(commentService),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// Order matters: Recovery should be first to catch all panics
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.Metrics())
	s.router.Use(middleware.Logging(s.log))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Operational endpoints (no auth required)
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.POST("/users", s.userHandler.Post)

	s.router.POST("/authentications", s.authHandler.Login)
	s.router.PUT("/authentications", s.authHandler.Refresh)
	s.router.DELETE("/authentications", s.authHandler.Logout)

	s.router.GET("/threads/:threadId", s.threadHandler.Get)

	authed := s.router.Group("/threads", middleware.BearerAuth(s.tokens))
	{
		authed.POST("", s.threadHandler.Post)
		authed.POST("/:threadId/comments", s.commentHandler.Post)
		authed.DELETE("/:threadId/comments/:commentId", s.commentHandler.Delete)
	}

	// Handle 404
	s.router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "The requested resource was not found", middleware.GetRequestID(c))
	})
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// Run starts the HTTP server and blocks until shutdown.
// It handles graceful shutdown on SIGINT/SIGTERM.
func (s *Server) Run() error {
	// Channel to receive shutdown signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Channel to receive server errors
	errCh := make(chan error, 1)

	go func() {
		s.log.Info("starting HTTP server",
			"addr", s.cfg.Server.Addr(),
		)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		s.log.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		return err
	}

	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("server stopped gracefully")
	return nil
}

// Router returns the Gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}

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
	"time"

	"github.com/gin-gonic/gin"

	"squadrate/src/app/http/handler"
	"squadrate/src/app/middleware"
	"squadrate/src/core/ports"
	"squadrate/src/core/usecase"
	"squadrate/src/infra/config"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server
	repo   ports.RatingRepository

	// Handlers
	healthHandler      *handler.HealthHandler
	authHandler        *handler.AuthHandler
	playerHandler      *handler.PlayerHandler
	roundHandler       *handler.RoundHandler
	ratingHandler      *handler.RatingHandler
	leaderboardHandler *handler.LeaderboardHandler
	commentHandler     *handler.CommentHandler
	adminHandler       *handler.AdminHandler
}

// New creates a new Server with all dependencies wired up.
func New(cfg *config.Config, log *slog.Logger, repo ports.RatingRepository) *Server {
	// Set Gin mode based on log level
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router without default middleware
	router := gin.New()

	// Create services
	healthService := usecase.NewHealthService(repo, log)
	authService := usecase.NewAuthService(repo, cfg.Admin.Name, log)
	playerService := usecase.NewPlayerService(repo, cfg.Admin.Name, log)
	roundService := usecase.NewRoundService(repo, log)
	ratingService := usecase.NewRatingService(repo, log)
	leaderboardService := usecase.NewLeaderboardService(repo, log)
	commentService := usecase.NewCommentService(repo, log)

	s := &Server{
		cfg:                cfg,
		log:                log,
		router:             router,
		repo:               repo,
		healthHandler:      handler.NewHealthHandler(healthService),
		authHandler:        handler.NewAuthHandler(authService),
		playerHandler:      handler.NewPlayerHandler(playerService),
		roundHandler:       handler.NewRoundHandler(roundService),
		ratingHandler:      handler.NewRatingHandler(ratingService),
		leaderboardHandler: handler.NewLeaderboardHandler(leaderboardService),
		commentHandler:     handler.NewCommentHandler(commentService),
		adminHandler:       handler.NewAdminHandler(playerService, roundService, commentService),
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
	s.router.Use(middleware.Logging(s.log))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check endpoints (no auth required)
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)

	v1 := s.router.Group("/v1")
	{
		// Login
		v1.POST("/auth/login", s.authHandler.Login)

		// Player-authenticated routes
		authed := v1.Group("")
		authed.Use(middleware.PlayerAuth(s.repo))
		{
			authed.GET("/players", s.playerHandler.List)
			authed.GET("/rounds/current", s.roundHandler.Current)

			authed.GET("/ratings/order", s.ratingHandler.Order)
			authed.GET("/ratings/status", s.ratingHandler.Status)
			authed.POST("/ratings", s.ratingHandler.Submit)

			authed.GET("/leaderboard", s.leaderboardHandler.Current)
			authed.GET("/leaderboard/overall", s.leaderboardHandler.Overall)

			authed.GET("/comments", s.commentHandler.List)
			authed.POST("/comments", s.commentHandler.Post)
			authed.POST("/comments/:comment_id/vote", s.commentHandler.Vote)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AdminAuth(s.repo, s.cfg.Admin.Name))
		{
			admin.POST("/players", s.adminHandler.AddPlayer)
			admin.DELETE("/players/:name", s.adminHandler.RemovePlayer)
			admin.PATCH("/players/:name", s.adminHandler.SetEligibility)

			admin.POST("/rounds/lock", s.adminHandler.LockRound)
			admin.POST("/rounds/unlock", s.adminHandler.UnlockRound)
			admin.POST("/rounds/reset", s.adminHandler.ResetRound)

			admin.DELETE("/comments/:comment_id", s.adminHandler.DeleteComment)
		}
	}

	// Handle 404
	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": gin.H{
				"code":       "NOT_FOUND",
				"message":    "The requested resource was not found",
				"request_id": middleware.GetRequestID(c),
			},
		})
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

	// Start server in goroutine
	go func() {
		s.log.Info("starting HTTP server",
			"addr", s.cfg.Server.Addr(),
		)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-quit:
		s.log.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		return err
	}

	// Graceful shutdown
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

// WaitForReady waits until the server is ready to accept connections.
// Useful for integration tests.
func (s *Server) WaitForReady(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := http.Get(fmt.Sprintf("http://%s/health", s.cfg.Server.Addr()))
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	return fmt.Errorf("server not ready after %v", timeout)
}

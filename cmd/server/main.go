package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/manthan161203/Leetcode-agent/internal/config"
	"github.com/manthan161203/Leetcode-agent/internal/handlers"
	"github.com/manthan161203/Leetcode-agent/internal/middleware"
	"github.com/manthan161203/Leetcode-agent/internal/routes"
	"github.com/manthan161203/Leetcode-agent/internal/services"
	"github.com/manthan161203/Leetcode-agent/pkg/logger"
)

func main() {
	// 0. Load Config & Initialize Logger
	config.LoadConfig()

	// Environment-based logger initialization (production = JSON, development = pretty)
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	logger.Info().Str("environment", env).Msg("Starting LeetCode GitHub Agent...")

	// Set Gin mode based on environment
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 1. Wire the pipeline
	gemini := services.NewGeminiClient(
		config.AppConfig.GoogleAPIKey,
		config.AppConfig.GeminiAPIURL,
		config.AppConfig.GeminiModel,
	)
	handlers.Pipeline = services.NewPipeline(gemini, config.AppConfig.GithubAPIURL)

	if config.AppConfig.GoogleAPIKey == "" {
		logger.Warn().Msg("GOOGLE_API_KEY not set, submissions will fail at extraction")
	}

	// 2. Setup Router
	r := gin.New()

	// Middlewares
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.ErrorHandlerMiddleware())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.GeneralRateLimit())

	// 3. Register Routes
	api := r.Group("/api")
	{
		routes.RegisterGithubRoutes(api)
		routes.RegisterSolutionRoutes(api)
	}

	r.GET("/health", handlers.Health)

	// 4. Start Server with graceful shutdown
	port := config.AppConfig.Port
	if port == "" {
		port = "8080"
	}

	// Submissions sit on two LLM round trips, so the write timeout is
	// generous compared to a normal API.
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info().Str("port", port).Str("env", env).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server gracefully...")

	// Give outstanding requests 10 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited gracefully")
}

// cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mcqs-helper/internal/api/handlers"
	"mcqs-helper/internal/config"
	"mcqs-helper/internal/gemini"
	"mcqs-helper/internal/middleware"
	"mcqs-helper/internal/resend"
	"mcqs-helper/internal/services"
	"mcqs-helper/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	// Initialize logger
	logger := utils.GetLogger()
	logger.Info("Starting MCQS helper backend...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	// Fail fast on missing provider credentials instead of discovering it
	// per request.
	if err := cfg.ValidateResend(); err != nil {
		logger.WithError(err).Fatal("Resend configuration validation failed")
	}
	if err := cfg.ValidateGemini(); err != nil {
		logger.WithError(err).Fatal("Gemini configuration validation failed")
	}

	// Initialize collaborator clients
	resendClient := resend.NewClient(cfg.Resend.BaseURL, cfg.Resend.APIKey, cfg.Resend.Timeout, logger)
	geminiClient := gemini.NewClient(cfg.Gemini.BaseURL, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Timeout, logger)

	// Initialize services
	feedbackService := services.NewFeedbackService(
		resendClient,
		geminiClient,
		cfg.Resend.FromAddress,
		cfg.Feedback.DefaultSubject,
		logger,
	)
	explainService := services.NewExplainService(geminiClient, logger)

	// Initialize handlers
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService, logger)
	explainHandler := handlers.NewExplainHandler(explainService, logger)
	healthHandler := handlers.NewHealthHandler(cfg)

	router := setupRouter(cfg, feedbackHandler, explainHandler, healthHandler)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		logger.WithField("port", cfg.Server.Port).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("HTTP server failed")
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Forced shutdown")
	}

	logger.Info("Server stopped")
}

func setupRouter(
	cfg *config.Config,
	feedbackHandler *handlers.FeedbackHandler,
	explainHandler *handlers.ExplainHandler,
	healthHandler *handlers.HealthHandler,
) *gin.Engine {
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS())

	router.GET("/health", healthHandler.HandleHealth)

	// Per-endpoint limits mirror the providers' own quotas: email sends are
	// scarcer than generation calls.
	feedbackLimiter := middleware.NewRateLimiter(cfg.Feedback.RateLimit)
	explainLimiter := middleware.NewRateLimiter(cfg.Explain.RateLimit)

	router.POST("/feedback", feedbackLimiter.RateLimit(), feedbackHandler.HandleFeedback)
	router.POST("/explain", explainLimiter.RateLimit(), explainHandler.HandleExplain)

	return router
}

package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"comment-sentiment/internal/config"
	"comment-sentiment/internal/handler"
	"comment-sentiment/internal/llm"
	"comment-sentiment/internal/repository"
	"comment-sentiment/internal/sentiment"
	"comment-sentiment/internal/service"
	"comment-sentiment/internal/youtube"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "configs/config.yml", "path to the YAML config file")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg.Log.Production)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("Starting Comment Sentiment Service...")

	if cfg.YouTube.APIKey == "" || cfg.YouTube.APIKey == "YOUR_API_KEY_HERE" {
		logger.Fatal("YouTube API key not configured. Please set it in configs/config.yml or YOUTUBE_API_KEY")
	}

	ytClient, err := youtube.NewClient(context.Background(), youtube.Config{
		APIKey:   cfg.YouTube.APIKey,
		PageSize: cfg.YouTube.PageSize,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to initialize YouTube client", zap.Error(err))
	}

	scorer, closeScorer, err := llm.NewScorer(cfg.Scorer, logger)
	if err != nil {
		logger.Fatal("Failed to initialize scorer", zap.Error(err))
	}
	defer closeScorer()

	// Initialize service
	analyzer := service.NewAnalyzer(
		ytClient,
		sentiment.NewClassifier(scorer, logger),
		repository.NewCommentCache(logger),
		logger,
	)

	// Initialize HTTP handler
	apiHandler := handler.NewHandler(analyzer, logger)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), handler.RequestLogger(logger), handler.CORS())

	apiHandler.RegisterRoutes(router)

	serverAddr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info("Server starting", zap.String("address", serverAddr))

	// Graceful shutdown
	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	logger.Info("Comment Sentiment Service is running",
		zap.String("port", cfg.Server.Port),
		zap.String("scorer", string(cfg.Scorer.Type)))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

func newLogger(production bool) (*zap.Logger, error) {
	if production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipestream/config"
	"github.com/pageza/recipestream/internal/api"
	"github.com/pageza/recipestream/internal/logging"
	"github.com/pageza/recipestream/internal/router"
	"github.com/pageza/recipestream/internal/server"
	"github.com/pageza/recipestream/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.New(os.Stdout, cfg.LogFormat, cfg.LogLevel)
	slog.SetDefault(logger)
	gin.SetMode(cfg.Env.GinMode())

	ctx := context.Background()

	// Initialize services
	llmService, err := service.NewLLMService(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}
	defer llmService.Close()

	recipeService := service.NewRecipeService(llmService, cfg.ChunkSize, cfg.GenerationTimeout)
	recipeHandler := api.NewRecipeHandler(recipeService)

	srv := server.New(cfg.Addr(), router.SetupRouter(logger, cfg.AllowedOrigins, recipeHandler), logger)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
		return
	case sig := <-quit:
		logger.Info("received signal", "signal", sig.String())
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}
	logger.Info("server stopped", "model", cfg.GeminiModel)
}

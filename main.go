package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"insight-copilot/config"
	"insight-copilot/database"
	"insight-copilot/fixtures"
	"insight-copilot/matcher"
	"insight-copilot/web"

	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	// Initialize logger with default level to load config
	tempLogger, err := config.InitLogger("info")
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// Load config (which includes log level setting)
	cfg := config.Load(tempLogger)

	// Re-initialize logger with configured level
	logger, err := config.InitLogger(cfg.LogLevel)
	if err != nil {
		fmt.Printf("Failed to re-initialize logger with configured level: %v\n", err)
		os.Exit(1)
	}
	defer config.Cleanup()

	// The question store is optional. Without it, answers come from the
	// curated fixtures and keyword categories alone.
	var remote matcher.RemoteSource
	if cfg.QuestionDBDSN != "" {
		store, err := database.NewQuestionStore(cfg.QuestionDBDSN)
		if err != nil {
			logger.Fatal("Failed to connect to question database", zap.Error(err))
		}
		defer store.Close()

		if err := store.EnsureSchema(ctx); err != nil {
			logger.Fatal("Failed to ensure database schema", zap.Error(err))
		}
		remote = store
	} else {
		logger.Info("Question database not configured, running on fixtures only")
	}

	fixtureStore := fixtures.Default()
	resolver := matcher.New(cfg, fixtureStore, remote, logger)

	webServer := web.NewServer(resolver, fixtureStore, logger, cfg)

	// Create context that listens for interrupt signals
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger.Info("Starting Insight Copilot web server", zap.String("addr", cfg.HTTPAddr))
	if err := webServer.Start(ctx, cfg.HTTPAddr); err != nil {
		logger.Error("Web server error", zap.Error(err))
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MagloireKITIO/chatbot-file/internal/api"
	"github.com/MagloireKITIO/chatbot-file/internal/api/handlers"
	"github.com/MagloireKITIO/chatbot-file/internal/nlp"
	"github.com/MagloireKITIO/chatbot-file/internal/repository"
	"github.com/MagloireKITIO/chatbot-file/internal/service"
	"github.com/MagloireKITIO/chatbot-file/pkg/config"
	"github.com/MagloireKITIO/chatbot-file/pkg/logger"
	"github.com/MagloireKITIO/chatbot-file/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting chatbot-file service")

	// Database is optional; settings and upload records fall back to
	// in-memory defaults without it
	var settingsRepo *repository.SettingsRepository
	var fileRepo *repository.FAQFileRepository
	if cfg.Database.Enabled() {
		ctx := context.Background()
		db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		settingsRepo = repository.NewSettingsRepository(db, appLogger)
		fileRepo = repository.NewFAQFileRepository(db, appLogger)
	} else {
		appLogger.Info("No database configured, using in-memory settings")
	}

	// Initialize the matching engine and services
	matcher := nlp.NewMatcher(cfg.FAQ.MatchThreshold, appLogger)
	formatter := nlp.NewFormatter(appLogger)

	chatService := service.NewChatService(matcher, formatter, &cfg.FAQ, appLogger)
	settingsService := service.NewSettingsService(settingsRepo, appLogger)
	faqService := service.NewFAQService(chatService, fileRepo, appLogger)

	// Load FAQ documents at startup; a missing language is not fatal,
	// it can be uploaded or reloaded later
	for lang, err := range chatService.ReloadAll() {
		if err != nil {
			appLogger.Warn("FAQ not loaded at startup",
				zap.String("language", lang),
				zap.Error(err),
			)
		}
	}

	// Initialize handlers
	chatHandler := handlers.NewChatHandler(chatService, settingsService, appLogger)
	adminHandler := handlers.NewAdminHandler(faqService, settingsService, appLogger)

	// Setup router
	app := api.SetupRouter(chatHandler, adminHandler, &cfg.RateLimit, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}

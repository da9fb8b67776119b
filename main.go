package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/glucoach/glucoach/internal/bot"
	"github.com/glucoach/glucoach/internal/config"
	"github.com/glucoach/glucoach/internal/database"
	"github.com/glucoach/glucoach/internal/logger"
	"github.com/glucoach/glucoach/internal/repository"
	"github.com/glucoach/glucoach/internal/server"
	"github.com/glucoach/glucoach/internal/services"
)

func main() {
	// .env is optional outside local development
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.InitWithConfig(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	}); err != nil {
		logger.Fatalf("Failed to init logger: %v", err)
	}
	logger.Info("starting glucoach server")

	db, err := database.New(cfg.DB)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	logger.Info("database ready", "driver", cfg.DB.Driver, "path", db.Path())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	readingRepo := repository.NewReadingRepository(db.DB)
	profileRepo := repository.NewProfileRepository(db.DB)

	readingService := services.NewReadingService(readingRepo)
	profileService := services.NewProfileService(profileRepo)
	summaryService := services.NewSummaryService(readingRepo)

	aiService, err := services.NewAIService(ctx, cfg.AI)
	if err != nil {
		logger.Fatalf("Failed to init AI service: %v", err)
	}
	coachService := services.NewCoachService(aiService, summaryService, readingService, profileService)
	logger.Info("services initialized", "ai_provider", cfg.AI.Provider)

	if cfg.TelegramToken != "" {
		telegramBot, err := bot.NewBot(cfg.TelegramToken, summaryService, coachService)
		if err != nil {
			logger.Fatalf("Failed to create bot: %v", err)
		}
		go func() {
			if err := telegramBot.Start(ctx); err != nil {
				logger.Error("bot stopped", "error", err)
			}
		}()
		logger.Info("telegram bot started")
	}

	api := server.New(readingService, profileService, summaryService, coachService, db)
	httpServer := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           api.Routes(cfg.Server.AllowedOrigins),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", "error", err)
		}
	}()

	logger.Info("listening", "port", cfg.Server.Port)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("Server stopped with error: %v", err)
	}
	logger.Info("server stopped")
}

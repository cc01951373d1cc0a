package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"schedule-assistant/config"
	_ "schedule-assistant/docs" // Swagger docs
	"schedule-assistant/internal/httpserver"
	"schedule-assistant/internal/schedule/repository/gcal"
	"schedule-assistant/internal/schedule/usecase"
	"schedule-assistant/pkg/dateparse"
	"schedule-assistant/pkg/llmchat"
	"schedule-assistant/pkg/log"
)

// @title       Schedule Assistant API
// @description Natural-language schedule management backed by an LLM and Google Calendar/Tasks.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Schedule Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Timezone: %s", cfg.Environment.Timezone)

	// 3. Date parser
	dates, err := dateparse.NewParser(cfg.Environment.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Environment.Timezone, err)
		dates, _ = dateparse.NewParser("UTC")
	}

	// 4. LLM backend
	llm, err := llmchat.New(llmchat.Config{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM client: ", err)
		return
	}
	logger.Infof(ctx, "LLM backend: %s", llm.Model())

	// 5. Google Calendar/Tasks store
	store, err := gcal.New(ctx, gcal.Config{
		CredentialsPath: cfg.GoogleStore.CredentialsPath,
		TokenPath:       cfg.GoogleStore.TokenPath,
		Timezone:        cfg.Environment.Timezone,
	}, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Google store: ", err)
		logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		return
	}

	// 6. Schedule UseCase
	scheduleUC := usecase.New(logger, llm, store, dates)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		API:         cfg.API,
		ScheduleUC:  scheduleUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

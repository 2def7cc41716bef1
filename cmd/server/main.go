package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aashari/go-prompt-router/internal/app"
	"github.com/aashari/go-prompt-router/internal/config"
	"github.com/aashari/go-prompt-router/internal/logger"
)

// @title           Prompt Router
// @version         1.0
// @description     Serves prompt pipelines over HTTP: /openai and /essay on Azure OpenAI, /poem on a local Ollama model.

// @contact.name   API Support
// @contact.url    https://github.com/aashari/go-prompt-router

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8000
// @BasePath  /

func main() {
	if err := config.LoadEnvFromMultiplePaths(); err != nil {
		_, _ = os.Stderr.WriteString("WARN: Failed to load .env file: " + err.Error() + "\n")
	}

	// Initialize structured logging
	if err := logger.InitFromEnv(); err != nil {
		// Can't use logger here as it failed to initialize
		_, _ = os.Stderr.WriteString("FATAL: Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx := logger.WithComponent(context.Background(), logger.ComponentNames.App)

	app.Version = config.GetEnvWithDefault("VERSION", app.Version)

	cfg := config.Load()
	warnings, apiErr := cfg.Validate()
	if apiErr != nil {
		logger.Error(logger.WithStage(ctx, logger.LogStages.Configuration), "Invalid configuration", apiErr,
			"details", apiErr.Details,
		)
		os.Exit(1)
	}
	for _, warning := range warnings {
		logger.Warn(logger.WithStage(ctx, logger.LogStages.Configuration), warning)
	}

	application, err := app.NewApp(ctx, cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize application", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      application.SetupRoutes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info(ctx, "Server starting",
			"address", srv.Addr,
			"version", app.Version,
			"swagger_url", "http://"+srv.Addr+"/swagger/index.html",
		)
		serverErr <- srv.ListenAndServe()
	}()

	stop, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "Server failed", err)
			os.Exit(1)
		}
	case <-stop.Done():
		logger.Info(ctx, "Shutdown signal received")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "Graceful shutdown failed", err)
	}
	if err := application.Close(shutdownCtx); err != nil {
		logger.Error(ctx, "Failed to close application", err)
	}
	logger.Info(ctx, "Server stopped")
}

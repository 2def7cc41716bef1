package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aashari/go-prompt-router/internal/backends"
	"github.com/aashari/go-prompt-router/internal/chain"
	"github.com/aashari/go-prompt-router/internal/config"
	"github.com/aashari/go-prompt-router/internal/database"
	"github.com/aashari/go-prompt-router/internal/handlers"
	"github.com/aashari/go-prompt-router/internal/health"
	"github.com/aashari/go-prompt-router/internal/httpclient"
	"github.com/aashari/go-prompt-router/internal/logger"
	"github.com/aashari/go-prompt-router/internal/monitoring"
	"github.com/aashari/go-prompt-router/internal/prompts"
	"github.com/aashari/go-prompt-router/internal/router"
)

// Version is stamped at build time with -ldflags "-X .../internal/app.Version=..."
var Version = "dev"

// Route paths served by the application
const (
	PathOpenAI = "/openai"
	PathEssay  = "/essay"
	PathPoem   = "/poem"
)

// App centralizes the application's dependencies and configuration
type App struct {
	Config   *config.Config
	Backends *backends.Set
	Metrics  *monitoring.Metrics
	Health   *health.HealthChecker
	Recorder *database.UsageRecorder
	Database *database.Connection
	Prompts  []*handlers.PromptHandlers
}

// NewApp creates a new App instance with all dependencies. MongoDB is
// only contacted when MONGODB_URI is set and USAGE_RECORDING_ENABLED is not false.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	ctx = logger.WithStage(logger.WithComponent(ctx, logger.ComponentNames.App), logger.LogStages.Initialization)

	set := backends.NewSet(cfg, httpclient.NewFactory(httpclient.Options{Timeout: config.DefaultClientTimeout}))

	a := &App{
		Config:   cfg,
		Backends: set,
		Metrics:  monitoring.GetMetrics(),
		Health:   health.NewHealthChecker(Version),
	}

	a.Health.RegisterCheck(health.ConfigurationCheck(cfg.Azure))
	a.Health.RegisterCheck(health.PingCheck("ollama", "Ollama runtime", set.Ollama, false))

	dbCfg := database.GetDatabaseConfig()
	if dbCfg.Enabled() {
		conn, err := database.Connect(ctx, dbCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to usage database: %w", err)
		}
		a.Database = conn
		a.Recorder = database.NewUsageRecorder(database.NewUsageRepository(conn), dbCfg.Environment, Version)
		a.Health.RegisterCheck(health.PingCheck("database", "MongoDB", conn, false))
	} else {
		logger.Info(ctx, "Usage recording disabled",
			"mongodb_uri_set", dbCfg.URI != "",
			"recording_enabled", dbCfg.RecordingEnabled,
		)
	}

	opts := handlers.Options{
		Metrics:          a.Metrics,
		Recorder:         a.Recorder,
		BatchConcurrency: cfg.Server.BatchMaxConcurrency,
	}
	a.Prompts = []*handlers.PromptHandlers{
		handlers.NewPromptHandlers(PathOpenAI, chain.Passthrough(set.Azure), opts),
		handlers.NewPromptHandlers(PathEssay, chain.Pipe(prompts.Essay, set.Azure), opts),
		handlers.NewPromptHandlers(PathPoem, chain.Pipe(prompts.Poem, set.Ollama), opts),
	}

	logger.Info(ctx, "Application initialized",
		"azure_configured", cfg.Azure.Configured(),
		"azure_deployment", cfg.Azure.Deployment,
		"ollama_base_url", set.Ollama.BaseURL(),
		"ollama_model", cfg.Ollama.Model,
		"usage_recording", a.Recorder.Enabled(),
		"health_checks", a.Health.Names(),
	)

	return a, nil
}

// SetupRoutes configures all routes for the application
func (a *App) SetupRoutes() http.Handler {
	return router.SetupRoutes(router.Dependencies{
		Prompts: a.Prompts,
		Health:  a.Health,
		Metrics: a.Metrics,
	})
}

// Close flushes pending usage writes and releases the database connection
func (a *App) Close(ctx context.Context) error {
	a.Recorder.Wait()
	if a.Database == nil {
		return nil
	}
	return a.Database.Disconnect(ctx)
}

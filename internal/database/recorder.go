package database

import (
	"context"
	"sync"
	"time"

	"github.com/aashari/go-prompt-router/internal/logger"
)

// UsageRecorder writes usage documents in the background so request
// latency never waits on MongoDB.
type UsageRecorder struct {
	store       UsageStore
	environment string
	version     string
	timeout     time.Duration
	wg          sync.WaitGroup
}

// NewUsageRecorder wraps a store. A nil store yields a recorder that drops everything.
func NewUsageRecorder(store UsageStore, environment, version string) *UsageRecorder {
	return &UsageRecorder{
		store:       store,
		environment: environment,
		version:     version,
		timeout:     5 * time.Second,
	}
}

// Enabled reports whether records are persisted
func (r *UsageRecorder) Enabled() bool {
	return r != nil && r.store != nil
}

// Record stamps and persists usage asynchronously. Failures are logged only.
func (r *UsageRecorder) Record(ctx context.Context, usage *PromptUsage) {
	if !r.Enabled() || usage == nil {
		return
	}

	usage.CreatedAt = time.Now().UTC()
	usage.Environment = r.environment
	usage.Version = r.version

	// Detach from the request context: the response may finish first.
	logCtx := logger.WithComponent(context.WithoutCancel(ctx), logger.ComponentNames.Database)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		writeCtx, cancel := context.WithTimeout(logCtx, r.timeout)
		defer cancel()

		if err := r.store.InsertUsage(writeCtx, usage); err != nil {
			logger.Error(logger.WithStage(logCtx, logger.LogStages.DatabaseOperation), "Failed to record prompt usage", err,
				"run_id", usage.RunID,
				"route", usage.Route,
			)
		}
	}()
}

// Wait blocks until pending writes finish
func (r *UsageRecorder) Wait() {
	if r == nil {
		return
	}
	r.wg.Wait()
}

package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/aashari/go-prompt-router/internal/config"
	"github.com/aashari/go-prompt-router/internal/logger"
)

// HealthStatus represents the health status of a component
type HealthStatus string

const (
	StatusHealthy   HealthStatus = "healthy"
	StatusUnhealthy HealthStatus = "unhealthy"
	StatusDegraded  HealthStatus = "degraded"
)

// HealthCheck represents a single health check
type HealthCheck struct {
	Name        string
	Description string
	Check       func(ctx context.Context) HealthCheckResult
	Timeout     time.Duration
	Critical    bool // failure of a critical check makes the service unhealthy
}

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status     HealthStatus           `json:"status"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Timestamp  time.Time              `json:"timestamp"`
	DurationMS int64                  `json:"duration_ms"`
}

// Response is the /health body
type Response struct {
	Status    HealthStatus                 `json:"status"`
	Timestamp string                       `json:"timestamp"`
	Version   string                       `json:"version"`
	Uptime    int64                        `json:"uptime_seconds"`
	Checks    map[string]HealthCheckResult `json:"checks"`
}

// Pinger is anything that can prove it is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger
type PingFunc func(ctx context.Context) error

// Ping implements Pinger
func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthChecker manages and executes health checks
type HealthChecker struct {
	checks    map[string]*HealthCheck
	mutex     sync.RWMutex
	startTime time.Time
	version   string
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(version string) *HealthChecker {
	if version == "" {
		version = "unknown"
	}
	return &HealthChecker{
		checks:    make(map[string]*HealthCheck),
		startTime: time.Now(),
		version:   version,
	}
}

// RegisterCheck registers a new health check
func (hc *HealthChecker) RegisterCheck(check *HealthCheck) {
	hc.mutex.Lock()
	defer hc.mutex.Unlock()

	if check.Timeout == 0 {
		check.Timeout = 5 * time.Second
	}

	hc.checks[check.Name] = check

	logger.Debug(logger.WithComponent(context.Background(), logger.ComponentNames.Health), "Health check registered",
		"name", check.Name,
		"critical", check.Critical,
		"timeout_ms", check.Timeout.Milliseconds(),
	)
}

// Names returns the registered check names in sorted order
func (hc *HealthChecker) Names() []string {
	hc.mutex.RLock()
	defer hc.mutex.RUnlock()

	names := make([]string, 0, len(hc.checks))
	for name := range hc.checks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExecuteCheck executes a single health check
func (hc *HealthChecker) ExecuteCheck(ctx context.Context, name string) (*HealthCheckResult, error) {
	hc.mutex.RLock()
	check, exists := hc.checks[name]
	hc.mutex.RUnlock()

	if !exists {
		return nil, fmt.Errorf("health check %s not found", name)
	}

	result := hc.executeCheck(ctx, check)
	return &result, nil
}

// ExecuteAllChecks executes all registered health checks concurrently
func (hc *HealthChecker) ExecuteAllChecks(ctx context.Context) map[string]HealthCheckResult {
	hc.mutex.RLock()
	checks := make([]*HealthCheck, 0, len(hc.checks))
	for _, check := range hc.checks {
		checks = append(checks, check)
	}
	hc.mutex.RUnlock()

	results := make(map[string]HealthCheckResult, len(checks))
	var wg sync.WaitGroup
	var resultMutex sync.Mutex

	for _, check := range checks {
		wg.Add(1)
		go func(check *HealthCheck) {
			defer wg.Done()
			result := hc.executeCheck(ctx, check)

			resultMutex.Lock()
			results[check.Name] = result
			resultMutex.Unlock()
		}(check)
	}

	wg.Wait()
	return results
}

// executeCheck executes a single health check with timeout
func (hc *HealthChecker) executeCheck(ctx context.Context, check *HealthCheck) HealthCheckResult {
	checkCtx, cancel := context.WithTimeout(ctx, check.Timeout)
	defer cancel()

	start := time.Now()
	result := check.Check(checkCtx)
	result.Timestamp = start.UTC()
	result.DurationMS = time.Since(start).Milliseconds()

	logger.Debug(logger.WithStage(ctx, logger.LogStages.HealthCheck), "Health check executed",
		"name", check.Name,
		"status", string(result.Status),
		"duration_ms", result.DurationMS,
	)

	return result
}

// GetOverallHealth determines the overall system health
func (hc *HealthChecker) GetOverallHealth(ctx context.Context) (HealthStatus, map[string]HealthCheckResult) {
	results := hc.ExecuteAllChecks(ctx)

	hc.mutex.RLock()
	defer hc.mutex.RUnlock()

	overallStatus := StatusHealthy
	for name, result := range results {
		switch result.Status {
		case StatusUnhealthy:
			if hc.checks[name].Critical {
				return StatusUnhealthy, results
			}
			overallStatus = StatusDegraded
		case StatusDegraded:
			overallStatus = StatusDegraded
		}
	}

	return overallStatus, results
}

// ConfigurationCheck reports missing Azure settings as degraded: /poem keeps working
func ConfigurationCheck(cfg config.AzureConfig) *HealthCheck {
	return &HealthCheck{
		Name:        "configuration",
		Description: "Hosted model configuration",
		Timeout:     time.Second,
		Check: func(ctx context.Context) HealthCheckResult {
			if missing := cfg.Missing(); len(missing) > 0 {
				return HealthCheckResult{
					Status:  StatusDegraded,
					Message: "Missing " + strings.Join(missing, ", "),
					Details: map[string]interface{}{"missing": missing},
				}
			}
			return HealthCheckResult{
				Status:  StatusHealthy,
				Message: "Hosted model configured",
				Details: map[string]interface{}{"deployment": cfg.Deployment},
			}
		},
	}
}

// PingCheck wraps a Pinger as a health check
func PingCheck(name, description string, target Pinger, critical bool) *HealthCheck {
	return &HealthCheck{
		Name:        name,
		Description: description,
		Critical:    critical,
		Timeout:     5 * time.Second,
		Check: func(ctx context.Context) HealthCheckResult {
			if err := target.Ping(ctx); err != nil {
				return HealthCheckResult{
					Status:  StatusUnhealthy,
					Message: err.Error(),
				}
			}
			return HealthCheckResult{
				Status:  StatusHealthy,
				Message: description + " reachable",
			}
		},
	}
}

// HealthHandler creates an HTTP handler for health checks.
// ?check=name runs a single check.
// @Summary      Service health
// @Description  Runs every registered check. Degraded still answers 200.
// @Tags         health
// @Produce      json
// @Param        check  query     string             false  "Run a single named check"
// @Success      200    {object}  Response           "Healthy or degraded (a HealthCheckResult when check is set)"
// @Failure      404    {object}  map[string]string  "Unknown check name"
// @Failure      503    {object}  Response           "A critical check failed"
// @Router       /health [get]
func HealthHandler(hc *HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithComponent(r.Context(), logger.ComponentNames.Health)

		if checkName := r.URL.Query().Get("check"); checkName != "" {
			result, err := hc.ExecuteCheck(ctx, checkName)
			if err != nil {
				writeJSONResponse(ctx, w, http.StatusNotFound, map[string]string{"error": err.Error()})
				return
			}
			writeJSONResponse(ctx, w, statusCode(result.Status), result)
			return
		}

		overallStatus, results := hc.GetOverallHealth(ctx)
		if overallStatus != StatusHealthy {
			logger.Warn(logger.WithStage(ctx, logger.LogStages.HealthCheckWarning), "Health check degraded or unhealthy",
				"overall_status", string(overallStatus),
			)
		}

		writeJSONResponse(ctx, w, statusCode(overallStatus), Response{
			Status:    overallStatus,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Version:   hc.version,
			Uptime:    int64(time.Since(hc.startTime).Seconds()),
			Checks:    results,
		})
	}
}

// Degraded still answers 200 so load balancers keep routing
func statusCode(status HealthStatus) int {
	if status == StatusUnhealthy {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

func writeJSONResponse(ctx context.Context, w http.ResponseWriter, status int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		logger.Error(ctx, "Failed to marshal health response", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

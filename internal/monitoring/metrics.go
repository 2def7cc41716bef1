package monitoring

import (
	"encoding/json"
	"net/http"
	"net/http/pprof"
	"strconv"
	"sync"
	"time"

	"github.com/aashari/go-prompt-router/internal/logger"
)

// Metrics holds in-process request and backend counters
type Metrics struct {
	mu                 sync.RWMutex
	RequestCount       int64
	RequestDuration    time.Duration
	ErrorCount         int64
	RouteRequestCounts map[string]int64
	StatusCodeCounts   map[int]int64
	BackendCallCounts  map[string]int64
	BackendErrorCounts map[string]int64
	StartTime          time.Time
}

// NewMetrics creates an empty metrics set
func NewMetrics() *Metrics {
	return &Metrics{
		RouteRequestCounts: make(map[string]int64),
		StatusCodeCounts:   make(map[int]int64),
		BackendCallCounts:  make(map[string]int64),
		BackendErrorCounts: make(map[string]int64),
		StartTime:          time.Now(),
	}
}

var globalMetrics = NewMetrics()

// GetMetrics returns the process-wide metrics instance
func GetMetrics() *Metrics {
	return globalMetrics
}

// RecordRequest records a request with its duration and status
func (m *Metrics) RecordRequest(duration time.Duration, statusCode int, route string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.RequestCount++
	m.RequestDuration += duration
	m.StatusCodeCounts[statusCode]++

	if route != "" {
		m.RouteRequestCounts[route]++
	}
	if statusCode >= 400 {
		m.ErrorCount++
	}
}

// RecordBackendCall counts one model call and whether it failed
func (m *Metrics) RecordBackendCall(backend string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.BackendCallCounts[backend]++
	if err != nil {
		m.BackendErrorCounts[backend]++
	}
}

// Stats is the JSON view served on /metrics
type Stats struct {
	UptimeSeconds     float64          `json:"uptime_seconds"`
	TotalRequests     int64            `json:"total_requests"`
	TotalErrors       int64            `json:"total_errors"`
	AverageDurationMS int64            `json:"average_duration_ms"`
	RequestsPerSecond float64          `json:"requests_per_second"`
	ErrorRate         float64          `json:"error_rate"`
	RouteRequests     map[string]int64 `json:"route_requests"`
	StatusCodeCounts  map[string]int64 `json:"status_code_counts"`
	BackendCalls      map[string]int64 `json:"backend_calls"`
	BackendErrors     map[string]int64 `json:"backend_errors"`
	StartTime         string           `json:"start_time"`
}

// GetStats returns a consistent snapshot
func (m *Metrics) GetStats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	uptime := time.Since(m.StartTime)
	stats := Stats{
		UptimeSeconds:    uptime.Seconds(),
		TotalRequests:    m.RequestCount,
		TotalErrors:      m.ErrorCount,
		RouteRequests:    copyCounts(m.RouteRequestCounts),
		StatusCodeCounts: make(map[string]int64, len(m.StatusCodeCounts)),
		BackendCalls:     copyCounts(m.BackendCallCounts),
		BackendErrors:    copyCounts(m.BackendErrorCounts),
		StartTime:        m.StartTime.UTC().Format(time.RFC3339),
	}
	for code, n := range m.StatusCodeCounts {
		stats.StatusCodeCounts[strconv.Itoa(code)] = n
	}

	if m.RequestCount > 0 {
		stats.AverageDurationMS = (m.RequestDuration / time.Duration(m.RequestCount)).Milliseconds()
		stats.ErrorRate = float64(m.ErrorCount) / float64(m.RequestCount)
	}
	if uptime > 0 {
		stats.RequestsPerSecond = float64(m.RequestCount) / uptime.Seconds()
	}
	return stats
}

func copyCounts(src map[string]int64) map[string]int64 {
	dst := make(map[string]int64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// Reset clears all metrics (useful for testing)
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.RequestCount = 0
	m.RequestDuration = 0
	m.ErrorCount = 0
	m.RouteRequestCounts = make(map[string]int64)
	m.StatusCodeCounts = make(map[int]int64)
	m.BackendCallCounts = make(map[string]int64)
	m.BackendErrorCounts = make(map[string]int64)
	m.StartTime = time.Now()
}

// Middleware wraps HTTP handlers to collect request metrics
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapper := &responseWriterWrapper{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapper, r)

		// unknown paths share one bucket so scanners cannot grow the map
		route := r.URL.Path
		if wrapper.statusCode == http.StatusNotFound {
			route = "unmatched"
		}
		m.RecordRequest(time.Since(start), wrapper.statusCode, route)
	})
}

// responseWriterWrapper wraps http.ResponseWriter to capture status code
type responseWriterWrapper struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (w *responseWriterWrapper) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.statusCode = statusCode
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

// Handler returns current metrics as JSON
// @Summary      Metrics snapshot
// @Description  In-process request and backend counters
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "Counters"
// @Router       /metrics [get]
func (m *Metrics) Handler(w http.ResponseWriter, r *http.Request) {
	body, err := json.Marshal(m.GetStats())
	if err != nil {
		logger.Error(logger.WithComponent(r.Context(), logger.ComponentNames.Monitoring), "Failed to marshal metrics", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// SetupPprofRoutes adds pprof endpoints to the mux
func SetupPprofRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
}

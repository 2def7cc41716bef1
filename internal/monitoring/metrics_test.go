package monitoring

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordRequest(t *testing.T) {
	metrics := NewMetrics()

	metrics.RecordRequest(100*time.Millisecond, 200, "/poem")

	assert.Equal(t, int64(1), metrics.RequestCount)
	assert.Equal(t, 100*time.Millisecond, metrics.RequestDuration)
	assert.Equal(t, int64(0), metrics.ErrorCount)
	assert.Equal(t, int64(1), metrics.RouteRequestCounts["/poem"])
	assert.Equal(t, int64(1), metrics.StatusCodeCounts[200])

	metrics.RecordRequest(50*time.Millisecond, 500, "/essay")

	assert.Equal(t, int64(2), metrics.RequestCount)
	assert.Equal(t, 150*time.Millisecond, metrics.RequestDuration)
	assert.Equal(t, int64(1), metrics.ErrorCount)
	assert.Equal(t, int64(1), metrics.StatusCodeCounts[500])
}

func TestMetrics_RecordBackendCall(t *testing.T) {
	metrics := NewMetrics()

	metrics.RecordBackendCall("ollama", nil)
	metrics.RecordBackendCall("ollama", errors.New("refused"))
	metrics.RecordBackendCall("azure_openai", nil)

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.BackendCalls["ollama"])
	assert.Equal(t, int64(1), stats.BackendErrors["ollama"])
	assert.Equal(t, int64(1), stats.BackendCalls["azure_openai"])
	assert.Zero(t, stats.BackendErrors["azure_openai"])
}

func TestMetrics_GetStats(t *testing.T) {
	metrics := NewMetrics()
	metrics.RecordRequest(100*time.Millisecond, 200, "/openai")
	metrics.RecordRequest(300*time.Millisecond, 422, "/openai")

	stats := metrics.GetStats()

	assert.Equal(t, int64(2), stats.TotalRequests)
	assert.Equal(t, int64(1), stats.TotalErrors)
	assert.Equal(t, int64(200), stats.AverageDurationMS)
	assert.InDelta(t, 0.5, stats.ErrorRate, 0.0001)
	assert.Equal(t, int64(1), stats.StatusCodeCounts["422"])
	assert.Equal(t, int64(2), stats.RouteRequests["/openai"])
	assert.NotEmpty(t, stats.StartTime)
}

func TestMetrics_GetStatsEmpty(t *testing.T) {
	stats := NewMetrics().GetStats()

	assert.Zero(t, stats.ErrorRate)
	assert.Zero(t, stats.AverageDurationMS)
}

func TestMetrics_Reset(t *testing.T) {
	metrics := NewMetrics()
	metrics.RecordRequest(time.Millisecond, 500, "/poem")
	metrics.RecordBackendCall("ollama", errors.New("x"))

	metrics.Reset()

	assert.Zero(t, metrics.RequestCount)
	assert.Zero(t, metrics.ErrorCount)
	assert.Empty(t, metrics.RouteRequestCounts)
	assert.Empty(t, metrics.BackendCallCounts)
}

func TestMetrics_Middleware(t *testing.T) {
	metrics := NewMetrics()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /poem", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	handler := metrics.Middleware(mux)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/poem", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/also-nope", nil))

	stats := metrics.GetStats()
	assert.Equal(t, int64(3), stats.TotalRequests)
	assert.Equal(t, int64(1), stats.RouteRequests["/poem"])
	assert.Equal(t, int64(2), stats.RouteRequests["unmatched"])
	assert.Equal(t, int64(1), stats.StatusCodeCounts["201"])
}

func TestMetrics_Handler(t *testing.T) {
	metrics := NewMetrics()
	metrics.RecordRequest(10*time.Millisecond, 200, "/essay")

	w := httptest.NewRecorder()
	metrics.Handler(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var stats Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.TotalRequests)
	assert.Equal(t, int64(1), stats.RouteRequests["/essay"])
}

func TestSetupPprofRoutes(t *testing.T) {
	mux := http.NewServeMux()
	SetupPprofRoutes(mux)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetMetrics_Global(t *testing.T) {
	assert.Same(t, GetMetrics(), GetMetrics())
}

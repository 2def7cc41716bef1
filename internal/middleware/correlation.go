package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aashari/go-prompt-router/internal/logger"
	"github.com/aashari/go-prompt-router/internal/utils"
)

// Header constants
const (
	RequestIDHeader     = utils.HeaderRequestID
	CorrelationIDHeader = utils.HeaderCorrelationID
)

// logged string values are cut to this many characters
const logStringLimit = 200

// TrackingIDSources records where the tracking IDs came from
type TrackingIDSources struct {
	RequestIDSource     string `json:"request_id_source"`
	CorrelationIDSource string `json:"correlation_id_source"`
}

// RequestCorrelationMiddleware assigns request and correlation IDs, echoes
// them as response headers and logs the request/response pair.
func RequestCorrelationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, correlationID, sources := extractTrackingIDs(r)

		w.Header().Set(RequestIDHeader, requestID)
		w.Header().Set(CorrelationIDHeader, correlationID)

		ctx := context.WithValue(r.Context(), logger.RequestIDKey, requestID)
		ctx = context.WithValue(ctx, logger.CorrelationIDKey, correlationID)
		ctx = logger.WithComponent(ctx, logger.ComponentNames.Middleware)

		logger.Debug(logger.WithStage(ctx, logger.LogStages.TrackingSetup), "Generated tracking IDs",
			"request_id_source", sources.RequestIDSource,
			"correlation_id_source", sources.CorrelationIDSource,
		)

		if r.URL.Path == "/health" {
			handleHealthCheck(ctx, w, r, next)
			return
		}
		handleGeneralRequest(ctx, w, r, next)
	})
}

// extractTrackingIDs prefers client supplied IDs, then the CloudFlare ray, then generates
func extractTrackingIDs(r *http.Request) (requestID, correlationID string, sources TrackingIDSources) {
	switch {
	case r.Header.Get(utils.HeaderRequestID) != "":
		requestID = r.Header.Get(utils.HeaderRequestID)
		sources.RequestIDSource = "client-x-request-id"
	case r.Header.Get(utils.HeaderCloudFlareRay) != "":
		requestID = r.Header.Get(utils.HeaderCloudFlareRay)
		sources.RequestIDSource = "cloudflare-ray"
	default:
		requestID = utils.GenerateRequestID()
		sources.RequestIDSource = "generated"
	}

	switch {
	case r.Header.Get(utils.HeaderCorrelationID) != "":
		correlationID = r.Header.Get(utils.HeaderCorrelationID)
		sources.CorrelationIDSource = "client-x-correlation-id"
	case r.Header.Get(utils.HeaderCloudFlareRay) != "":
		correlationID = r.Header.Get(utils.HeaderCloudFlareRay)
		sources.CorrelationIDSource = "cloudflare-ray"
	default:
		correlationID = requestID
		sources.CorrelationIDSource = "request-id-fallback"
	}

	return requestID, correlationID, sources
}

// handleHealthCheck only logs health checks that fail
func handleHealthCheck(ctx context.Context, w http.ResponseWriter, r *http.Request, next http.Handler) {
	start := time.Now()
	wrapper := newResponseRecorder(w)

	next.ServeHTTP(wrapper, r.WithContext(ctx))

	if wrapper.statusCode >= http.StatusBadRequest {
		logger.Error(logger.WithStage(ctx, logger.LogStages.HealthCheckFailed), "Health check failed",
			fmt.Errorf("status code: %d", wrapper.statusCode),
			"response", map[string]interface{}{
				"status_code": wrapper.statusCode,
				"duration_ms": time.Since(start).Milliseconds(),
				"body":        wrapper.body.String(),
			},
		)
	}
}

func handleGeneralRequest(ctx context.Context, w http.ResponseWriter, r *http.Request, next http.Handler) {
	start := time.Now()

	var bodyBytes []byte
	if r.Body != nil {
		var err error
		bodyBytes, err = io.ReadAll(r.Body)
		if err != nil {
			logger.Error(logger.WithStage(ctx, logger.LogStages.RequestFailed), "Failed to read request body", err)
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(bodyBytes))
	}

	logStructuredRequest(ctx, r, bodyBytes)

	wrapper := newResponseRecorder(w)
	wrapper.start = start
	next.ServeHTTP(wrapper, r.WithContext(ctx))

	logStructuredResponse(ctx, wrapper, time.Since(start))
}

func logStructuredRequest(ctx context.Context, r *http.Request, body []byte) {
	requestData := map[string]interface{}{
		"method":     r.Method,
		"endpoint":   r.URL.Path,
		"user_agent": r.Header.Get(utils.HeaderUserAgent),
		"client_ip":  getClientIP(r),
		"headers":    utils.SanitizeHeaders(r.Header),
	}
	if len(body) > 0 {
		requestData["body"] = decodeForLog(body)
	}

	logger.Info(logger.WithStage(ctx, logger.LogStages.RequestReceived), "Incoming request",
		"request", requestData,
	)
}

func logStructuredResponse(ctx context.Context, w *responseRecorder, duration time.Duration) {
	responseData := map[string]interface{}{
		"status_code":    w.statusCode,
		"duration_ms":    duration.Milliseconds(),
		"content_length": w.written,
		"headers":        utils.SanitizeHeaders(w.Header()),
	}
	if w.body.Len() > 0 {
		responseData["body"] = decodeForLog(w.body.Bytes())
	}

	stage := logger.LogStages.RequestCompleted
	if w.statusCode >= http.StatusBadRequest {
		stage = logger.LogStages.RequestFailed
	}

	logger.Info(logger.WithStage(ctx, stage), "Request completed",
		"response", responseData,
	)
}

func decodeForLog(body []byte) interface{} {
	var data interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return "Non-JSON body omitted"
	}
	return utils.TruncateLongStrings(data, logStringLimit)
}

// getClientIP extracts client IP with priority cascade
func getClientIP(r *http.Request) string {
	if forwardedFor := r.Header.Get(utils.HeaderXForwardedFor); forwardedFor != "" {
		return strings.TrimSpace(strings.Split(forwardedFor, ",")[0])
	}
	if realIP := r.Header.Get(utils.HeaderXRealIP); realIP != "" {
		return realIP
	}
	if cfIP := r.Header.Get(utils.HeaderCFConnectingIP); cfIP != "" {
		return cfIP
	}
	return r.RemoteAddr
}

// responseRecorder writes through and keeps a bounded copy for logging
type responseRecorder struct {
	http.ResponseWriter
	statusCode  int
	body        bytes.Buffer
	written     int
	wroteHeader bool
	// start, when set, is reported in X-Response-Time
	start time.Time
}

func newResponseRecorder(w http.ResponseWriter) *responseRecorder {
	return &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
}

func (w *responseRecorder) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.statusCode = statusCode
	w.wroteHeader = true
	if !w.start.IsZero() {
		w.Header().Set(utils.HeaderResponseTime, time.Since(w.start).String())
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseRecorder) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if room := utils.MaxLoggedBodyBytes - w.body.Len(); room > 0 {
		if len(data) < room {
			room = len(data)
		}
		w.body.Write(data[:room])
	}
	n, err := w.ResponseWriter.Write(data)
	w.written += n
	return n, err
}

// Flush implements http.Flusher
func (w *responseRecorder) Flush() {
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aashari/go-prompt-router/internal/backends"
	"github.com/aashari/go-prompt-router/internal/chain"
	"github.com/aashari/go-prompt-router/internal/handlers"
	"github.com/aashari/go-prompt-router/internal/health"
	"github.com/aashari/go-prompt-router/internal/monitoring"
	"github.com/aashari/go-prompt-router/internal/prompts"
)

type echoBackend struct {
	name string
	kind backends.Kind
}

func (e echoBackend) Name() string        { return e.name }
func (e echoBackend) Kind() backends.Kind { return e.kind }

func (e echoBackend) Complete(_ context.Context, prompt string) (*backends.Completion, error) {
	return &backends.Completion{Content: prompt, Model: "echo"}, nil
}

func newTestRouter(t *testing.T) (http.Handler, *monitoring.Metrics) {
	t.Helper()
	metrics := monitoring.NewMetrics()
	opts := handlers.Options{Metrics: metrics}
	chat := echoBackend{name: "azure_openai", kind: backends.KindChat}
	text := echoBackend{name: "ollama", kind: backends.KindText}

	hc := health.NewHealthChecker("test")
	hc.RegisterCheck(health.PingCheck("ollama", "Ollama runtime", health.PingFunc(func(context.Context) error { return nil }), false))

	return SetupRoutes(Dependencies{
		Prompts: []*handlers.PromptHandlers{
			handlers.NewPromptHandlers("/openai", chain.Passthrough(chat), opts),
			handlers.NewPromptHandlers("/essay", chain.Pipe(prompts.Essay, chat), opts),
			handlers.NewPromptHandlers("/poem", chain.Pipe(prompts.Poem, text), opts),
		},
		Health:  hc,
		Metrics: metrics,
	}), metrics
}

func TestSetupRoutes(t *testing.T) {
	handler, _ := newTestRouter(t)

	testCases := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
	}{
		{"openai topic", http.MethodPost, "/openai", `{"topic":"hi"}`, http.StatusOK},
		{"essay invoke", http.MethodPost, "/essay/invoke", `{"input":{"topic":"hi"}}`, http.StatusOK},
		{"poem batch", http.MethodPost, "/poem/batch", `{"inputs":[{"topic":"hi"}]}`, http.StatusOK},
		{"poem input schema", http.MethodGet, "/poem/input_schema", "", http.StatusOK},
		{"openai output schema", http.MethodGet, "/openai/output_schema", "", http.StatusOK},
		{"health", http.MethodGet, "/health", "", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", "", http.StatusOK},
		{"swagger doc", http.MethodGet, "/swagger/doc.json", "", http.StatusOK},
		{"wrong method", http.MethodGet, "/poem", "", http.StatusMethodNotAllowed},
		{"unknown route", http.MethodPost, "/haiku", `{"topic":"hi"}`, http.StatusNotFound},
		{"validation", http.MethodPost, "/poem", `{}`, http.StatusUnprocessableEntity},
		{"preflight", http.MethodOptions, "/poem", "", http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func TestSetupRoutes_ErrorEnvelope(t *testing.T) {
	handler, _ := newTestRouter(t)

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedType   string
		expectedAllow  string
	}{
		{"get on topic route", http.MethodGet, "/poem", http.StatusMethodNotAllowed, "method_not_allowed_error", "POST"},
		{"delete on invoke", http.MethodDelete, "/essay/invoke", http.StatusMethodNotAllowed, "method_not_allowed_error", "POST"},
		{"get on batch", http.MethodGet, "/openai/batch", http.StatusMethodNotAllowed, "method_not_allowed_error", "POST"},
		{"post on schema", http.MethodPost, "/poem/input_schema", http.StatusMethodNotAllowed, "method_not_allowed_error", "GET, HEAD"},
		{"post on health", http.MethodPost, "/health", http.StatusMethodNotAllowed, "method_not_allowed_error", "GET, HEAD"},
		{"unknown route", http.MethodPost, "/haiku", http.StatusNotFound, "not_found_error", ""},
		{"unknown nested route", http.MethodGet, "/poem/stream", http.StatusNotFound, "not_found_error", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, strings.NewReader(`{"topic":"x"}`)))

			require.Equal(t, tc.expectedStatus, w.Code, w.Body.String())
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tc.expectedAllow, w.Header().Get("Allow"))

			var body struct {
				Error struct {
					Type    string `json:"type"`
					Message string `json:"message"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
			assert.Equal(t, tc.expectedType, body.Error.Type)
			assert.Contains(t, body.Error.Message, tc.path)
		})
	}
}

func TestSetupRoutes_RouteBindings(t *testing.T) {
	handler, _ := newTestRouter(t)

	post := func(path, body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		return w
	}

	var msg chain.AIMessage
	require.NoError(t, json.Unmarshal(post("/openai", `{"topic":"raw topic"}`).Body.Bytes(), &msg))
	assert.Equal(t, "raw topic", msg.Content)

	require.NoError(t, json.Unmarshal(post("/essay", `{"topic":"dogs"}`).Body.Bytes(), &msg))
	assert.Equal(t, "Write me an essay about dogs with 100 words", msg.Content)

	var poem string
	require.NoError(t, json.Unmarshal(post("/poem", `{"topic":"rain"}`).Body.Bytes(), &poem))
	assert.Equal(t, "Write me a poem about rain with 100 words", poem)
}

func TestSetupRoutes_TrackingAndMetrics(t *testing.T) {
	handler, metrics := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/poem", strings.NewReader(`{"topic":"x"}`))
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.RouteRequests["/poem"])
	assert.Equal(t, int64(1), stats.RouteRequests["unmatched"])
	assert.Equal(t, int64(1), stats.BackendCalls["ollama"])
}

func TestSetupRoutes_SwaggerDocumentsEveryRoute(t *testing.T) {
	handler, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))

	for _, route := range []string{"/openai", "/essay", "/poem"} {
		for suffix, method := range map[string]string{
			"":               "post",
			"/invoke":        "post",
			"/batch":         "post",
			"/input_schema":  "get",
			"/output_schema": "get",
		} {
			assert.Contains(t, doc.Paths[route+suffix], method, route+suffix)
		}
	}
	assert.Contains(t, doc.Paths["/health"], "get")
	assert.Contains(t, doc.Paths["/metrics"], "get")
}

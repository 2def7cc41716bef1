package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aashari/go-prompt-router/internal/config"
)

func newTestApp(t *testing.T, azure config.AzureConfig) (*App, http.Handler) {
	t.Helper()
	t.Setenv("MONGODB_URI", "")

	ollama := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/tags":
			_, _ = w.Write([]byte(`{"models":[]}`))
		case "/api/generate":
			_, _ = w.Write([]byte(`{"model":"gemma","response":"roses are red","done":true,"done_reason":"stop"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(ollama.Close)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "localhost", Port: 8000, BatchMaxConcurrency: 2},
		Azure:  azure,
		Ollama: config.OllamaConfig{BaseURL: ollama.URL, Model: "gemma"},
	}

	a, err := NewApp(t.Context(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close(context.Background()) })

	return a, a.SetupRoutes()
}

func TestNewApp(t *testing.T) {
	a, _ := newTestApp(t, config.AzureConfig{})

	assert.Nil(t, a.Database)
	assert.False(t, a.Recorder.Enabled())
	assert.Equal(t, []string{"configuration", "ollama"}, a.Health.Names())
	require.Len(t, a.Prompts, 3)
	assert.Equal(t, PathOpenAI, a.Prompts[0].Path)
	assert.Equal(t, PathEssay, a.Prompts[1].Path)
	assert.Equal(t, PathPoem, a.Prompts[2].Path)
	assert.Equal(t, "ollama", a.Prompts[2].Runnable.BackendName())
}

func TestApp_PoemRoute(t *testing.T) {
	_, handler := newTestApp(t, config.AzureConfig{})

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, PathPoem, strings.NewReader(`{"topic":"flowers"}`)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `"roses are red"`, w.Body.String())
}

func TestApp_MissingAzureFailsAtRequestTime(t *testing.T) {
	_, handler := newTestApp(t, config.AzureConfig{})

	for _, path := range []string{PathOpenAI, PathEssay} {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"topic":"x"}`)))

		assert.Equal(t, http.StatusInternalServerError, w.Code, path)
		assert.Contains(t, w.Body.String(), config.EnvAzureAPIKey, path)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"degraded"`)
}

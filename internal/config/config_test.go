package config

import (
	"testing"
	"time"

	"github.com/aashari/go-prompt-router/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvAzureAPIKey, EnvAzureEndpoint, EnvAzureDeployment, EnvAzureAPIVersion,
		EnvOllamaBaseURL, EnvOllamaModel, "HOST", "PORT", "CLIENT_TIMEOUT",
		"BATCH_MAX_CONCURRENCY", "READ_TIMEOUT", "WRITE_TIMEOUT", "IDLE_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg := Load()

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "localhost:8000", cfg.Server.Address())
	assert.Equal(t, DefaultBatchMaxConcurrency, cfg.Server.BatchMaxConcurrency)
	assert.Equal(t, DefaultAzureAPIVersion, cfg.Azure.APIVersion)
	assert.Equal(t, DefaultClientTimeout, cfg.Azure.Timeout)
	assert.Equal(t, DefaultOllamaBaseURL, cfg.Ollama.BaseURL)
	assert.Equal(t, DefaultOllamaModel, cfg.Ollama.Model)
	assert.False(t, cfg.Azure.Configured())
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv(EnvAzureAPIKey, " secret ")
	t.Setenv(EnvAzureEndpoint, "https://example.openai.azure.com")
	t.Setenv(EnvAzureDeployment, "gpt-4o")
	t.Setenv(EnvOllamaBaseURL, "http://ollama:11434/")
	t.Setenv(EnvOllamaModel, "llama3")
	t.Setenv("PORT", "9001")
	t.Setenv("CLIENT_TIMEOUT", "20")

	cfg := Load()

	assert.Equal(t, "secret", cfg.Azure.APIKey)
	assert.True(t, cfg.Azure.Configured())
	assert.Empty(t, cfg.Azure.Missing())
	assert.Equal(t, "http://ollama:11434", cfg.Ollama.BaseURL)
	assert.Equal(t, "llama3", cfg.Ollama.Model)
	assert.Equal(t, 9001, cfg.Server.Port)
	assert.Equal(t, 20*time.Second, cfg.Ollama.Timeout)
	assert.Equal(t, 50*time.Second, cfg.Server.WriteTimeout)
}

func TestAzureConfig_Missing(t *testing.T) {
	cfg := AzureConfig{Endpoint: "https://example.openai.azure.com"}

	assert.Equal(t, []string{EnvAzureAPIKey, EnvAzureDeployment}, cfg.Missing())
	assert.False(t, cfg.Configured())
}

func TestValidate_WarnsOnMissingAzure(t *testing.T) {
	clearConfigEnv(t)

	warnings, apiErr := Load().Validate()

	require.Nil(t, apiErr)
	assert.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], EnvAzureAPIKey)
}

func TestValidate_MalformedValues(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		contains string
	}{
		{"port_out_of_range", func(c *Config) { c.Server.Port = 70000 }, "Config.Server.Port"},
		{"bad_ollama_url", func(c *Config) { c.Ollama.BaseURL = "not a url" }, "Config.Ollama.BaseURL"},
		{"bad_azure_endpoint", func(c *Config) { c.Azure.Endpoint = "::nope" }, "Config.Azure.Endpoint"},
		{"zero_concurrency", func(c *Config) { c.Server.BatchMaxConcurrency = 0 }, "Config.Server.BatchMaxConcurrency"},
		{"empty_model", func(c *Config) { c.Ollama.Model = "" }, "is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			cfg := Load()
			tt.mutate(cfg)

			_, apiErr := cfg.Validate()

			require.NotNil(t, apiErr)
			assert.Equal(t, errors.ErrorTypeConfiguration, apiErr.Type)
			assert.Contains(t, apiErr.Message, tt.contains)
		})
	}
}

func TestValidate_UnparsableEnvironment(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"port", "PORT", "abc"},
		{"batch_concurrency", "BATCH_MAX_CONCURRENCY", "x"},
		{"client_timeout", "CLIENT_TIMEOUT", "10m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv(tt.key, tt.value)

			_, apiErr := Load().Validate()

			require.NotNil(t, apiErr)
			assert.Equal(t, errors.ErrorTypeConfiguration, apiErr.Type)
			assert.Contains(t, apiErr.Message, tt.key)
			assert.Contains(t, apiErr.Message, tt.value)
		})
	}
}

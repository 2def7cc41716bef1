package config

import (
	"strconv"
	"strings"
	"time"
)

// Environment variable names read at startup
const (
	EnvAzureAPIKey     = "AZURE_OPENAI_API_KEY"
	EnvAzureEndpoint   = "AZURE_OPENAI_ENDPOINT"
	EnvAzureDeployment = "AZURE_OPENAI_DEPLOYMENT"
	EnvAzureAPIVersion = "AZURE_OPENAI_API_VERSION"
	EnvOllamaBaseURL   = "OLLAMA_BASE_URL"
	EnvOllamaModel     = "OLLAMA_MODEL"
)

// Defaults
const (
	DefaultHost                = "localhost"
	DefaultPort                = 8000
	DefaultAzureAPIVersion     = "2025-01-01-preview"
	DefaultOllamaBaseURL       = "http://localhost:11434"
	DefaultOllamaModel         = "gemma"
	DefaultClientTimeout       = 600 * time.Second
	DefaultBatchMaxConcurrency = 4
)

// Config is the complete process configuration
type Config struct {
	Server ServerConfig
	Azure  AzureConfig
	Ollama OllamaConfig

	// unparsable environment values, reported by Validate
	envErrors []string
}

// ServerConfig holds listener settings
type ServerConfig struct {
	Host                string        `validate:"required"`
	Port                int           `validate:"min=1,max=65535"`
	ReadTimeout         time.Duration `validate:"gt=0"`
	WriteTimeout        time.Duration `validate:"gt=0"`
	IdleTimeout         time.Duration `validate:"gt=0"`
	BatchMaxConcurrency int           `validate:"min=1"`
}

// AzureConfig identifies the hosted chat deployment
type AzureConfig struct {
	APIKey     string
	Endpoint   string `validate:"omitempty,url"`
	Deployment string
	APIVersion string        `validate:"required"`
	Timeout    time.Duration `validate:"gt=0"`
}

// OllamaConfig identifies the local model runtime
type OllamaConfig struct {
	BaseURL string        `validate:"required,url"`
	Model   string        `validate:"required"`
	Timeout time.Duration `validate:"gt=0"`
}

// Load reads the configuration from the process environment.
// Missing Azure values are kept empty; see Validate and AzureConfig.Missing.
func Load() *Config {
	var env envReader
	clientTimeout := env.seconds("CLIENT_TIMEOUT", DefaultClientTimeout)

	return &Config{
		Server: ServerConfig{
			Host:                GetEnvWithDefault("HOST", DefaultHost),
			Port:                env.integer("PORT", DefaultPort),
			ReadTimeout:         env.seconds("READ_TIMEOUT", 30*time.Second),
			WriteTimeout:        env.seconds("WRITE_TIMEOUT", clientTimeout+30*time.Second),
			IdleTimeout:         env.seconds("IDLE_TIMEOUT", 60*time.Second),
			BatchMaxConcurrency: env.integer("BATCH_MAX_CONCURRENCY", DefaultBatchMaxConcurrency),
		},
		Azure: AzureConfig{
			APIKey:     strings.TrimSpace(GetEnvWithDefault(EnvAzureAPIKey, "")),
			Endpoint:   strings.TrimSpace(GetEnvWithDefault(EnvAzureEndpoint, "")),
			Deployment: strings.TrimSpace(GetEnvWithDefault(EnvAzureDeployment, "")),
			APIVersion: GetEnvWithDefault(EnvAzureAPIVersion, DefaultAzureAPIVersion),
			Timeout:    clientTimeout,
		},
		Ollama: OllamaConfig{
			BaseURL: strings.TrimSuffix(GetEnvWithDefault(EnvOllamaBaseURL, DefaultOllamaBaseURL), "/"),
			Model:   GetEnvWithDefault(EnvOllamaModel, DefaultOllamaModel),
			Timeout: clientTimeout,
		},
		envErrors: env.errs,
	}
}

// envReader collects parse failures instead of dropping them
type envReader struct {
	errs []string
}

func (r *envReader) integer(key string, defaultValue int) int {
	v, err := LookupEnvInt(key, defaultValue)
	if err != nil {
		r.errs = append(r.errs, err.Error())
	}
	return v
}

func (r *envReader) seconds(key string, defaultValue time.Duration) time.Duration {
	v, err := LookupEnvDuration(key, defaultValue)
	if err != nil {
		r.errs = append(r.errs, err.Error())
	}
	return v
}

// Address returns host:port for the HTTP listener
func (s ServerConfig) Address() string {
	return s.Host + ":" + strconv.Itoa(s.Port)
}

// Missing lists the Azure environment variables that are not set
func (a AzureConfig) Missing() []string {
	var missing []string
	if a.APIKey == "" {
		missing = append(missing, EnvAzureAPIKey)
	}
	if a.Endpoint == "" {
		missing = append(missing, EnvAzureEndpoint)
	}
	if a.Deployment == "" {
		missing = append(missing, EnvAzureDeployment)
	}
	return missing
}

// Configured reports whether the key/endpoint/deployment triple is complete
func (a AzureConfig) Configured() bool {
	return len(a.Missing()) == 0
}

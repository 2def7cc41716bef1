package database

import (
	"fmt"
	"os"
	"strings"

	"github.com/aashari/go-prompt-router/internal/config"
)

// UsageCollection stores one document per model call
const UsageCollection = "prompt-usages"

// DatabaseConfig holds MongoDB connection configuration
type DatabaseConfig struct {
	// MongoDB connection URI (includes auth); empty disables usage recording
	URI string
	// The current environment (local, development, production, or test)
	Environment string
	// Database name derived from environment and service name
	DatabaseName string
	// Application name reported to MongoDB
	AppName string
	// USAGE_RECORDING_ENABLED=false turns recording off without unsetting the URI
	RecordingEnabled bool
}

// GetDatabaseConfig reads MongoDB settings from the environment.
// The database name is {env-prefix}-{service-name}.
func GetDatabaseConfig() *DatabaseConfig {
	environment := strings.ToLower(os.Getenv("ENVIRONMENT"))

	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "prompt-router"
	}

	var envPrefix string
	switch environment {
	case "production", "prod":
		envPrefix = "prod"
		environment = "production"
	case "local":
		envPrefix = "loc"
	case "test":
		envPrefix = "test"
	default:
		envPrefix = "dev"
		environment = "development"
	}

	dbServiceName := strings.ReplaceAll(serviceName, "_", "-")
	dbServiceName = strings.TrimPrefix(dbServiceName, "go-")

	return &DatabaseConfig{
		URI:          strings.TrimSpace(os.Getenv("MONGODB_URI")),
		Environment:  environment,
		DatabaseName: fmt.Sprintf("%s-%s", envPrefix, dbServiceName),
		AppName:      serviceName,

		RecordingEnabled: config.GetEnvBool("USAGE_RECORDING_ENABLED", true),
	}
}

// Enabled reports whether a MongoDB URI was supplied and recording is on
func (c *DatabaseConfig) Enabled() bool {
	return c.URI != "" && c.RecordingEnabled
}

// MaskSensitiveData returns a copy of the config with credentials masked for logging
func (c *DatabaseConfig) MaskSensitiveData() *DatabaseConfig {
	masked := *c
	at := strings.LastIndex(masked.URI, "@")
	scheme := strings.Index(masked.URI, "//")
	if at > 0 && scheme >= 0 && scheme < at {
		masked.URI = masked.URI[:scheme+2] + "***:***" + masked.URI[at:]
	}
	return &masked
}

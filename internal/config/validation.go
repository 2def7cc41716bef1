package config

import (
	"fmt"
	"strings"

	"github.com/aashari/go-prompt-router/internal/errors"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate checks the structural shape of the configuration.
// Malformed values (port, URLs, timeouts) return a configuration error.
// Absent Azure credentials are reported as warnings only: the hosted
// routes fail on first use instead of blocking startup.
func (c *Config) Validate() (warnings []string, apiErr *errors.APIError) {
	if len(c.envErrors) > 0 {
		return nil, errors.NewConfigurationError(fmt.Sprintf("Configuration validation failed: %s", strings.Join(c.envErrors, "; ")))
	}
	if err := validate.Struct(c); err != nil {
		return nil, formatValidationError(err)
	}

	for _, name := range c.Azure.Missing() {
		warnings = append(warnings, fmt.Sprintf("%s is not set; /openai and /essay will fail until it is provided", name))
	}

	return warnings, nil
}

// formatValidationError formats validator errors into APIError
func formatValidationError(err error) *errors.APIError {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrors {
			messages = append(messages, formatFieldError(e))
		}
		return errors.NewConfigurationError(fmt.Sprintf("Configuration validation failed: %s", strings.Join(messages, "; ")))
	}
	return errors.NewConfigurationError(fmt.Sprintf("Configuration validation failed: %s", err.Error()))
}

// formatFieldError formats a single field validation error
func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("field '%s' is required", e.Namespace())
	case "min", "max":
		return fmt.Sprintf("field '%s' must be %s %s", e.Namespace(), boundWord(e.Tag()), e.Param())
	case "gt":
		return fmt.Sprintf("field '%s' must be greater than %s", e.Namespace(), e.Param())
	case "url":
		return fmt.Sprintf("field '%s' must be a valid URL", e.Namespace())
	default:
		return fmt.Sprintf("field '%s' failed validation: %s", e.Namespace(), e.Tag())
	}
}

func boundWord(tag string) string {
	if tag == "min" {
		return "at least"
	}
	return "at most"
}

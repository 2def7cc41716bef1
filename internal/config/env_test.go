package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")

	envContent := `AZURE_OPENAI_DEPLOYMENT=gpt-4o-essays
OLLAMA_MODEL=gemma:2b
TEST_BOOL=true
`
	if err := os.WriteFile(envFile, []byte(envContent), 0644); err != nil {
		t.Fatalf("Failed to create test .env file: %v", err)
	}

	t.Cleanup(func() {
		os.Unsetenv("AZURE_OPENAI_DEPLOYMENT")
		os.Unsetenv("OLLAMA_MODEL")
		os.Unsetenv("TEST_BOOL")
	})

	if err := LoadEnvFile(envFile); err != nil {
		t.Fatalf("Failed to load .env file: %v", err)
	}

	if got := os.Getenv("AZURE_OPENAI_DEPLOYMENT"); got != "gpt-4o-essays" {
		t.Errorf("Expected AZURE_OPENAI_DEPLOYMENT to be 'gpt-4o-essays', got '%s'", got)
	}
	if got := os.Getenv("OLLAMA_MODEL"); got != "gemma:2b" {
		t.Errorf("Expected OLLAMA_MODEL to be 'gemma:2b', got '%s'", got)
	}
	if got := os.Getenv("TEST_BOOL"); got != "true" {
		t.Errorf("Expected TEST_BOOL to be 'true', got '%s'", got)
	}
}

func TestLoadEnvFileDoesNotOverrideProcessEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("OLLAMA_MODEL=from-file\n"), 0644); err != nil {
		t.Fatalf("Failed to create test .env file: %v", err)
	}

	t.Setenv("OLLAMA_MODEL", "from-process")

	if err := LoadEnvFile(envFile); err != nil {
		t.Fatalf("Failed to load .env file: %v", err)
	}
	if got := os.Getenv("OLLAMA_MODEL"); got != "from-process" {
		t.Errorf("Expected process value to win, got '%s'", got)
	}
}

func TestLoadEnvFileNotExists(t *testing.T) {
	if err := LoadEnvFile("non_existent.env"); err != nil {
		t.Errorf("Expected no error when .env file doesn't exist, got: %v", err)
	}
}

func TestGetEnvWithDefault(t *testing.T) {
	t.Setenv("TEST_EXISTING", "existing_value")

	if result := GetEnvWithDefault("TEST_EXISTING", "default_value"); result != "existing_value" {
		t.Errorf("Expected 'existing_value', got '%s'", result)
	}
	if result := GetEnvWithDefault("TEST_NON_EXISTING", "default_value"); result != "default_value" {
		t.Errorf("Expected 'default_value', got '%s'", result)
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"on", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"off", false},
		{"invalid", true},
	}

	for _, test := range tests {
		t.Setenv("TEST_BOOL_VAR", test.value)
		if result := GetEnvBool("TEST_BOOL_VAR", true); result != test.expected {
			t.Errorf("For value '%s', expected %v, got %v", test.value, test.expected, result)
		}
	}

	if result := GetEnvBool("TEST_NON_EXISTING_BOOL", false); result != false {
		t.Errorf("Expected false for non-existing variable, got %v", result)
	}
}

func TestLookupEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "123")
	t.Setenv("TEST_INVALID_INT", "not_a_number")

	if result, err := LookupEnvInt("TEST_INT", 456); err != nil || result != 123 {
		t.Errorf("Expected 123, got %d (err %v)", result, err)
	}
	if result, err := LookupEnvInt("TEST_NON_EXISTING_INT", 789); err != nil || result != 789 {
		t.Errorf("Expected default value 789, got %d (err %v)", result, err)
	}

	result, err := LookupEnvInt("TEST_INVALID_INT", 456)
	if err == nil {
		t.Fatal("Expected an error for a non-numeric value")
	}
	if result != 456 {
		t.Errorf("Expected default value 456 alongside the error, got %d", result)
	}
	if !strings.Contains(err.Error(), "TEST_INVALID_INT") {
		t.Errorf("Expected error to name the variable, got %q", err.Error())
	}
}

func TestLookupEnvDuration(t *testing.T) {
	t.Setenv("TEST_TIMEOUT", "45")
	t.Setenv("TEST_BAD_TIMEOUT", "45s")

	if result, err := LookupEnvDuration("TEST_TIMEOUT", time.Second); err != nil || result != 45*time.Second {
		t.Errorf("Expected 45s, got %v (err %v)", result, err)
	}
	if result, err := LookupEnvDuration("TEST_MISSING_TIMEOUT", 2*time.Second); err != nil || result != 2*time.Second {
		t.Errorf("Expected default 2s, got %v (err %v)", result, err)
	}
	if _, err := LookupEnvDuration("TEST_BAD_TIMEOUT", time.Second); err == nil {
		t.Error("Expected an error for a non-integer duration")
	}
}

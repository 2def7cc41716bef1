package backends

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aashari/go-prompt-router/internal/config"
	"github.com/aashari/go-prompt-router/internal/logger"
	"github.com/aashari/go-prompt-router/internal/utils"
)

// Ollama calls the /api/generate endpoint of a local Ollama runtime
type Ollama struct {
	baseURL string
	model   string
	client  *http.Client
}

// NewOllama returns a text backend for the configured Ollama model
func NewOllama(cfg config.OllamaConfig, httpClient *http.Client) *Ollama {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = config.DefaultOllamaBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = config.DefaultOllamaModel
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Ollama{
		baseURL: baseURL,
		model:   model,
		client:  httpClient,
	}
}

type ollamaGenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaGenerateResponse struct {
	Model           string `json:"model"`
	Response        string `json:"response"`
	Done            bool   `json:"done"`
	DoneReason      string `json:"done_reason"`
	PromptEvalCount int64  `json:"prompt_eval_count"`
	EvalCount       int64  `json:"eval_count"`
}

type ollamaErrorResponse struct {
	Error string `json:"error"`
}

// Name implements Backend
func (c *Ollama) Name() string { return "ollama" }

// Kind implements Backend
func (c *Ollama) Kind() Kind { return KindText }

// BaseURL returns the runtime address used for requests
func (c *Ollama) BaseURL() string { return c.baseURL }

// Complete implements Backend
func (c *Ollama) Complete(ctx context.Context, prompt string) (*Completion, error) {
	ctx = logger.WithComponent(ctx, logger.ComponentNames.OllamaClient)

	body, err := json.Marshal(ollamaGenerateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("ollama: %w", err)
	}
	req.Header.Set(utils.HeaderContentType, utils.ContentTypeJSON)

	logger.Debug(logger.WithStage(ctx, logger.LogStages.BackendRequest), "Sending generate request",
		"model", c.model,
		"prompt_chars", len(prompt),
	)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama: %s", describeFailure(resp))
	}

	var out ollamaGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("ollama: decode response: %w", err)
	}

	logger.Debug(logger.WithStage(ctx, logger.LogStages.BackendResponse), "Generate response received",
		"model", out.Model,
		"duration_ms", time.Since(start).Milliseconds(),
		"eval_count", out.EvalCount,
	)

	model := out.Model
	if model == "" {
		model = c.model
	}
	return &Completion{
		Content:          out.Response,
		Model:            model,
		FinishReason:     out.DoneReason,
		PromptTokens:     out.PromptEvalCount,
		CompletionTokens: out.EvalCount,
		TotalTokens:      out.PromptEvalCount + out.EvalCount,
	}, nil
}

// Ping checks that the runtime answers on /api/tags
func (c *Ollama) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return fmt.Errorf("ollama: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("ollama: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ollama: %s", resp.Status)
	}
	return nil
}

func describeFailure(resp *http.Response) string {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var e ollamaErrorResponse
	if json.Unmarshal(raw, &e) == nil && e.Error != "" {
		return fmt.Sprintf("%s: %s", resp.Status, e.Error)
	}
	return resp.Status
}

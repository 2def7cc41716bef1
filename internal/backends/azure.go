package backends

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"
	"github.com/openai/openai-go/option"

	"github.com/aashari/go-prompt-router/internal/config"
	"github.com/aashari/go-prompt-router/internal/logger"
)

// AzureChat calls a chat deployment on Azure OpenAI
type AzureChat struct {
	client     openai.Client
	deployment string
	missing    []string
}

// NewAzureChat builds the hosted chat backend. Missing credentials do not
// fail construction; every Complete call reports ErrNotConfigured instead.
func NewAzureChat(cfg config.AzureConfig, httpClient *http.Client) *AzureChat {
	c := &AzureChat{
		deployment: cfg.Deployment,
		missing:    cfg.Missing(),
	}
	if len(c.missing) > 0 {
		return c
	}

	opts := []option.RequestOption{
		azure.WithEndpoint(cfg.Endpoint, cfg.APIVersion),
		azure.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	c.client = openai.NewClient(opts...)
	return c
}

// Name implements Backend
func (c *AzureChat) Name() string { return "azure_openai" }

// Kind implements Backend
func (c *AzureChat) Kind() Kind { return KindChat }

// Complete implements Backend
func (c *AzureChat) Complete(ctx context.Context, prompt string) (*Completion, error) {
	if len(c.missing) > 0 {
		return nil, fmt.Errorf("azure openai: %w: missing %s", ErrNotConfigured, strings.Join(c.missing, ", "))
	}

	ctx = logger.WithComponent(ctx, logger.ComponentNames.AzureClient)
	logger.Debug(logger.WithStage(ctx, logger.LogStages.BackendRequest), "Sending chat completion",
		"deployment", c.deployment,
		"prompt_chars", len(prompt),
	)

	start := time.Now()
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.deployment,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("azure openai chat: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("azure openai chat: no choices in response")
	}

	choice := resp.Choices[0]
	logger.Debug(logger.WithStage(ctx, logger.LogStages.BackendResponse), "Chat completion received",
		"model", resp.Model,
		"duration_ms", time.Since(start).Milliseconds(),
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
		"finish_reason", string(choice.FinishReason),
	)

	return &Completion{
		Content:          choice.Message.Content,
		ID:               resp.ID,
		Model:            resp.Model,
		FinishReason:     string(choice.FinishReason),
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
	}, nil
}

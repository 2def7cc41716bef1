package chain

import "github.com/aashari/go-prompt-router/internal/backends"

// AIMessage is the chat backend output shape
type AIMessage struct {
	Content          string           `json:"content" jsonschema:"description=Assistant reply text"`
	Type             string           `json:"type" jsonschema:"enum=ai"`
	ID               string           `json:"id,omitempty"`
	ResponseMetadata ResponseMetadata `json:"response_metadata"`
}

// ResponseMetadata carries provider details of a chat reply
type ResponseMetadata struct {
	ModelName    string     `json:"model_name,omitempty"`
	FinishReason string     `json:"finish_reason,omitempty"`
	TokenUsage   TokenUsage `json:"token_usage"`
}

// TokenUsage counts prompt and completion tokens
type TokenUsage struct {
	PromptTokens     int64 `json:"prompt_tokens"`
	CompletionTokens int64 `json:"completion_tokens"`
	TotalTokens      int64 `json:"total_tokens"`
}

// NewAIMessage wraps a completion as an assistant message
func NewAIMessage(c *backends.Completion) AIMessage {
	return AIMessage{
		Content: c.Content,
		Type:    "ai",
		ID:      c.ID,
		ResponseMetadata: ResponseMetadata{
			ModelName:    c.Model,
			FinishReason: c.FinishReason,
			TokenUsage: TokenUsage{
				PromptTokens:     c.PromptTokens,
				CompletionTokens: c.CompletionTokens,
				TotalTokens:      c.TotalTokens,
			},
		},
	}
}

package database

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PromptUsage records one model call made on behalf of a route
type PromptUsage struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	RunID         string `bson:"run_id" json:"run_id"`
	RequestID     string `bson:"request_id,omitempty" json:"request_id,omitempty"`
	CorrelationID string `bson:"correlation_id,omitempty" json:"correlation_id,omitempty"`

	Route   string `bson:"route" json:"route"`
	Backend string `bson:"backend" json:"backend"`
	Model   string `bson:"model,omitempty" json:"model,omitempty"`

	Topic        string `bson:"topic" json:"topic"`
	Prompt       string `bson:"prompt" json:"prompt"`
	Completion   string `bson:"completion,omitempty" json:"completion,omitempty"`
	FinishReason string `bson:"finish_reason,omitempty" json:"finish_reason,omitempty"`

	PromptTokens     int64 `bson:"prompt_tokens,omitempty" json:"prompt_tokens,omitempty"`
	CompletionTokens int64 `bson:"completion_tokens,omitempty" json:"completion_tokens,omitempty"`
	TotalTokens      int64 `bson:"total_tokens,omitempty" json:"total_tokens,omitempty"`

	Success      bool   `bson:"success" json:"success"`
	ErrorMessage string `bson:"error_message,omitempty" json:"error_message,omitempty"`

	RequestedAt time.Time `bson:"requested_at" json:"requested_at"`
	RespondedAt time.Time `bson:"responded_at" json:"responded_at"`
	DurationMs  int64     `bson:"duration_ms" json:"duration_ms"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`

	Environment string `bson:"environment,omitempty" json:"environment,omitempty"`
	Version     string `bson:"version,omitempty" json:"version,omitempty"`
}

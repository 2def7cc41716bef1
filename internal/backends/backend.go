package backends

import (
	"context"
	"errors"
)

// Kind describes the shape of what a backend produces
type Kind string

const (
	// KindChat backends answer with an assistant message
	KindChat Kind = "chat"
	// KindText backends answer with bare completion text
	KindText Kind = "text"
)

// ErrNotConfigured is returned when a backend is invoked without its credentials
var ErrNotConfigured = errors.New("backend is not configured")

// Completion is the normalized result of one model call
type Completion struct {
	Content          string
	ID               string
	Model            string
	FinishReason     string
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

// Backend sends a single rendered prompt to a model and returns its reply
type Backend interface {
	// Name identifies the backend in logs, metrics and usage records
	Name() string

	// Kind reports whether replies are chat messages or plain text
	Kind() Kind

	// Complete sends prompt as one user turn and waits for the full reply
	Complete(ctx context.Context, prompt string) (*Completion, error)
}

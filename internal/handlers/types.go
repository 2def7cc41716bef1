package handlers

import "github.com/aashari/go-prompt-router/internal/chain"

// TopicInput is the body of POST {path}
type TopicInput struct {
	Topic *string `json:"topic" validate:"required" jsonschema:"title=Topic"`
}

func (t TopicInput) chainInput() chain.Input {
	return chain.Input{Topic: *t.Topic}
}

// InvokeRequest is the body of POST {path}/invoke
type InvokeRequest struct {
	Input *TopicInput `json:"input" validate:"required"`
}

// BatchRequest is the body of POST {path}/batch
type BatchRequest struct {
	Inputs []TopicInput `json:"inputs" validate:"required,dive"`
}

// InvokeMetadata identifies one run
type InvokeMetadata struct {
	RunID string `json:"run_id" example:"3f1c2a9e-8d4b-4f0e-9a7c-2b6d5e1f0a3c"`
}

// InvokeResponse wraps a single run's output
type InvokeResponse struct {
	Output   interface{}    `json:"output"`
	Metadata InvokeMetadata `json:"metadata"`
}

// BatchMetadata identifies every run of a batch, in input order
type BatchMetadata struct {
	RunIDs []string `json:"run_ids"`
}

// BatchResponse holds outputs in input order
type BatchResponse struct {
	Output   []interface{} `json:"output"`
	Metadata BatchMetadata `json:"metadata"`
}

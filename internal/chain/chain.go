// Package chain composes prompt templates with model backends.
package chain

import (
	"context"
	"fmt"

	"github.com/aashari/go-prompt-router/internal/backends"
	"github.com/aashari/go-prompt-router/internal/logger"
	"github.com/aashari/go-prompt-router/internal/prompts"
)

// Input is the caller supplied variable set for one run
type Input struct {
	Topic string `json:"topic"`
}

// Result is one completed run
type Result struct {
	Prompt     string
	Completion *backends.Completion
	// Output is what the route returns: an AIMessage for chat backends,
	// the bare completion string for text backends.
	Output interface{}
}

// Runnable is a static prompt-to-backend pipeline bound to a route
type Runnable interface {
	Invoke(ctx context.Context, in Input) (*Result, error)
	Kind() backends.Kind
	BackendName() string
}

type sequence struct {
	template *prompts.Template
	backend  backends.Backend
}

// Passthrough sends the topic to the backend untouched
func Passthrough(backend backends.Backend) Runnable {
	return &sequence{backend: backend}
}

// Pipe renders template with the topic and sends the result to the backend.
// It panics if the template needs any variable other than the topic, since
// Input can never supply it.
func Pipe(template *prompts.Template, backend backends.Backend) Runnable {
	for _, name := range template.Variables() {
		if name != prompts.TopicVariable {
			panic(fmt.Sprintf("chain: template %q needs variable %q, only %q is supplied",
				template.String(), name, prompts.TopicVariable))
		}
	}
	return &sequence{template: template, backend: backend}
}

func (s *sequence) Kind() backends.Kind { return s.backend.Kind() }

func (s *sequence) BackendName() string { return s.backend.Name() }

func (s *sequence) Invoke(ctx context.Context, in Input) (*Result, error) {
	ctx = logger.WithComponent(logger.WithBackend(ctx, s.backend.Name()), logger.ComponentNames.Chain)

	prompt := in.Topic
	if s.template != nil {
		rendered, err := s.template.Format(map[string]string{prompts.TopicVariable: in.Topic})
		if err != nil {
			return nil, fmt.Errorf("render prompt: %w", err)
		}
		prompt = rendered
		logger.Debug(logger.WithStage(ctx, logger.LogStages.PromptRendering), "Prompt rendered",
			"template", s.template.String(),
			"prompt_chars", len(prompt),
		)
	}

	completion, err := s.backend.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return &Result{
		Prompt:     prompt,
		Completion: completion,
		Output:     shape(s.backend.Kind(), completion),
	}, nil
}

func shape(kind backends.Kind, c *backends.Completion) interface{} {
	if kind == backends.KindText {
		return c.Content
	}
	return NewAIMessage(c)
}

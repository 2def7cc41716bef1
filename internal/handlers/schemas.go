package handlers

import (
	"github.com/invopop/jsonschema"

	"github.com/aashari/go-prompt-router/internal/backends"
	"github.com/aashari/go-prompt-router/internal/chain"
)

func reflectSchema(v interface{}, title string) *jsonschema.Schema {
	reflector := &jsonschema.Reflector{DoNotReference: true}
	schema := reflector.Reflect(v)
	schema.Title = title
	return schema
}

// InputSchema describes TopicInput
func InputSchema() *jsonschema.Schema {
	return reflectSchema(&TopicInput{}, "PromptRequest")
}

// OutputSchema describes what a runnable of the given kind returns
func OutputSchema(kind backends.Kind) *jsonschema.Schema {
	if kind == backends.KindText {
		return &jsonschema.Schema{Type: "string", Title: "CompletionText"}
	}
	return reflectSchema(&chain.AIMessage{}, "AIMessage")
}

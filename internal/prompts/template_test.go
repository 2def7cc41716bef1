package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltInTemplates(t *testing.T) {
	tests := []struct {
		name     string
		template *Template
		topic    string
		expected string
	}{
		{"essay", Essay, "cats", "Write me an essay about cats with 100 words"},
		{"poem", Poem, "the sea", "Write me a poem about the sea with 100 words"},
		{"empty_topic", Essay, "", "Write me an essay about  with 100 words"},
		{"braces_in_topic", Poem, "{x}", "Write me a poem about {x} with 100 words"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.template.Format(map[string]string{TopicVariable: tt.topic})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTemplate_Variables(t *testing.T) {
	tmpl, err := Parse("{b} then {a} then {b}")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, tmpl.Variables())
	assert.Equal(t, []string{TopicVariable}, Essay.Variables())
}

func TestTemplate_MissingVariable(t *testing.T) {
	_, err := Poem.Format(map[string]string{"subject": "x"})

	var missing *MissingVariableError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "topic", missing.Name)
}

func TestTemplate_EscapedBraces(t *testing.T) {
	tmpl, err := Parse(`Return {{"title": "{topic}"}}`)
	require.NoError(t, err)

	got, err := tmpl.Format(map[string]string{"topic": "go"})
	require.NoError(t, err)
	assert.Equal(t, `Return {"title": "go"}`, got)
}

func TestParse_Errors(t *testing.T) {
	for _, raw := range []string{"about {topic", "about {}", "about topic}"} {
		t.Run(raw, func(t *testing.T) {
			_, err := Parse(raw)
			assert.Error(t, err)
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("{") })
}

// Package prompts renders the fixed prompt templates sent to the models.
package prompts

import (
	"fmt"
	"sort"
	"strings"
)

// Template is a prompt with {name} placeholders. "{{" and "}}" render as
// literal braces.
type Template struct {
	raw       string
	parts     []part
	variables []string
}

type part struct {
	text     string
	variable bool
}

// MissingVariableError reports a placeholder with no value supplied
type MissingVariableError struct {
	Name string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("missing value for prompt variable %q", e.Name)
}

// Parse compiles a template string
func Parse(raw string) (*Template, error) {
	t := &Template{raw: raw}
	seen := make(map[string]bool)

	var text strings.Builder
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == '{' && i+1 < len(raw) && raw[i+1] == '{':
			text.WriteByte('{')
			i++
		case c == '}' && i+1 < len(raw) && raw[i+1] == '}':
			text.WriteByte('}')
			i++
		case c == '{':
			end := strings.IndexByte(raw[i+1:], '}')
			if end < 0 {
				return nil, fmt.Errorf("unclosed placeholder at offset %d", i)
			}
			name := strings.TrimSpace(raw[i+1 : i+1+end])
			if name == "" {
				return nil, fmt.Errorf("empty placeholder at offset %d", i)
			}
			if text.Len() > 0 {
				t.parts = append(t.parts, part{text: text.String()})
				text.Reset()
			}
			t.parts = append(t.parts, part{text: name, variable: true})
			if !seen[name] {
				seen[name] = true
				t.variables = append(t.variables, name)
			}
			i += end + 1
		case c == '}':
			return nil, fmt.Errorf("unmatched '}' at offset %d", i)
		default:
			text.WriteByte(c)
		}
	}
	if text.Len() > 0 {
		t.parts = append(t.parts, part{text: text.String()})
	}

	sort.Strings(t.variables)
	return t, nil
}

// MustParse is Parse for package-level templates
func MustParse(raw string) *Template {
	t, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return t
}

// Variables returns the placeholder names in sorted order
func (t *Template) Variables() []string {
	out := make([]string, len(t.variables))
	copy(out, t.variables)
	return out
}

// String returns the template source
func (t *Template) String() string {
	return t.raw
}

// Format substitutes every placeholder. Values are inserted verbatim.
func (t *Template) Format(values map[string]string) (string, error) {
	var b strings.Builder
	for _, p := range t.parts {
		if !p.variable {
			b.WriteString(p.text)
			continue
		}
		v, ok := values[p.text]
		if !ok {
			return "", &MissingVariableError{Name: p.text}
		}
		b.WriteString(v)
	}
	return b.String(), nil
}

// Package validator decodes JSON request bodies and checks their shape.
package validator

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/aashari/go-prompt-router/internal/errors"
)

var validate = newValidate()

func newValidate() *playground.Validate {
	v := playground.New()
	// report JSON field names instead of Go field names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeAndValidate reads exactly one JSON document from body into dst and
// runs struct validation. Every failure is a validation APIError.
func DecodeAndValidate(body io.Reader, dst interface{}) *errors.APIError {
	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}
	// only whitespace may follow the document
	if _, err := dec.Token(); !stderrors.Is(err, io.EOF) {
		return errors.NewAPIErrorWithDetails(errors.ErrorTypeValidation, "request body is not valid JSON",
			"unexpected data after the JSON document")
	}
	return Struct(dst)
}

// Struct validates an already decoded value
func Struct(v interface{}) *errors.APIError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrors playground.ValidationErrors
	if !stderrors.As(err, &validationErrors) {
		return errors.NewValidationError(err.Error())
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatFieldError(e))
	}
	return errors.NewAPIErrorWithCode(errors.ErrorTypeValidation, strings.Join(messages, "; "), "invalid_request")
}

func decodeError(err error) *errors.APIError {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError

	switch {
	case stderrors.Is(err, io.EOF):
		return errors.NewAPIErrorWithCode(errors.ErrorTypeValidation, "request body is required", "empty_body")
	case stderrors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			return errors.NewAPIErrorWithCode(errors.ErrorTypeValidation,
				fmt.Sprintf("request body must be a JSON object, got %s", typeErr.Value), "invalid_type")
		}
		return errors.NewAPIErrorWithCode(errors.ErrorTypeValidation,
			fmt.Sprintf("field '%s' must be a %s, got %s", field, jsonKind(typeErr.Type), typeErr.Value), "invalid_type")
	case stderrors.As(err, &syntaxErr), stderrors.Is(err, io.ErrUnexpectedEOF):
		return errors.NewAPIErrorWithDetails(errors.ErrorTypeValidation, "request body is not valid JSON", err.Error())
	default:
		return errors.NewValidationError(fmt.Sprintf("invalid request body: %v", err))
	}
}

// formatFieldError formats a single field validation error
func formatFieldError(e playground.FieldError) string {
	field := fieldPath(e.Namespace())
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("field '%s' is required", field)
	case "min":
		return fmt.Sprintf("field '%s' must have at least %s items", field, e.Param())
	default:
		return fmt.Sprintf("field '%s' failed validation: %s", field, e.Tag())
	}
}

// fieldPath drops the root struct name from a validator namespace
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Struct, reflect.Map:
		return "object"
	case reflect.Bool:
		return "boolean"
	default:
		return t.Kind().String()
	}
}

// Package schemas provides JSON Schema validation for persisted documents.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed filter_state.schema.json
var filterStateSchema string

// FilterStateSchemaName names the embedded saved-filter schema in errors.
const FilterStateSchemaName = "filter_state.schema.json"

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, err.Field, err.Message)
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

var (
	filterStateOnce     sync.Once
	filterStateCompiled *gojsonschema.Schema
	filterStateErr      error
)

// ValidateFilterState validates a saved filter snapshot against the embedded schema.
// A document that is not JSON at all is reported as a single root error.
func ValidateFilterState(doc []byte) error {
	filterStateOnce.Do(func() {
		filterStateCompiled, filterStateErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(filterStateSchema))
	})
	if filterStateErr != nil {
		return &SchemaLoadError{Path: FilterStateSchemaName, Message: "embedded schema is invalid", Cause: filterStateErr}
	}

	result, err := filterStateCompiled.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return &ValidationError{Errors: []FieldError{{Field: "(root)", Message: err.Error()}}}
	}
	return resultError(result)
}

func resultError(result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}

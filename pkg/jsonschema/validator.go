package jsonschema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidationErrors collects every schema violation found in one document —
// a benchmark definition typically fails several checks at once (a missing
// scenario here, a bad arrival rate there), and reporting just the first
// would send a user back and forth one error at a time.
type ValidationErrors []error

// Error implements the error interface for ValidationErrors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, err := range ve {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Validate reports whether jsonStr conforms to schemaStr, without collecting
// the individual violations — callers that need to show a user what's wrong
// with their benchmark definition should use ValidateWithErrors instead.
func Validate(jsonStr, schemaStr string) (bool, error) {
	// Parse the schema
	compiler := jsonschema.NewCompiler()

	// Add the schema to the compiler
	if err := compiler.AddResource("schema.json", strings.NewReader(schemaStr)); err != nil {
		return false, fmt.Errorf("invalid schema: %w", err)
	}

	// Compile the schema
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return false, fmt.Errorf("invalid schema: %w", err)
	}

	// Parse the JSON
	var jsonData interface{}
	if err := json.Unmarshal([]byte(jsonStr), &jsonData); err != nil {
		return false, fmt.Errorf("invalid JSON: %w", err)
	}

	// Validate the JSON against the schema
	err = schema.Validate(jsonData)
	if err != nil {
		// JSON is invalid according to the schema
		return false, nil
	}

	// JSON is valid
	return true, nil
}

// ValidateWithErrors validates jsonStr against schemaStr and, on failure,
// flattens the schema library's nested cause tree into one ValidationErrors
// slice — the shape internal/config.Validate surfaces to a benchmark author.
func ValidateWithErrors(jsonStr, schemaStr string) (bool, ValidationErrors) {
	// Parse the schema
	compiler := jsonschema.NewCompiler()

	// Add the schema to the compiler
	if err := compiler.AddResource("schema.json", strings.NewReader(schemaStr)); err != nil {
		return false, ValidationErrors{fmt.Errorf("invalid schema: %w", err)}
	}

	// Compile the schema
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return false, ValidationErrors{fmt.Errorf("invalid schema: %w", err)}
	}

	// Parse the JSON
	var jsonData interface{}
	if err := json.Unmarshal([]byte(jsonStr), &jsonData); err != nil {
		return false, ValidationErrors{fmt.Errorf("invalid JSON: %w", err)}
	}

	// Validate the JSON against the schema
	err = schema.Validate(jsonData)
	if err != nil {
		// JSON is invalid according to the schema
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			// Extract all validation errors
			errors := extractValidationErrors(validationErr)
			return false, errors
		}
		return false, ValidationErrors{err}
	}

	// JSON is valid
	return true, nil
}

// extractValidationErrors extracts all validation errors from a jsonschema.ValidationError
func extractValidationErrors(err *jsonschema.ValidationError) ValidationErrors {
	var errors ValidationErrors

	// Add the current error
	if err.Message != "" {
		errors = append(errors, fmt.Errorf("validation error at %s: %s", err.InstanceLocation, err.Message))
	}

	// Add all child errors
	for _, childErr := range err.Causes {
		errors = append(errors, extractValidationErrors(childErr)...)
	}

	return errors
}

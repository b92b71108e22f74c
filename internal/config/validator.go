package config

import (
	"encoding/json"
	"fmt"

	"github.com/Praveenmail2him/Hyperfoil/pkg/jsonschema"
	"gopkg.in/yaml.v3"
)

// definitionSchema is the structural JSON Schema a benchmark definition
// must satisfy before Build attempts to construct a runtime benchmark.
// Kept intentionally loose — field-level invariants (exactly one arrival
// model per phase, positive rates, …) are enforced by
// internal/benchmark.Phase.Validate instead, since jsonschema.Validate only
// proves the document has the right shape, not that it makes sense.
const definitionSchema = `{
  "type": "object",
  "required": ["name", "phases"],
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "phases": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "scenario", "duration"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "scenario": {
            "type": "object",
            "required": ["name", "sequences"],
            "properties": {
              "name": {"type": "string"},
              "sequences": {"type": "array"},
              "templates": {"type": "array"}
            }
          }
        }
      }
    }
  }
}`

// Validate checks raw YAML bytes against the benchmark-definition JSON
// Schema, reporting structural errors (missing required fields, wrong
// types) before any attempt to parse them into a Document.
//
// YAML is decoded to a generic map first because santhosh-tekuri/jsonschema
// validates against decoded JSON values, not YAML nodes directly.
func Validate(data []byte) error {
	var generic interface{}
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}
	asJSON, err := json.Marshal(generic)
	if err != nil {
		return fmt.Errorf("normalizing YAML to JSON: %w", err)
	}

	ok, errs := jsonschema.ValidateWithErrors(string(asJSON), definitionSchema)
	if !ok {
		return &DefinitionError{Errors: errs}
	}
	return nil
}

// DefinitionError wraps one or more structural validation failures against
// the benchmark-definition schema.
type DefinitionError struct {
	Errors jsonschema.ValidationErrors
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("invalid benchmark definition: %s", e.Errors.Error())
}

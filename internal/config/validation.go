package config

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// profileSchema describes the shape of a profile document. It guards the
// raw YAML before the typed structural checks run, so malformed documents
// produce pointed location-aware errors.
const profileSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["profile", "parameters"],
  "properties": {
    "profile": {
      "type": "object",
      "required": ["name", "version"],
      "properties": {
        "name": {"type": "string", "minLength": 1},
        "version": {"type": "string", "minLength": 1},
        "description": {"type": "string"}
      }
    },
    "selection": {
      "type": "object",
      "required": ["rule"],
      "properties": {
        "rule": {"type": "string", "minLength": 1},
        "weight": {"type": "integer"}
      }
    },
    "parameters": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "domain"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "domain": {"enum": ["continuous", "discrete"]},
          "dtype": {"enum": ["int", "float", "string"]},
          "range": {"type": "array", "items": {"type": "number"}},
          "options": {"type": "array"},
          "ref": {}
        }
      }
    }
  }
}`

var compiledProfileSchema = mustCompileProfileSchema()

func mustCompileProfileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("profile-schema.json", strings.NewReader(profileSchema)); err != nil {
		panic(err)
	}
	return compiler.MustCompile("profile-schema.json")
}

// Validate performs comprehensive validation of a profile.
// Returns an error describing all validation failures found.
func Validate(profile *Profile) error {
	var errors []string

	if err := validateMetadata(profile.Metadata); err != nil {
		errors = append(errors, err.Error())
	}

	if err := validateParameters(profile.Parameters); err != nil {
		errors = append(errors, err.Error())
	}

	if profile.Selection != nil && strings.TrimSpace(profile.Selection.Rule) == "" {
		errors = append(errors, "selection rule cannot be empty when a selection block is present")
	}

	if len(errors) > 0 {
		return fmt.Errorf("profile validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// ValidateDocument validates a raw profile document against the profile
// JSON Schema. Use this before the typed decode for pre-flight validation.
func ValidateDocument(data []byte) error {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := compiledProfileSchema.Validate(doc); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			return formatSchemaValidationError(validationErr)
		}
		return fmt.Errorf("profile schema validation failed: %w", err)
	}

	return nil
}

// validateMetadata validates profile metadata fields.
func validateMetadata(meta ProfileMetadata) error {
	var errors []string

	if meta.Name == "" {
		errors = append(errors, "profile name is required")
	}

	if meta.Version == "" {
		errors = append(errors, "profile version is required")
	} else if _, err := semver.NewVersion(meta.Version); err != nil {
		errors = append(errors, fmt.Sprintf("profile version %q is not valid semver: %v", meta.Version, err))
	}

	if len(errors) > 0 {
		return fmt.Errorf("profile metadata: %s", strings.Join(errors, "; "))
	}

	return nil
}

// validateParameters validates the parameter list.
func validateParameters(params []Parameter) error {
	if len(params) == 0 {
		return fmt.Errorf("at least one parameter is required")
	}

	seen := make(map[string]bool)

	var errors []string
	for i, p := range params {
		if err := p.Validate(); err != nil {
			errors = append(errors, fmt.Sprintf("parameter %d: %s", i, err.Error()))
		}
		if seen[p.Name] {
			errors = append(errors, fmt.Sprintf("duplicate parameter name: %s", p.Name))
		}
		seen[p.Name] = true
	}

	if len(errors) > 0 {
		return fmt.Errorf("parameters validation:\n    - %s", strings.Join(errors, "\n    - "))
	}

	return nil
}

// formatSchemaValidationError flattens a JSON Schema validation error into
// a readable message.
func formatSchemaValidationError(err *jsonschema.ValidationError) error {
	var messages []string

	var collectErrors func(*jsonschema.ValidationError)
	collectErrors = func(e *jsonschema.ValidationError) {
		if e.Message != "" {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}
		for _, cause := range e.Causes {
			collectErrors(cause)
		}
	}

	collectErrors(err)

	if len(messages) == 0 {
		return fmt.Errorf("profile schema validation failed")
	}

	return fmt.Errorf("profile schema validation failed:\n    - %s", strings.Join(messages, "\n    - "))
}

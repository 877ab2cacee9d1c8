// internal/common/validation/schema.go
package validation

import (
	"github.com/xeipuuv/gojsonschema"
)

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// scanRequestSchema is the boundary contract for incoming scan requests.
var scanRequestSchema = map[string]interface{}{
	"type":                 "object",
	"required":             []interface{}{"location"},
	"additionalProperties": false,
	"properties": map[string]interface{}{
		"location": map[string]interface{}{
			"type":      "string",
			"minLength": 1,
		},
		"industry": map[string]interface{}{
			"type": []interface{}{"string", "null"},
		},
		"radius_miles": map[string]interface{}{
			"type":    "integer",
			"minimum": 1,
			"maximum": 100,
		},
		"max_businesses": map[string]interface{}{
			"type":    "integer",
			"minimum": 1,
			"maximum": 500,
		},
		"sources": map[string]interface{}{
			"type": "array",
			"items": map[string]interface{}{
				"type": "string",
			},
		},
		"use_cache": map[string]interface{}{
			"type": "boolean",
		},
		"use_households": map[string]interface{}{
			"type": "boolean",
		},
		"crawl_contacts": map[string]interface{}{
			"type": "boolean",
		},
	},
}

// ValidateScanRequest validates a decoded scan request document against
// the request schema and returns per-field errors.
func ValidateScanRequest(doc map[string]interface{}) (*ValidationResult, error) {
	schemaLoader := gojsonschema.NewGoLoader(scanRequestSchema)
	documentLoader := gojsonschema.NewGoLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, err
	}

	out := &ValidationResult{Valid: result.Valid()}
	for _, desc := range result.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return out, nil
}

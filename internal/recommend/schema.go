package recommend

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// recommendationSchema constrains what the model may return before it
// is accepted: an object with 3-5 recommendation records.
var recommendationSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"recommendations": map[string]any{
			"type":     "array",
			"minItems": 1,
			"maxItems": 5,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"type":          map[string]any{"type": "string"},
					"title":         map[string]any{"type": "string"},
					"description":   map[string]any{"type": "string"},
					"subject":       map[string]any{"type": "string"},
					"priority":      map[string]any{"type": "string"},
					"estimatedTime": map[string]any{"type": "string"},
					"reason":        map[string]any{"type": "string"},
				},
				"required": []any{"type", "title", "description"},
			},
		},
	},
	"required": []any{"recommendations"},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validatePayload checks extracted JSON against the recommendation
// schema. The compiled schema is cached after the first call.
func validatePayload(raw string) error {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not Go
		// literals. Marshal then unmarshal to get a clean representation.
		defBytes, err := json.Marshal(recommendationSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://recommendations.json", defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://recommendations.json")
	})
	if compileErr != nil {
		return fmt.Errorf("compile schema: %w", compileErr)
	}

	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

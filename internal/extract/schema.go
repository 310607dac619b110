package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// catalogSchema returns the JSON-Schema (draft 2020-12 subset) an external
// catalog document must satisfy before it is compiled.
func catalogSchema() map[string]any {
	pattern := map[string]any{"type": "string", "minLength": 1}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"currency_marker", "start_marker", "end_markers", "header_fields", "cost_labels"},
		"properties": map[string]any{
			"currency_marker": pattern,
			"start_marker":    pattern,
			"end_markers": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    pattern,
			},
			"header_fields": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []string{"name", "pattern", "sentinel"},
					"properties": map[string]any{
						"name":     pattern,
						"pattern":  pattern,
						"sentinel": map[string]any{"type": "string"},
					},
				},
			},
			"cost_labels": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []string{"label", "code"},
					"properties": map[string]any{
						"label": pattern,
						"code":  pattern,
					},
				},
			},
		},
	}
}

// validateCatalogJSON validates data against the catalog schema.
func validateCatalogJSON(data []byte) error {
	b, err := json.Marshal(catalogSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("catalog.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("catalog.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("decode catalog: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("catalog does not match schema: %w", err)
	}
	return nil
}

package quote

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// PayloadSchema returns the JSON-Schema (draft 2020-12 subset) for the
// structured quote payload, as a generic map. We pass this to the LLM as an
// output constraint and also use it locally to validate responses.
func PayloadSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"line_items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"description": map[string]any{"type": "string", "minLength": 1},
						"quantity":    map[string]any{"type": "integer", "minimum": 1},
						"price":       map[string]any{"type": "number", "minimum": 0},
					},
					"required": []string{"description", "quantity", "price"},
				},
			},
			"total": map[string]any{"type": "number", "minimum": 0},
		},
		"required": []string{"line_items", "total"},
	}
}

// OfferSchema returns the JSON-Schema for the reconciled counter-offer payload.
func OfferSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"offer_items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"original_description": map[string]any{"type": "string", "minLength": 1},
						"matched_description":  map[string]any{"type": "string", "minLength": 1},
						"quantity":             map[string]any{"type": "integer", "minimum": 1},
						"price":                map[string]any{"type": "number", "minimum": 0},
					},
					"required": []string{"original_description", "matched_description", "quantity", "price"},
				},
			},
			"total": map[string]any{"type": "number", "minimum": 0},
		},
		"required": []string{"offer_items", "total"},
	}
}

// ValidateAgainstSchema validates data against schemaMap.
func ValidateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

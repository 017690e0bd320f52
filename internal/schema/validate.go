// Package schema turns a component variant's prop-schema hints into a JSON
// Schema and runs generated props through a validating parse. Model output is
// untrusted: assuming well-formed JSON from a generative model is a
// frequently-wrong assumption, so every section's props pass through here
// before they reach the result document.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"sitegen_server/internal/utils"
)

// ValidationError means generated props did not satisfy the variant's schema.
// The populator treats it as a per-section failure, never a crash.
type ValidationError struct {
	Variant  string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("props for %s violate schema: %s", e.Variant, strings.Join(e.Problems, "; "))
}

// ParseAndValidate extracts the JSON object from raw provider output, parses
// it, and validates it against the variant's prop schema. Every declared prop
// is required at the top level; extra keys are tolerated.
func ParseAndValidate(raw, variantName string, propsSchema map[string]string) (map[string]any, error) {
	var props map[string]any
	if err := json.Unmarshal([]byte(utils.ExtractJSON(raw)), &props); err != nil {
		return nil, &ValidationError{Variant: variantName, Problems: []string{"not a JSON object: " + err.Error()}}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(buildJSONSchema(propsSchema)),
		gojsonschema.NewGoLoader(props),
	)
	if err != nil {
		return nil, &ValidationError{Variant: variantName, Problems: []string{err.Error()}}
	}
	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return nil, &ValidationError{Variant: variantName, Problems: problems}
	}
	return props, nil
}

// buildJSONSchema maps prop type hints onto a draft JSON Schema document.
func buildJSONSchema(propsSchema map[string]string) map[string]any {
	properties := make(map[string]any, len(propsSchema))
	required := make([]string, 0, len(propsSchema))
	for prop, hint := range propsSchema {
		properties[prop] = hintToSchema(hint)
		required = append(required, prop)
	}
	return map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

func hintToSchema(hint string) map[string]any {
	switch hint {
	case "string", "text", "image":
		return map[string]any{"type": "string"}
	case "number":
		return map[string]any{"type": "number"}
	case "string[]":
		return map[string]any{"type": "array", "items": map[string]any{"type": "string"}}
	case "item[]":
		return map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []string{"title"},
			},
		}
	default:
		// Unknown hints accept anything rather than rejecting good content.
		return map[string]any{}
	}
}

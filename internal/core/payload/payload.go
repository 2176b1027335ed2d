// Package payload encodes provider request bodies and applies caller
// overrides on top of them.
package payload

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/goccy/go-json"
)

// Encode marshals body and, when overrides is non-empty, deep-merges it onto
// the encoded document. Override keys win; nested objects merge key by key
// and arrays are replaced. The override step runs strictly after mapping and
// is never read back by the mappers.
func Encode(body any, overrides map[string]any) ([]byte, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("error marshalling payload: %w", err)
	}
	if len(overrides) == 0 {
		return raw, nil
	}

	doc, err := ToMap(raw)
	if err != nil {
		return nil, err
	}

	merged, err := Merge(doc, overrides)
	if err != nil {
		return nil, err
	}

	out, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("error marshalling merged payload: %w", err)
	}
	return out, nil
}

// Merge deep-merges overrides into base and returns base.
func Merge(base, overrides map[string]any) (map[string]any, error) {
	if base == nil {
		base = map[string]any{}
	}

	// Normalize to the JSON object model so nested values share one map type.
	normalized, err := normalize(overrides)
	if err != nil {
		return nil, err
	}

	if err := mergo.Merge(&base, normalized, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error merging provider overrides: %w", err)
	}
	return base, nil
}

// ToMap decodes a JSON object. Empty input yields an empty map.
func ToMap(raw []byte) (map[string]any, error) {
	doc := map[string]any{}
	if len(raw) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("error decoding json object: %w", err)
	}
	return doc, nil
}

func normalize(v map[string]any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("error marshalling provider overrides: %w", err)
	}
	return ToMap(raw)
}

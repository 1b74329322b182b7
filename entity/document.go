package entity

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Helpers for projecting raw store documents onto entity fields. The store
// is schema-free, so every extraction is an explicit type check; numbers may
// arrive as any of the driver's wire types.

func docString(doc map[string]any, key string) (string, error) {
	v, ok := doc[key]
	if !ok || v == nil {
		return "", fmt.Errorf("%s: missing required field", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s: expected string, got %T", key, v)
	}
	return s, nil
}

func docOptionalString(doc map[string]any, key string) *string {
	if v, ok := doc[key]; ok {
		if s, ok := v.(string); ok {
			return &s
		}
	}
	return nil
}

func docBool(doc map[string]any, key string) bool {
	if v, ok := doc[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

func docFloat(doc map[string]any, key string) (float64, error) {
	v, ok := doc[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("%s: missing required field", key)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("%s: expected number, got %T", key, v)
	}
}

func docInt(doc map[string]any, key string) (int, error) {
	v, ok := doc[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("%s: missing required field", key)
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("%s: expected integer, got %v", key, n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%s: expected integer, got %T", key, v)
	}
}

// docStringSlice keeps element order and silently drops non-string elements.
func docStringSlice(doc map[string]any, key string) []string {
	out := []string{}
	v, ok := doc[key]
	if !ok || v == nil {
		return out
	}
	switch items := v.(type) {
	case []string:
		out = append(out, items...)
	case []any:
		for _, it := range items {
			if s, ok := it.(string); ok {
				out = append(out, s)
			}
		}
	case primitive.A:
		for _, it := range items {
			if s, ok := it.(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

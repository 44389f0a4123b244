package config

import (
	"reflect"
	"strings"

	"github.com/kovetskiy/jax/types"
)

// Merge layers overrides on top of base using the same policy Resolve
// applies to defaults: nested mappings merge recursively, every other
// value replaces the base value wholesale. Both inputs are normalized
// first and neither is mutated.
func Merge(base, overrides map[string]any) map[string]any {
	return deepMerge(normalizeMap(base), normalizeMap(overrides))
}

// deepMerge layers overrides on top of base. Nested mappings merge
// recursively; every other value, ordered lists included, replaces the
// base value wholesale. Neither input is mutated.
func deepMerge(base, overrides map[string]any) map[string]any {
	merged := make(map[string]any, len(base))
	for key, value := range base {
		merged[key] = cloneValue(value)
	}
	for key, value := range overrides {
		if baseMap, ok := merged[key].(map[string]any); ok {
			if overrideMap, ok := value.(map[string]any); ok {
				merged[key] = deepMerge(baseMap, overrideMap)
				continue
			}
		}
		merged[key] = cloneValue(value)
	}
	return merged
}

// normalizeValue converts caller-supplied values into the canonical
// shapes the resolver operates on: plain map[string]any mappings, []any
// sequences, float64 numbers. Functions and unrecognized types pass
// through untouched.
func normalizeValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		normalized := make(map[string]any, len(value))
		for key, item := range value {
			normalized[key] = normalizeValue(item)
		}
		return normalized
	case map[string]string:
		normalized := make(map[string]any, len(value))
		for key, item := range value {
			normalized[key] = item
		}
		return normalized
	case []any:
		normalized := make([]any, len(value))
		for i, item := range value {
			normalized[i] = normalizeValue(item)
		}
		return normalized
	case []string:
		normalized := make([]any, len(value))
		for i, item := range value {
			normalized[i] = item
		}
		return normalized
	case [][]string:
		normalized := make([]any, len(value))
		for i, item := range value {
			normalized[i] = normalizeValue(item)
		}
		return normalized
	case []types.DelimiterPair:
		normalized := make([]any, len(value))
		for i, item := range value {
			normalized[i] = []any{item.Open, item.Close}
		}
		return normalized
	case int:
		return float64(value)
	case int32:
		return float64(value)
	case int64:
		return float64(value)
	case uint:
		return float64(value)
	case uint64:
		return float64(value)
	case float32:
		return float64(value)
	default:
		return v
	}
}

func normalizeMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	return normalizeValue(m).(map[string]any)
}

// cloneValue deep-copies an already-normalized value tree.
func cloneValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		cloned := make(map[string]any, len(value))
		for key, item := range value {
			cloned[key] = cloneValue(item)
		}
		return cloned
	case []any:
		cloned := make([]any, len(value))
		for i, item := range value {
			cloned[i] = cloneValue(item)
		}
		return cloned
	default:
		return v
	}
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return cloneValue(m).(map[string]any)
}

// flattenMap collects every leaf of a nested mapping into flat, keyed by
// dotted path. Non-empty nested mappings recurse; lists and empty
// mappings count as leaves.
func flattenMap(m map[string]any, prefix string, flat map[string]any) {
	for key, value := range m {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok && len(nested) > 0 {
			flattenMap(nested, path, flat)
			continue
		}
		flat[path] = value
	}
}

// valuesEqual compares two normalized values deeply: mappings by key
// set and value, lists element-wise in order, everything else through
// reflect.DeepEqual. Opaque leaves such as hook functions compare as
// unequal.
func valuesEqual(a, b any) bool {
	switch left := a.(type) {
	case map[string]any:
		right, ok := b.(map[string]any)
		if !ok || len(left) != len(right) {
			return false
		}
		for key, value := range left {
			other, ok := right[key]
			if !ok || !valuesEqual(value, other) {
				return false
			}
		}
		return true
	case []any:
		right, ok := b.([]any)
		if !ok || len(left) != len(right) {
			return false
		}
		for i, value := range left {
			if !valuesEqual(value, right[i]) {
				return false
			}
		}
		return true
	default:
		return reflect.DeepEqual(a, b)
	}
}

// lookupPath walks a nested mapping along a dotted path.
func lookupPath(values map[string]any, path string) (any, bool) {
	current := any(values)
	for _, key := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

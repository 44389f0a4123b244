package config

import (
	"fmt"

	"github.com/kovetskiy/jax/schema"
	"github.com/kovetskiy/jax/types"
)

// Resolve layers overrides on top of the built-in defaults of the given
// schema version and validates the merged result. Overrides may be nil.
// The returned Configuration is immutable; neither input is retained or
// mutated, and a failed resolve yields no configuration at all.
func Resolve(version schema.Version, overrides map[string]any) (*Configuration, error) {
	merged := deepMerge(schema.Defaults(version), normalizeMap(overrides))

	if err := validateKinds(version, merged); err != nil {
		return nil, err
	}

	hooks, err := extractHooks(version, merged)
	if err != nil {
		return nil, err
	}

	inline, err := delimiterPairs(version, merged, types.ModeInline)
	if err != nil {
		return nil, err
	}

	display, err := delimiterPairs(version, merged, types.ModeDisplay)
	if err != nil {
		return nil, err
	}

	if err := validateScales(version, merged); err != nil {
		return nil, err
	}

	return &Configuration{
		version: version,
		values:  merged,
		inline:  inline,
		display: display,
		hooks:   hooks,
	}, nil
}

// validateKinds checks every modeled key of the merged mapping against
// the version's kind table. Unknown namespaces and unknown keys inside
// modeled namespaces are left alone. Hook keys are checked separately by
// extractHooks so they fail with the hook error kind, not this one.
func validateKinds(version schema.Version, merged map[string]any) error {
	for name, value := range merged {
		if kind, ok := version.GlobalKind(name); ok {
			if !kindMatches(kind, value) {
				return &SchemaError{Path: name, Want: kind, Value: value}
			}
			continue
		}

		if !version.KnownNamespace(name) {
			continue
		}

		namespace, ok := value.(map[string]any)
		if !ok {
			return &SchemaError{Path: name, Want: schema.KindMap, Value: value}
		}

		for key, option := range namespace {
			kind, ok := version.KeyKind(name, key)
			if !ok || kind == schema.KindHook {
				continue
			}
			if !kindMatches(kind, option) {
				return &SchemaError{
					Path:  name + "." + key,
					Want:  kind,
					Value: option,
				}
			}
		}
	}
	return nil
}

func kindMatches(kind schema.Kind, value any) bool {
	switch kind {
	case schema.KindBool:
		_, ok := value.(bool)
		return ok
	case schema.KindNumber:
		_, ok := value.(float64)
		return ok
	case schema.KindString:
		_, ok := value.(string)
		return ok
	case schema.KindStringList:
		items, ok := value.([]any)
		if !ok {
			return false
		}
		for _, item := range items {
			if _, ok := item.(string); !ok {
				return false
			}
		}
		return true
	case schema.KindPairList:
		items, ok := value.([]any)
		if !ok {
			return false
		}
		for _, item := range items {
			markers, ok := item.([]any)
			if !ok || len(markers) != 2 {
				return false
			}
			for _, marker := range markers {
				if _, ok := marker.(string); !ok {
					return false
				}
			}
		}
		return true
	case schema.KindMap:
		_, ok := value.(map[string]any)
		return ok
	}
	return true
}

// extractHooks pulls lifecycle bindings out of the merged mapping into
// explicit LifecycleHook values. The mapping keeps only plain data
// afterwards, so snapshots and serialization never meet a function.
func extractHooks(version schema.Version, merged map[string]any) (map[string]LifecycleHook, error) {
	name, keys := version.HookKeys()
	if name == "" {
		return nil, nil
	}

	namespace, ok := merged[name].(map[string]any)
	if !ok {
		return nil, nil
	}

	hooks := map[string]LifecycleHook{}
	for _, key := range keys {
		value, present := namespace[key]
		if !present {
			continue
		}

		delete(namespace, key)

		if value == nil {
			continue
		}

		action, ok := value.(func())
		if !ok {
			return nil, &HookError{Name: key, Value: value}
		}

		hooks[key] = LifecycleHook{Name: key, Action: action}
	}
	return hooks, nil
}

// delimiterPairs reads the mode's merged pair list into typed pairs,
// enforcing the non-empty and distinct contract. Value shapes were
// already verified by validateKinds.
func delimiterPairs(
	version schema.Version,
	merged map[string]any,
	mode types.Mode,
) ([]types.DelimiterPair, error) {
	name, key := version.DelimiterKey(mode)
	namespace, _ := merged[name].(map[string]any)
	raw, _ := namespace[key].([]any)

	if len(raw) == 0 {
		return nil, &DelimiterError{Mode: mode, Reason: "no delimiter pairs configured"}
	}

	pairs := make([]types.DelimiterPair, 0, len(raw))
	seen := map[types.DelimiterPair]struct{}{}
	for _, item := range raw {
		markers := item.([]any)
		pair := types.DelimiterPair{
			Open:  markers[0].(string),
			Close: markers[1].(string),
		}

		if pair.Open == "" || pair.Close == "" {
			return nil, &DelimiterError{
				Mode:   mode,
				Pair:   pair,
				Reason: "empty marker in pair",
			}
		}

		if _, dup := seen[pair]; dup {
			return nil, &DelimiterError{
				Mode:   mode,
				Pair:   pair,
				Reason: fmt.Sprintf("duplicate pair %s", pair),
			}
		}

		seen[pair] = struct{}{}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

func validateScales(version schema.Version, merged map[string]any) error {
	for _, keys := range version.ScaleKeys() {
		namespace, ok := merged[keys.Namespace].(map[string]any)
		if !ok {
			continue
		}

		scale, _ := namespace[keys.Scale].(float64)
		minScale, _ := namespace[keys.MinScale].(float64)

		if scale <= 0 || minScale <= 0 || minScale > scale {
			return &ScaleError{
				Namespace: keys.Namespace,
				Scale:     scale,
				MinScale:  minScale,
			}
		}
	}
	return nil
}

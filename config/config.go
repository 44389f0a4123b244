package config

import (
	"encoding/json"
	"sort"

	"github.com/kovetskiy/jax/schema"
	"github.com/kovetskiy/jax/types"
)

// Configuration is a resolved, validated view over one schema version's
// defaults and caller overrides. It is immutable for the lifetime of a
// rendering session: accessors hand out copies, and changed behavior
// requires resolving a new configuration. Values always come from
// Resolve; the zero Configuration is not usable.
type Configuration struct {
	version schema.Version
	values  map[string]any
	inline  []types.DelimiterPair
	display []types.DelimiterPair
	hooks   map[string]LifecycleHook
}

// LifecycleHook binds a named engine startup milestone to an opaque
// zero-argument action. The configuration only owns the binding;
// invocation timing belongs to the engine driving the session.
type LifecycleHook struct {
	Name   string
	Action func()
}

// Invoke runs the bound action. Unbound hooks are no-ops.
func (hook LifecycleHook) Invoke() {
	if hook.Action != nil {
		hook.Action()
	}
}

func (hook LifecycleHook) Bound() bool {
	return hook.Action != nil
}

func (config *Configuration) Version() schema.Version {
	return config.version
}

// Delimiters returns the mode's pairs in declaration order.
func (config *Configuration) Delimiters(mode types.Mode) []types.DelimiterPair {
	pairs := config.display
	if mode == types.ModeInline {
		pairs = config.inline
	}
	return append([]types.DelimiterPair(nil), pairs...)
}

// Get returns the value at a dotted path like "tex.processEscapes",
// reporting whether it is present. Mappings and lists come back as
// copies.
func (config *Configuration) Get(path string) (any, bool) {
	value, ok := lookupPath(config.values, path)
	if !ok {
		return nil, false
	}
	return cloneValue(value), true
}

func (config *Configuration) GetBool(path string) bool {
	value, _ := lookupPath(config.values, path)
	b, _ := value.(bool)
	return b
}

func (config *Configuration) GetFloat(path string) float64 {
	value, _ := lookupPath(config.values, path)
	f, _ := value.(float64)
	return f
}

func (config *Configuration) GetString(path string) string {
	value, _ := lookupPath(config.values, path)
	s, _ := value.(string)
	return s
}

func (config *Configuration) GetStrings(path string) []string {
	value, _ := lookupPath(config.values, path)
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	strs := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			strs = append(strs, s)
		}
	}
	return strs
}

// Hook returns the named lifecycle hook. Unbound names yield a no-op
// hook, so callers invoke unconditionally.
func (config *Configuration) Hook(name string) LifecycleHook {
	if hook, ok := config.hooks[name]; ok {
		return hook
	}
	return LifecycleHook{Name: name}
}

// Hooks returns every bound hook, ordered by name.
func (config *Configuration) Hooks() []LifecycleHook {
	hooks := make([]LifecycleHook, 0, len(config.hooks))
	for _, hook := range config.hooks {
		hooks = append(hooks, hook)
	}
	sort.Slice(hooks, func(i, j int) bool {
		return hooks[i].Name < hooks[j].Name
	})
	return hooks
}

// Map returns a deep copy of the merged configuration mapping. Hook
// bindings are not part of it; they are reachable through Hook.
func (config *Configuration) Map() map[string]any {
	return cloneMap(config.values)
}

func (config *Configuration) MarshalJSON() ([]byte, error) {
	return json.Marshal(config.values)
}

func (config *Configuration) MarshalYAML() (any, error) {
	return cloneMap(config.values), nil
}

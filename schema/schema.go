package schema

import (
	"fmt"

	"github.com/kovetskiy/jax/types"
)

// Version tags which generation of the engine configuration schema a
// mapping follows. The two schemas are not interoperable: namespace
// names, option spellings and even scale units differ between them, so
// a resolver instance always works against exactly one version.
type Version string

const (
	// Legacy is the v2-era schema: tex2jax, TeX, mml2jax, HTML-CSS.
	Legacy Version = "legacy"

	// Current is the v3-era schema: tex, chtml, svg, options, loader,
	// startup.
	Current Version = "current"
)

func Versions() []Version {
	return []Version{Legacy, Current}
}

func ParseVersion(raw string) (Version, error) {
	switch Version(raw) {
	case Legacy:
		return Legacy, nil
	case Current:
		return Current, nil
	}
	return "", fmt.Errorf("unknown schema version: %s", raw)
}

func (version Version) String() string {
	return string(version)
}

// Kind is the value shape expected for a modeled option key. Keys not
// listed in the tables below have no kind and pass through untouched.
type Kind int

const (
	KindBool Kind = iota
	KindNumber
	KindString
	KindStringList
	KindPairList
	KindMap
	KindHook
)

func (kind Kind) String() string {
	switch kind {
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindStringList:
		return "list of strings"
	case KindPairList:
		return "list of delimiter pairs"
	case KindMap:
		return "mapping"
	case KindHook:
		return "zero-argument function"
	}
	return "unknown"
}

// optionKinds maps version -> namespace -> option key -> expected kind.
// Namespaces present with an empty key table are recognized but carry no
// typed keys of their own.
var optionKinds = map[Version]map[string]map[string]Kind{
	Current: {
		"tex": {
			"inlineMath":          KindPairList,
			"displayMath":         KindPairList,
			"processEscapes":      KindBool,
			"processEnvironments": KindBool,
			"processRefs":         KindBool,
			"packages":            KindStringList,
			"macros":              KindMap,
			"tags":                KindString,
		},
		"chtml": {
			"scale":           KindNumber,
			"minScale":        KindNumber,
			"matchFontHeight": KindBool,
			"fontURL":         KindString,
			"adaptiveCSS":     KindBool,
		},
		"svg": {
			"scale":     KindNumber,
			"minScale":  KindNumber,
			"fontCache": KindString,
		},
		"options": {
			"ignoreHtmlClass":  KindString,
			"processHtmlClass": KindString,
			"skipHtmlTags":     KindStringList,
			"enableMenu":       KindBool,
		},
		"loader": {
			"load":  KindStringList,
			"paths": KindMap,
		},
		"startup": {
			"typeset":   KindBool,
			"ready":     KindHook,
			"pageReady": KindHook,
		},
		"mml":       {},
		"asciimath": {"delimiters": KindPairList},
	},
	Legacy: {
		"tex2jax": {
			"inlineMath":          KindPairList,
			"displayMath":         KindPairList,
			"processEscapes":      KindBool,
			"processEnvironments": KindBool,
			"skipTags":            KindStringList,
			"ignoreClass":         KindString,
			"processClass":        KindString,
		},
		"TeX": {
			"extensions":      KindStringList,
			"Macros":          KindMap,
			"equationNumbers": KindMap,
		},
		"HTML-CSS": {
			"scale":          KindNumber,
			"minScaleAdjust": KindNumber,
			"availableFonts": KindStringList,
			"preferredFont":  KindString,
			"webFont":        KindString,
			"linebreaks":     KindMap,
		},
		"mml2jax":       {"preview": KindString},
		"asciimath2jax": {"delimiters": KindPairList},
		"AsciiMath":     {},
	},
}

// globalKinds covers scalar keys allowed at the top level of a schema,
// outside any namespace. Only the legacy schema has those.
var globalKinds = map[Version]map[string]Kind{
	Current: {},
	Legacy: {
		"showMathMenu": KindBool,
		"messageStyle": KindString,
	},
}

// KnownNamespace reports whether name is modeled by this version.
// Unknown namespaces still resolve; their contents pass through opaquely.
func (version Version) KnownNamespace(name string) bool {
	_, ok := optionKinds[version][name]
	return ok
}

// KeyKind reports the expected kind for an option inside a modeled
// namespace. Unknown keys have no kind.
func (version Version) KeyKind(namespace, key string) (Kind, bool) {
	kind, ok := optionKinds[version][namespace][key]
	return kind, ok
}

// GlobalKind reports the expected kind for a top-level scalar key.
func (version Version) GlobalKind(key string) (Kind, bool) {
	kind, ok := globalKinds[version][key]
	return kind, ok
}

// DelimiterKey returns the namespace and key storing the delimiter-pair
// sequence of the given render mode.
func (version Version) DelimiterKey(mode types.Mode) (string, string) {
	namespace := "tex"
	if version == Legacy {
		namespace = "tex2jax"
	}
	if mode == types.ModeDisplay {
		return namespace, "displayMath"
	}
	return namespace, "inlineMath"
}

// InputNamespace returns the namespace holding the input-processor
// options (escape and environment flags live there).
func (version Version) InputNamespace() string {
	if version == Legacy {
		return "tex2jax"
	}
	return "tex"
}

// ScaleKeys describes where a scale/minScale couple lives within one
// output namespace.
type ScaleKeys struct {
	Namespace string
	Scale     string
	MinScale  string
}

func (version Version) ScaleKeys() []ScaleKeys {
	if version == Legacy {
		return []ScaleKeys{
			{Namespace: "HTML-CSS", Scale: "scale", MinScale: "minScaleAdjust"},
		}
	}
	return []ScaleKeys{
		{Namespace: "chtml", Scale: "scale", MinScale: "minScale"},
		{Namespace: "svg", Scale: "scale", MinScale: "minScale"},
	}
}

// HookKeys returns the namespace and the option names bound to lifecycle
// hooks. The legacy schema has no hook-carrying namespace.
func (version Version) HookKeys() (string, []string) {
	if version == Legacy {
		return "", nil
	}
	return "startup", []string{"ready", "pageReady"}
}

package schema

// Defaults returns a fresh copy of the complete built-in configuration
// for the given schema version. Values use the canonical shapes the
// resolver operates on: numbers are float64, delimiter lists are []any
// of two-element []any pairs.
func Defaults(version Version) map[string]any {
	if version == Legacy {
		return legacyDefaults()
	}
	return currentDefaults()
}

func currentDefaults() map[string]any {
	return map[string]any{
		"tex": map[string]any{
			"inlineMath":          []any{pair(`\(`, `\)`)},
			"displayMath":         []any{pair("$$", "$$"), pair(`\[`, `\]`)},
			"processEscapes":      true,
			"processEnvironments": true,
			"processRefs":         true,
			"packages":            []any{"base", "ams", "noerrors", "noundefined"},
			"macros":              map[string]any{},
			"tags":                "none",
		},
		"chtml": map[string]any{
			"scale":           1.0,
			"minScale":        0.5,
			"matchFontHeight": true,
			"fontURL":         "[mathjax]/components/output/chtml/fonts/woff-v2",
			"adaptiveCSS":     true,
		},
		"svg": map[string]any{
			"scale":     1.0,
			"minScale":  0.5,
			"fontCache": "local",
		},
		"options": map[string]any{
			"ignoreHtmlClass":  "tex2jax_ignore",
			"processHtmlClass": "tex2jax_process",
			"skipHtmlTags":     []any{"script", "noscript", "style", "textarea", "pre", "code"},
			"enableMenu":       true,
		},
		"loader": map[string]any{
			"load":  []any{},
			"paths": map[string]any{},
		},
		"startup": map[string]any{
			"typeset": true,
		},
	}
}

func legacyDefaults() map[string]any {
	return map[string]any{
		"tex2jax": map[string]any{
			"inlineMath":          []any{pair("$", "$"), pair(`\(`, `\)`)},
			"displayMath":         []any{pair("$$", "$$"), pair(`\[`, `\]`)},
			"processEscapes":      true,
			"processEnvironments": true,
			"skipTags":            []any{"script", "noscript", "style", "textarea", "pre", "code"},
			"ignoreClass":         "tex2jax_ignore",
			"processClass":        "tex2jax_process",
		},
		"TeX": map[string]any{
			"extensions":      []any{"AMSmath.js", "AMSsymbols.js", "noErrors.js", "noUndefined.js"},
			"Macros":          map[string]any{},
			"equationNumbers": map[string]any{"autoNumber": "none"},
		},
		"mml2jax": map[string]any{
			"preview": "mathml",
		},
		"asciimath2jax": map[string]any{
			"delimiters": []any{pair("`", "`")},
		},
		"HTML-CSS": map[string]any{
			"scale":          100.0,
			"minScaleAdjust": 50.0,
			"availableFonts": []any{"STIX", "TeX"},
			"preferredFont":  "TeX",
			"webFont":        "TeX",
			"linebreaks":     map[string]any{"automatic": false},
		},
		"showMathMenu": true,
		"messageStyle": "normal",
	}
}

func pair(open, close string) []any {
	return []any{open, close}
}

package extract

// presets maps the combined configuration files of the v2 loader, as
// named by the ?config= query parameter, to the overrides they shipped
// with. Each entry builds a fresh mapping.
var presets = map[string]func() map[string]any{
	"TeX-AMS-MML_HTMLorMML": texAMSPreset,
	"TeX-AMS-MML_SVG":       texAMSPreset,
	"TeX-AMS_HTML":          texAMSPreset,
	"TeX-AMS_CHTML":         texAMSPreset,
	"TeX-MML-AM_HTMLorMML":  texFullPreset,
	"TeX-MML-AM_CHTML":      texFullPreset,
	"MML_HTMLorMML":         emptyPreset,
	"AM_HTMLorMML":          asciimathPreset,
	"AM_CHTML":              asciimathPreset,
	"default":               emptyPreset,
}

func texAMSPreset() map[string]any {
	return map[string]any{
		"tex2jax": map[string]any{
			"inlineMath":     [][]string{{"$", "$"}, {`\(`, `\)`}},
			"displayMath":    [][]string{{"$$", "$$"}, {`\[`, `\]`}},
			"processEscapes": true,
		},
		"TeX": map[string]any{
			"extensions": []string{"AMSmath.js", "AMSsymbols.js"},
		},
	}
}

func texFullPreset() map[string]any {
	preset := texAMSPreset()
	preset["asciimath2jax"] = map[string]any{
		"delimiters": [][]string{{"`", "`"}},
	}
	return preset
}

func asciimathPreset() map[string]any {
	return map[string]any{
		"asciimath2jax": map[string]any{
			"delimiters": [][]string{{"`", "`"}},
		},
	}
}

func emptyPreset() map[string]any {
	return map[string]any{}
}

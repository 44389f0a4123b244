package extract

import (
	"strings"
	"testing"

	"github.com/kovetskiy/jax/schema"
	"github.com/kovetskiy/jax/types"
	"github.com/stretchr/testify/assert"
)

func TestFromHTMLWindowMathJax(t *testing.T) {
	page := `<!DOCTYPE html>
<html>
<head>
<script type="text/javascript">
window.MathJax = {
  tex: {
    inlineMath: [['$', '$'], ['\\(', '\\)']],
    displayMath: [['$$', '$$'], ['\\[', '\\]']],
    processEscapes: true,
    packages: ['base', 'ams', 'noerrors', 'noundefined', 'autoload'] // no require
  },
  options: {
    ignoreHtmlClass: 'no-mathjax',
    processHtmlClass: 'mathjax'
  }
};
</script>
<script src="https://cdn.jsdelivr.net/npm/mathjax@3/es5/tex-mml-chtml.js"></script>
</head>
<body><p>$E = mc^2$</p></body>
</html>`

	extraction, err := FromHTML(strings.NewReader(page))
	assert.NoError(t, err)

	assert.Equal(t, EngineMathJax3, extraction.Engine)
	assert.Equal(t, "3", extraction.Version)
	assert.Equal(t, schema.Current, extraction.Schema())
	assert.Equal(
		t,
		[]string{"window.MathJax script", "asset mathjax@3"},
		extraction.Sources,
	)

	tex := extraction.Overrides["tex"].(map[string]any)
	assert.Equal(t, true, tex["processEscapes"])
	assert.Equal(
		t,
		[]any{
			[]any{"$", "$"},
			[]any{`\(`, `\)`},
		},
		tex["inlineMath"],
	)
	assert.Len(t, tex["packages"], 5)

	resolved, err := extraction.Resolve()
	assert.NoError(t, err)
	assert.Equal(t, "no-mathjax", resolved.GetString("options.ignoreHtmlClass"))
	assert.Equal(
		t,
		types.DelimiterPair{Open: "$", Close: "$"},
		resolved.Delimiters(types.ModeInline)[0],
	)
}

func TestFromHTMLHubConfig(t *testing.T) {
	page := `<html>
<head>
<script src="https://cdnjs.cloudflare.com/ajax/libs/mathjax/2.7.7/MathJax.js?config=TeX-AMS-MML_HTMLorMML"></script>
<script type="text/javascript">
MathJax.Hub.Config({
  tex2jax: {
    inlineMath: [['$', '$'], ['\\(', '\\)']],
    processEscapes: true
  },
  TeX: {
    equationNumbers: { autoNumber: "AMS" },
    Macros: {
      RR: "{\\mathbb{R}}",
      NN: "{\\mathbb{N}}"
    }
  }
});
</script>
</head>
<body></body>
</html>`

	extraction, err := FromHTML(strings.NewReader(page))
	assert.NoError(t, err)

	assert.Equal(t, EngineMathJax2, extraction.Engine)
	assert.Equal(t, "2.7.7", extraction.Version)
	assert.Equal(t, schema.Legacy, extraction.Schema())
	assert.Equal(
		t,
		[]string{
			"asset mathjax@2.7.7",
			"config=TeX-AMS-MML_HTMLorMML",
			"MathJax.Hub.Config script",
		},
		extraction.Sources,
	)

	// the preset supplied the extensions, the script the macros
	tex := extraction.Overrides["TeX"].(map[string]any)
	assert.Equal(
		t,
		[]any{"AMSmath.js", "AMSsymbols.js"},
		tex["extensions"],
	)
	assert.Equal(t, `{\mathbb{R}}`, tex["Macros"].(map[string]any)["RR"])

	resolved, err := extraction.Resolve()
	assert.NoError(t, err)
	assert.Equal(t, "AMS", resolved.GetString("TeX.equationNumbers.autoNumber"))
	assert.Equal(
		t,
		types.DelimiterPair{Open: "$", Close: "$"},
		resolved.Delimiters(types.ModeInline)[0],
	)
}

func TestFromHTMLKatex(t *testing.T) {
	page := `<html>
<head>
<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/katex@0.13.11/dist/katex.min.css">
<script src="https://cdn.jsdelivr.net/npm/katex@0.13.11/dist/katex.min.js"></script>
<script src="https://cdn.jsdelivr.net/npm/katex@0.13.11/dist/contrib/auto-render.min.js"></script>
<script>
document.addEventListener("DOMContentLoaded", function() {
    renderMathInElement(document.body, {
        delimiters: [
            {left: "$$", right: "$$", display: true},
            {left: "$", right: "$", display: false},
            {left: "\\(", right: "\\)", display: false},
            {left: "\\[", right: "\\]", display: true}
        ],
        throwOnError: false,
        errorColor: "#cc0000"
    });
});
</script>
</head>
<body></body>
</html>`

	extraction, err := FromHTML(strings.NewReader(page))
	assert.NoError(t, err)

	assert.Equal(t, EngineKaTeX, extraction.Engine)
	assert.Equal(t, "0.13.11", extraction.Version)
	assert.Equal(t, schema.Current, extraction.Schema())
	assert.Contains(t, extraction.Sources, "renderMathInElement script")

	tex := extraction.Overrides["tex"].(map[string]any)
	assert.Equal(
		t,
		[]any{
			[]any{"$", "$"},
			[]any{`\(`, `\)`},
		},
		tex["inlineMath"],
	)
	assert.Equal(
		t,
		[]any{
			[]any{"$$", "$$"},
			[]any{`\[`, `\]`},
		},
		tex["displayMath"],
	)

	options := extraction.Overrides["options"].(map[string]any)
	assert.Equal(t, false, options["throwOnError"])
	assert.Equal(t, "#cc0000", options["errorColor"])

	resolved, err := extraction.Resolve()
	assert.NoError(t, err)
	assert.Equal(
		t,
		types.DelimiterPair{Open: "$$", Close: "$$"},
		resolved.Delimiters(types.ModeDisplay)[0],
	)
}

func TestFromHTMLKatexDefaultDelimiters(t *testing.T) {
	page := `<html><head>
<script>renderMathInElement(document.body, {throwOnError: false});</script>
</head><body></body></html>`

	extraction, err := FromHTML(strings.NewReader(page))
	assert.NoError(t, err)

	tex := extraction.Overrides["tex"].(map[string]any)
	assert.Equal(
		t,
		[]any{
			[]any{"$", "$"},
			[]any{`\(`, `\)`},
		},
		tex["inlineMath"],
	)
	assert.Equal(
		t,
		[]any{
			[]any{"$$", "$$"},
			[]any{`\[`, `\]`},
		},
		tex["displayMath"],
	)
}

func TestFromHTMLWithoutEngine(t *testing.T) {
	page := `<html><head><title>plain</title></head><body><p>text</p></body></html>`

	extraction, err := FromHTML(strings.NewReader(page))
	assert.NoError(t, err)

	assert.False(t, extraction.Found())
	assert.Equal(t, Engine(""), extraction.Engine)
	assert.Empty(t, extraction.Overrides)

	resolved, err := extraction.Resolve()
	assert.NoError(t, err)
	assert.Equal(t, schema.Defaults(schema.Current), resolved.Map())
}

func TestFromHTMLLaterBlocksOverride(t *testing.T) {
	page := `<html><head>
<script>window.MathJax = {chtml: {scale: 1.5}};</script>
<script>window.MathJax = {chtml: {scale: 2.0}, svg: {fontCache: 'none'}};</script>
</head><body></body></html>`

	extraction, err := FromHTML(strings.NewReader(page))
	assert.NoError(t, err)

	chtml := extraction.Overrides["chtml"].(map[string]any)
	assert.Equal(t, 2.0, chtml["scale"])
	assert.Equal(
		t,
		"none",
		extraction.Overrides["svg"].(map[string]any)["fontCache"],
	)
	assert.Len(t, extraction.Sources, 2)
}

func TestFromHTMLSkipsUndecodableBlocks(t *testing.T) {
	page := `<html><head>
<script>window.MathJax = {tex: {inlineMath: [['$', '$']}};</script>
<script>MathJax.Hub.Config({tex2jax: {processEscapes: true}});</script>
</head><body></body></html>`

	extraction, err := FromHTML(strings.NewReader(page))
	assert.NoError(t, err)

	// only the block that decoded contributes
	assert.Equal(t, EngineMathJax2, extraction.Engine)
	assert.Equal(t, []string{"MathJax.Hub.Config script"}, extraction.Sources)
	assert.Equal(
		t,
		map[string]any{"tex2jax": map[string]any{"processEscapes": true}},
		extraction.Overrides,
	)
}

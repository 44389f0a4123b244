package renderer

import (
	"strings"

	admonitions "github.com/stefanfritsch/goldmark-admonitions"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

type AdmonitionRenderer struct {
	html.Config
}

// NewAdmonitionRenderer creates a new instance of the AdmonitionRenderer
func NewAdmonitionRenderer(opts ...html.Option) renderer.NodeRenderer {
	return &AdmonitionRenderer{
		Config: html.NewConfig(),
	}
}

// RegisterFuncs implements NodeRenderer.RegisterFuncs .
func (r *AdmonitionRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(admonitions.KindAdmonition, r.renderAdmonition)
}

func (r *AdmonitionRenderer) renderAdmonition(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*admonitions.Admonition)

	if entering {
		w.WriteString(`<div class="admonition `)
		w.Write(util.EscapeHTML(n.AdmonitionClass))
		w.WriteString("\">\n")

		if title := admonitionTitle(n); title != "" {
			w.WriteString(`<p class="admonition-title">`)
			w.Write(util.EscapeHTML([]byte(title)))
			w.WriteString("</p>\n")
		}
	} else {
		w.WriteString("</div>\n")
	}

	return ast.WalkContinue, nil
}

// admonitionTitle falls back to the capitalized admonition class when no
// explicit title was written.
func admonitionTitle(n *admonitions.Admonition) string {
	if len(n.Title) > 0 {
		return string(n.Title)
	}

	class := string(n.AdmonitionClass)
	if class == "" {
		return ""
	}
	return strings.ToUpper(class[:1]) + class[1:]
}

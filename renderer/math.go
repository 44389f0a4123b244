package renderer

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	jparser "github.com/kovetskiy/jax/parser"
)

type MathRenderer struct {
	html.Config
}

// NewMathRenderer creates a new instance of the MathRenderer
func NewMathRenderer(opts ...html.Option) renderer.NodeRenderer {
	return &MathRenderer{
		Config: html.NewConfig(),
	}
}

// RegisterFuncs implements NodeRenderer.RegisterFuncs .
func (r *MathRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(jparser.KindMathInline, r.renderInline)
	reg.Register(jparser.KindMathBlock, r.renderBlock)
}

func (r *MathRenderer) renderInline(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		node := n.(*jparser.MathInline)

		w.WriteString(`<span class="mjx-container" jax="TeX">`)
		w.Write(util.EscapeHTML([]byte(node.Pair.Wrap(string(node.Equation)))))
		w.WriteString(`</span>`)
	}
	return ast.WalkContinue, nil
}

func (r *MathRenderer) renderBlock(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		node := n.(*jparser.MathBlock)

		w.WriteString(`<div class="mjx-container" jax="TeX" display="true">`)
		w.Write(util.EscapeHTML([]byte(node.Pair.Wrap(string(node.Equation)))))
		w.WriteString(`</div>`)
	}

	return ast.WalkContinue, nil
}

package markdown

import (
	"bytes"
	"slices"

	"github.com/kovetskiy/jax/config"
	jparser "github.com/kovetskiy/jax/parser"
	jrenderer "github.com/kovetskiy/jax/renderer"
	"github.com/reconquest/karma-go"
	"github.com/reconquest/pkg/log"
	mkDocsParser "github.com/stefanfritsch/goldmark-admonitions"
	"github.com/yuin/goldmark"

	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// MathExtension wires the configured delimiter pairs into a goldmark
// pipeline: the parser side matches them, the renderer side emits the
// typeset containers.
type MathExtension struct {
	html.Config
	MathConfig *config.Configuration
	Features   []string
}

// NewMathExtension creates a new instance of the MathExtension
func NewMathExtension(cfg *config.Configuration, features []string) *MathExtension {
	return &MathExtension{
		Config:     html.NewConfig(),
		MathConfig: cfg,
		Features:   features,
	}
}

func (c *MathExtension) Extend(m goldmark.Markdown) {
	if slices.Contains(c.Features, "mkdocsadmonitions") {
		m.Parser().AddOptions(
			parser.WithBlockParsers(
				util.Prioritized(mkDocsParser.NewAdmonitionParser(), 100),
			),
		)

		m.Renderer().AddOptions(renderer.WithNodeRenderers(
			util.Prioritized(jrenderer.NewAdmonitionRenderer(), 100),
		))
	}

	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(jparser.NewMathParser(c.MathConfig), 100),
	))

	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(jrenderer.NewMathRenderer(), 100),
	))
}

func Compile(source []byte, cfg *config.Configuration, features ...string) (string, error) {
	log.Tracef(nil, "rendering markdown:\n%s", string(source))

	mathExtension := NewMathExtension(cfg, features)

	converter := goldmark.New(
		goldmark.WithExtensions(
			extension.Footnote,
			extension.DefinitionList,
			extension.NewTable(
				extension.WithTableCellAlignMethod(extension.TableCellAlignStyle),
			),
			mathExtension,
			extension.GFM,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
			html.WithXHTML(),
		))

	ctx := parser.NewContext(parser.WithIDs(&jparser.HeadingIDs{Values: map[string]bool{}}))

	var buf bytes.Buffer
	err := converter.Convert(source, &buf, parser.WithContext(ctx))
	if err != nil {
		return "", karma.Format(err, "unable to compile markdown")
	}

	html := buf.Bytes()

	log.Tracef(nil, "rendered markdown to html:\n%s", string(html))

	return string(html), nil
}

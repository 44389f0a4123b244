package document

import (
	"html"
	"strings"
)

// MarkupEngine is the built-in collaborator. It does no glyph layout:
// compiling escapes the delimiter-wrapped source, typesetting wraps it
// in the container element a page-side engine picks up.
type MarkupEngine struct{}

func NewMarkupEngine() *MarkupEngine {
	return &MarkupEngine{}
}

func (engine *MarkupEngine) Compile(item *Item) error {
	item.Compiled = html.EscapeString(strings.TrimSpace(item.Source()))
	return nil
}

func (engine *MarkupEngine) Typeset(item *Item) error {
	if item.Display() {
		item.Markup = `<div class="mjx-container" jax="TeX" display="true">` +
			item.Compiled + `</div>`
	} else {
		item.Markup = `<span class="mjx-container" jax="TeX">` +
			item.Compiled + `</span>`
	}

	return nil
}

package finder

import (
	"strings"
	"testing"

	"github.com/kovetskiy/jax/schema"
	"github.com/stretchr/testify/assert"
)

func TestFindHTML(t *testing.T) {
	finder := newFinder(t, schema.Current, withDollarInline())

	page := `<html><body>
<p>Euler: $e^{i\pi}+1=0$</p>
<pre>$not math$</pre>
<div class="tex2jax_ignore">
  <p>$skipped$</p>
  <div class="tex2jax_process"><p>$rescued$</p></div>
</div>
<p>Display: $$x$$</p>
</body></html>`

	found, err := finder.FindHTML(strings.NewReader(page))
	assert.NoError(t, err)

	var equations []string
	for _, block := range found {
		for _, item := range block.Items {
			equations = append(equations, item.Equation)
		}
	}

	assert.Equal(t, []string{`e^{i\pi}+1=0`, "rescued", "x"}, equations)
	assert.Equal(t, "p", found[0].Parent)
}

func TestFindHTMLSkipsConfiguredTags(t *testing.T) {
	finder := newFinder(t, schema.Current, map[string]any{
		"tex": map[string]any{
			"inlineMath": [][]string{{"$", "$"}},
		},
		"options": map[string]any{
			"skipHtmlTags": []string{"blockquote"},
		},
	})

	page := `<body><blockquote>$a$</blockquote><code>$b$</code><p>$c$</p></body>`
	found, err := finder.FindHTML(strings.NewReader(page))
	assert.NoError(t, err)

	// the skip list was replaced, so code is scanned again
	assert.Len(t, found, 2)
	assert.Equal(t, "b", found[0].Items[0].Equation)
	assert.Equal(t, "c", found[1].Items[0].Equation)
}

func TestFindHTMLLegacyClasses(t *testing.T) {
	finder := newFinder(t, schema.Legacy, map[string]any{
		"tex2jax": map[string]any{
			"inlineMath":  [][]string{{"$", "$"}},
			"ignoreClass": "nomath",
		},
	})

	page := `<body><span class="nomath">$a$</span><span>$b$</span></body>`
	found, err := finder.FindHTML(strings.NewReader(page))
	assert.NoError(t, err)

	assert.Len(t, found, 1)
	assert.Equal(t, "b", found[0].Items[0].Equation)
	assert.Equal(t, "span", found[0].Parent)
}

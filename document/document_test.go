package document

import (
	"errors"
	"testing"

	"github.com/kovetskiy/jax/config"
	"github.com/kovetskiy/jax/schema"
	"github.com/stretchr/testify/assert"
)

func testConfiguration(t *testing.T, overrides map[string]any) *config.Configuration {
	resolved, err := config.Resolve(schema.Current, overrides)
	assert.NoError(t, err)
	return resolved
}

func dollarInline() map[string]any {
	return map[string]any{
		"tex": map[string]any{
			"inlineMath": [][]string{{"$", "$"}, {`\(`, `\)`}},
		},
	}
}

func TestDocumentPipeline(t *testing.T) {
	pipeline := New(testConfiguration(t, dollarInline()), nil)
	assert.Equal(t, PhaseInitialized, pipeline.Phase())

	items := pipeline.FindMath("mass energy: $E = mc^2$, done")
	assert.Len(t, items, 1)
	assert.Equal(t, PhaseFound, pipeline.Phase())
	assert.Equal(t, StateFound, items[0].State)

	assert.NoError(t, pipeline.Compile())
	assert.Equal(t, StateCompiled, items[0].State)
	assert.Equal(t, "$E = mc^2$", items[0].Compiled)
	assert.Equal(t, PhaseCompiled, pipeline.Phase())

	assert.NoError(t, pipeline.Typeset())
	assert.Equal(t, StateTypeset, items[0].State)
	assert.Equal(
		t,
		`<span class="mjx-container" jax="TeX">$E = mc^2$</span>`,
		items[0].Markup,
	)

	updated, err := pipeline.UpdateDocument()
	assert.NoError(t, err)
	assert.Equal(
		t,
		`mass energy: <span class="mjx-container" jax="TeX">$E = mc^2$</span>, done`,
		updated,
	)
	assert.Equal(t, PhaseUpdated, pipeline.Phase())
}

func TestDocumentEscapesMarkup(t *testing.T) {
	pipeline := New(testConfiguration(t, nil), nil)
	pipeline.FindMath(`$$a < b$$`)

	updated, err := pipeline.UpdateDocument()
	assert.NoError(t, err)
	assert.Equal(
		t,
		`<div class="mjx-container" jax="TeX" display="true">$$a &lt; b$$</div>`,
		updated,
	)
}

func TestDocumentSplicesRightToLeft(t *testing.T) {
	pipeline := New(testConfiguration(t, dollarInline()), nil)
	pipeline.FindMath("$a$ and $bb$")

	updated, err := pipeline.UpdateDocument()
	assert.NoError(t, err)
	assert.Equal(
		t,
		`<span class="mjx-container" jax="TeX">$a$</span>`+
			` and `+
			`<span class="mjx-container" jax="TeX">$bb$</span>`,
		updated,
	)
}

func TestDocumentFiresHooksOnce(t *testing.T) {
	var ready, pageReady int

	overrides := dollarInline()
	overrides["startup"] = map[string]any{
		"ready":     func() { ready++ },
		"pageReady": func() { pageReady++ },
	}

	pipeline := New(testConfiguration(t, overrides), nil)
	assert.Equal(t, 0, ready)

	pipeline.Startup()
	pipeline.Startup()
	assert.Equal(t, 1, ready)
	assert.Equal(t, 0, pageReady)

	pipeline.FindMath("$x$")
	assert.NoError(t, pipeline.Typeset())
	assert.Equal(t, 1, pageReady)

	assert.NoError(t, pipeline.Typeset())
	pipeline.FindMath("$y$")
	assert.NoError(t, pipeline.Typeset())
	assert.Equal(t, 1, pageReady)
}

func TestDocumentReset(t *testing.T) {
	pipeline := New(testConfiguration(t, dollarInline()), nil)

	source := "value: $x$"
	pipeline.FindMath(source)

	updated, err := pipeline.UpdateDocument()
	assert.NoError(t, err)
	assert.NotEqual(t, source, updated)

	assert.Equal(t, source, pipeline.Reset())
	assert.Equal(t, PhaseFound, pipeline.Phase())
	for _, item := range pipeline.Items() {
		assert.Equal(t, StateFound, item.State)
		assert.Empty(t, item.Markup)
	}

	// the pipeline replays cleanly after a rewind
	replayed, err := pipeline.UpdateDocument()
	assert.NoError(t, err)
	assert.Equal(t, updated, replayed)
}

type failingEngine struct {
	compile error
	typeset error
}

func (engine failingEngine) Compile(item *Item) error {
	return engine.compile
}

func (engine failingEngine) Typeset(item *Item) error {
	return engine.typeset
}

func TestDocumentReportsEngineErrors(t *testing.T) {
	pipeline := New(
		testConfiguration(t, dollarInline()),
		failingEngine{compile: errors.New("bad input")},
	)

	items := pipeline.FindMath("$x$")
	err := pipeline.Compile()
	assert.ErrorContains(t, err, "unable to compile")
	assert.Equal(t, StateFound, items[0].State)

	pipeline = New(
		testConfiguration(t, dollarInline()),
		failingEngine{typeset: errors.New("bad output")},
	)

	items = pipeline.FindMath("$x$")
	err = pipeline.Typeset()
	assert.ErrorContains(t, err, "unable to typeset")
	assert.Equal(t, StateCompiled, items[0].State)
}

type bracketEngine struct{}

func (engine bracketEngine) Compile(item *Item) error {
	item.Compiled = item.Equation
	return nil
}

func (engine bracketEngine) Typeset(item *Item) error {
	item.Markup = "[" + item.Compiled + "]"
	return nil
}

func TestDocumentAcceptsInjectedEngine(t *testing.T) {
	pipeline := New(testConfiguration(t, dollarInline()), bracketEngine{})
	pipeline.FindMath("$a$ $b$")

	updated, err := pipeline.UpdateDocument()
	assert.NoError(t, err)
	assert.Equal(t, "[a] [b]", updated)
}

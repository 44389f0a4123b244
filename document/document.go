package document

import (
	"github.com/kovetskiy/jax/config"
	"github.com/kovetskiy/jax/finder"
	"github.com/kovetskiy/jax/types"
	"github.com/reconquest/karma-go"
)

// State tracks how far through the pipeline one math item has come.
type State int

const (
	StateFound State = iota
	StateCompiled
	StateTypeset
)

// Phase tracks the document as a whole.
type Phase int

const (
	PhaseInitialized Phase = iota
	PhaseFound
	PhaseCompiled
	PhaseTypeset
	PhaseUpdated
)

// Item is one math span moving through the pipeline. Compiled holds
// the engine's intermediate form, Markup the final typeset output.
type Item struct {
	types.MathItem

	State    State
	Compiled string
	Markup   string
}

// Engine turns found math into typeset markup. Compile produces the
// intermediate form on the item, Typeset the final markup.
type Engine interface {
	Compile(item *Item) error
	Typeset(item *Item) error
}

// Document drives math spans of one text through find, compile and
// typeset. The configuration is read, never changed.
type Document struct {
	config *config.Configuration
	engine Engine
	finder *finder.Finder

	source string
	items  []*Item
	phase  Phase

	started   bool
	pageReady bool
}

// New builds a document pipeline on the given configuration. A nil
// engine gets the built-in markup engine.
func New(cfg *config.Configuration, engine Engine) *Document {
	if engine == nil {
		engine = NewMarkupEngine()
	}

	return &Document{
		config: cfg,
		engine: engine,
		finder: finder.New(cfg),
	}
}

// Startup fires the ready hook. Calling it again is a no-op.
func (document *Document) Startup() {
	if document.started {
		return
	}

	document.started = true
	document.config.Hook("ready").Invoke()
}

// FindMath scans text for configured math spans and points the
// pipeline at the new source, discarding items from a previous one.
func (document *Document) FindMath(text string) []*Item {
	document.source = text
	document.items = nil

	for _, found := range document.finder.FindString(text) {
		document.items = append(document.items, &Item{MathItem: found})
	}

	document.phase = PhaseFound
	return document.items
}

// Compile advances every found item through the engine's input pass.
// Items already compiled keep their state.
func (document *Document) Compile() error {
	for _, item := range document.items {
		if item.State >= StateCompiled {
			continue
		}

		err := document.engine.Compile(item)
		if err != nil {
			return karma.Format(err, "unable to compile %q", item.Equation)
		}

		item.State = StateCompiled
	}

	if document.phase < PhaseCompiled {
		document.phase = PhaseCompiled
	}

	return nil
}

// Typeset compiles what still needs compiling, then runs the engine's
// output pass over every item. The first successful run fires the
// pageReady hook.
func (document *Document) Typeset() error {
	err := document.Compile()
	if err != nil {
		return err
	}

	for _, item := range document.items {
		if item.State >= StateTypeset {
			continue
		}

		err := document.engine.Typeset(item)
		if err != nil {
			return karma.Format(err, "unable to typeset %q", item.Equation)
		}

		item.State = StateTypeset
	}

	if document.phase < PhaseTypeset {
		document.phase = PhaseTypeset
	}

	if !document.pageReady {
		document.pageReady = true
		document.config.Hook("pageReady").Invoke()
	}

	return nil
}

// UpdateDocument splices the typeset markup over the original spans
// and returns the result. Splicing runs right to left so the earlier
// offsets stay valid while later spans shrink or grow.
func (document *Document) UpdateDocument() (string, error) {
	err := document.Typeset()
	if err != nil {
		return "", err
	}

	updated := document.source
	for index := len(document.items) - 1; index >= 0; index-- {
		item := document.items[index]
		updated = updated[:item.Start] + item.Markup + updated[item.End:]
	}

	document.phase = PhaseUpdated
	return updated, nil
}

// Reset rewinds every item back to its found state and returns the
// source text, original delimiters intact. Hooks that already fired
// stay fired.
func (document *Document) Reset() string {
	for _, item := range document.items {
		item.State = StateFound
		item.Compiled = ""
		item.Markup = ""
	}

	if len(document.items) > 0 || document.source != "" {
		document.phase = PhaseFound
	} else {
		document.phase = PhaseInitialized
	}

	return document.source
}

func (document *Document) Items() []*Item {
	return document.items
}

func (document *Document) Phase() Phase {
	return document.phase
}

func (document *Document) Source() string {
	return document.source
}

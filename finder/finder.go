package finder

import (
	"regexp"
	"strings"

	"github.com/kovetskiy/jax/config"
	"github.com/kovetskiy/jax/schema"
	"github.com/kovetskiy/jax/types"
)

var reRef = regexp.MustCompile(`^\\(eq)?ref\{[^}]*\}`)

var unescaper = strings.NewReplacer(`\\`, `\`, `\$`, `$`)

// Finder locates configured math spans in text. It is compiled once
// from a resolved configuration and is safe for concurrent use.
type Finder struct {
	config       *config.Configuration
	escapes      bool
	environments bool
	refs         bool
	skipTags     map[string]struct{}
	ignoreClass  string
	processClass string
}

// New compiles a finder over the configuration's delimiter declarations
// and processing flags.
func New(cfg *config.Configuration) *Finder {
	version := cfg.Version()
	input := version.InputNamespace()

	skip := map[string]struct{}{}
	for _, tag := range cfg.GetStrings(skipTagsPath(version)) {
		skip[strings.ToLower(tag)] = struct{}{}
	}

	return &Finder{
		config:       cfg,
		escapes:      cfg.GetBool(input + ".processEscapes"),
		environments: cfg.GetBool(input + ".processEnvironments"),
		refs:         cfg.GetBool(input + ".processRefs"),
		skipTags:     skip,
		ignoreClass:  cfg.GetString(classPath(version, "ignore")),
		processClass: cfg.GetString(classPath(version, "process")),
	}
}

func skipTagsPath(version schema.Version) string {
	if version == schema.Legacy {
		return "tex2jax.skipTags"
	}
	return "options.skipHtmlTags"
}

func classPath(version schema.Version, which string) string {
	if version == schema.Legacy {
		return "tex2jax." + which + "Class"
	}
	return "options." + which + "HtmlClass"
}

// FindString scans text in a single left-to-right pass and returns the
// math spans it contains, ordered by start offset. At every position
// escapes are honored first, then environments and references, then
// display delimiters, then inline ones, so a "$$" opener is never
// misread as two inline "$" in a row.
func (finder *Finder) FindString(text string) []types.MathItem {
	var items []types.MathItem

	pos := 0
	for pos < len(text) {
		if finder.escapes && text[pos] == '\\' && pos+1 < len(text) {
			next := text[pos+1]
			if next == '\\' || next == '$' {
				pos += 2
				continue
			}
		}

		if finder.environments {
			if item, ok := matchEnvironment(text, pos); ok {
				items = append(items, item)
				pos = item.End
				continue
			}
		}

		if finder.refs {
			if item, ok := matchRef(text, pos); ok {
				items = append(items, item)
				pos = item.End
				continue
			}
		}

		if item, ok := finder.matchDelimited(text, pos, types.ModeDisplay); ok {
			items = append(items, item)
			pos = item.End
			continue
		}

		if item, ok := finder.matchDelimited(text, pos, types.ModeInline); ok {
			items = append(items, item)
			pos = item.End
			continue
		}

		pos++
	}
	return items
}

// Unescape resolves the escape sequences the finder skips over, for
// callers splicing scanned text back into a document.
func (finder *Finder) Unescape(text string) string {
	if !finder.escapes {
		return text
	}
	return unescaper.Replace(text)
}

func (finder *Finder) matchDelimited(
	text string,
	pos int,
	mode types.Mode,
) (types.MathItem, bool) {
	match, ok := finder.config.Match(text, pos, mode)
	if !ok {
		return types.MathItem{}, false
	}

	closeAt := finder.findClose(text, match.End, match.Pair.Close)
	if closeAt < 0 {
		return types.MathItem{}, false
	}

	return types.MathItem{
		Equation: text[match.End:closeAt],
		Mode:     mode,
		Start:    pos,
		End:      closeAt + len(match.Pair.Close),
		Delim:    match.Pair,
	}, true
}

// findClose locates the close marker. With escape processing on,
// backslash pairs are consumed first, so "\$" never closes a span and
// "\\$" does. Markers that themselves begin with a backslash are taken
// literally.
func (finder *Finder) findClose(text string, from int, close string) int {
	pos := from
	for pos < len(text) {
		if finder.escapes && close[0] != '\\' &&
			text[pos] == '\\' && pos+1 < len(text) {
			pos += 2
			continue
		}

		if strings.HasPrefix(text[pos:], close) {
			return pos
		}
		pos++
	}
	return -1
}

// matchEnvironment recognizes \begin{name}...\end{name} blocks. The
// whole block, markers included, becomes the equation of a display
// item, so the engine receives the environment as written.
func matchEnvironment(text string, pos int) (types.MathItem, bool) {
	const begin = `\begin{`

	if !strings.HasPrefix(text[pos:], begin) {
		return types.MathItem{}, false
	}

	nameEnd := strings.IndexByte(text[pos+len(begin):], '}')
	if nameEnd < 0 {
		return types.MathItem{}, false
	}

	name := text[pos+len(begin) : pos+len(begin)+nameEnd]
	closing := `\end{` + name + `}`

	idx := strings.Index(text[pos:], closing)
	if idx < 0 {
		return types.MathItem{}, false
	}

	end := pos + idx + len(closing)
	return types.MathItem{
		Equation: text[pos:end],
		Mode:     types.ModeDisplay,
		Start:    pos,
		End:      end,
	}, true
}

func matchRef(text string, pos int) (types.MathItem, bool) {
	ref := reRef.FindString(text[pos:])
	if ref == "" {
		return types.MathItem{}, false
	}
	return types.MathItem{
		Equation: ref,
		Mode:     types.ModeInline,
		Start:    pos,
		End:      pos + len(ref),
	}, true
}

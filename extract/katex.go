package extract

import (
	"regexp"
	"strings"

	"github.com/reconquest/regexputil-go"
)

var (
	// greedy capture: markers like "\\]" put ] bytes inside the list,
	// so the list ends at the last bracket, not the first
	reKatexDelimiters = regexp.MustCompile(
		`(?s)delimiters\s*:\s*\[(?P<list>.*)\]`,
	)
	reKatexDelimiter = regexp.MustCompile(
		`\{\s*left\s*:\s*['"](?P<left>.+?)['"]\s*,` +
			`\s*right\s*:\s*['"](?P<right>.+?)['"]\s*` +
			`(?:,\s*display\s*:\s*(?P<display>true|false))?\s*\}`,
	)
	reKatexThrow = regexp.MustCompile(
		`throwOnError\s*:\s*(?P<value>true|false)`,
	)
	reKatexColor = regexp.MustCompile(
		`errorColor\s*:\s*['"](?P<value>.+?)['"]`,
	)
	reKatexIgnored = regexp.MustCompile(
		`(?s)ignoredTags\s*:\s*\[(?P<list>.*?)\]`,
	)
	reQuotedWord = regexp.MustCompile(
		`['"](?P<value>[^'"]*)['"]`,
	)
)

// katexOverrides translates a renderMathInElement call into the option
// namespaces the resolver understands. Delimiter objects become the
// inline and display pair lists, ignoredTags becomes the skip list;
// rendering options without a slot ride along in the options namespace.
func katexOverrides(script string) map[string]any {
	tex := map[string]any{}

	inline, display := katexDelimiters(script)
	if len(inline) > 0 {
		tex["inlineMath"] = inline
	}
	if len(display) > 0 {
		tex["displayMath"] = display
	}

	options := map[string]any{}

	if groups := reKatexThrow.FindStringSubmatch(script); groups != nil {
		value := regexputil.Subexp(reKatexThrow, groups, "value")
		options["throwOnError"] = value == "true"
	}

	if groups := reKatexColor.FindStringSubmatch(script); groups != nil {
		options["errorColor"] = regexputil.Subexp(reKatexColor, groups, "value")
	}

	if groups := reKatexIgnored.FindStringSubmatch(script); groups != nil {
		list := regexputil.Subexp(reKatexIgnored, groups, "list")

		var tags []any
		for _, quoted := range reQuotedWord.FindAllStringSubmatch(list, -1) {
			tags = append(tags, regexputil.Subexp(reQuotedWord, quoted, "value"))
		}

		if len(tags) > 0 {
			options["skipHtmlTags"] = tags
		}
	}

	overrides := map[string]any{}
	if len(tex) > 0 {
		overrides["tex"] = tex
	}
	if len(options) > 0 {
		overrides["options"] = options
	}

	return overrides
}

// katexDelimiters splits the delimiters option into inline and display
// pair lists, keeping declaration order within each mode. A call
// without a delimiters option gets the auto-render defaults.
func katexDelimiters(script string) (inline, display []any) {
	list := ""
	if groups := reKatexDelimiters.FindStringSubmatch(script); groups != nil {
		list = regexputil.Subexp(reKatexDelimiters, groups, "list")
	}

	for _, groups := range reKatexDelimiter.FindAllStringSubmatch(list, -1) {
		var (
			left  = unescapeMarker(regexputil.Subexp(reKatexDelimiter, groups, "left"))
			right = unescapeMarker(regexputil.Subexp(reKatexDelimiter, groups, "right"))
		)

		if regexputil.Subexp(reKatexDelimiter, groups, "display") == "true" {
			display = append(display, []any{left, right})
		} else {
			inline = append(inline, []any{left, right})
		}
	}

	if len(inline) == 0 && len(display) == 0 {
		inline = []any{
			[]any{"$", "$"},
			[]any{`\(`, `\)`},
		}
		display = []any{
			[]any{"$$", "$$"},
			[]any{`\[`, `\]`},
		}
	}

	return inline, display
}

// unescapeMarker collapses the doubled backslashes a script source
// carries, so that \\( in the page means the \( marker.
func unescapeMarker(marker string) string {
	return strings.ReplaceAll(marker, `\\`, `\`)
}

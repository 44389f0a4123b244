package config

import (
	"strings"

	"github.com/kovetskiy/jax/types"
)

// DelimiterMatch reports which pair opened a math span and the offset
// just past the open marker, where the close-marker search starts.
type DelimiterMatch struct {
	Pair types.DelimiterPair
	End  int
}

// Match tries each of the mode's delimiter pairs, in declaration order,
// for a prefix match of the open marker at pos. First match wins; the
// sequence is never reordered, so a caller wanting "$$" preferred over
// "$" declares it first, the way the built-in defaults do.
func (config *Configuration) Match(
	text string,
	pos int,
	mode types.Mode,
) (DelimiterMatch, bool) {
	if pos < 0 || pos > len(text) {
		return DelimiterMatch{}, false
	}

	pairs := config.display
	if mode == types.ModeInline {
		pairs = config.inline
	}

	for _, pair := range pairs {
		if strings.HasPrefix(text[pos:], pair.Open) {
			return DelimiterMatch{Pair: pair, End: pos + len(pair.Open)}, true
		}
	}
	return DelimiterMatch{}, false
}

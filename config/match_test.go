package config

import (
	"testing"

	"github.com/kovetskiy/jax/schema"
	"github.com/kovetskiy/jax/types"
	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	resolved, err := Resolve(schema.Current, map[string]any{
		"tex": map[string]any{
			"inlineMath": [][]string{{"$", "$"}, {`\(`, `\)`}},
		},
	})
	assert.NoError(t, err)

	tests := map[string]struct {
		text     string
		pos      int
		mode     types.Mode
		wantPair types.DelimiterPair
		wantEnd  int
		wantOK   bool
	}{
		"display dollars": {
			text: "$$x$$", pos: 0, mode: types.ModeDisplay,
			wantPair: types.DelimiterPair{Open: "$$", Close: "$$"},
			wantEnd:  2, wantOK: true,
		},
		"display brackets": {
			text: `\[x\]`, pos: 0, mode: types.ModeDisplay,
			wantPair: types.DelimiterPair{Open: `\[`, Close: `\]`},
			wantEnd:  2, wantOK: true,
		},
		"inline dollar": {
			text: "$x$", pos: 0, mode: types.ModeInline,
			wantPair: types.DelimiterPair{Open: "$", Close: "$"},
			wantEnd:  1, wantOK: true,
		},
		"inline parens": {
			text: `\(x\)`, pos: 0, mode: types.ModeInline,
			wantPair: types.DelimiterPair{Open: `\(`, Close: `\)`},
			wantEnd:  2, wantOK: true,
		},
		"mid-text": {
			text: "see $$x$$", pos: 4, mode: types.ModeDisplay,
			wantPair: types.DelimiterPair{Open: "$$", Close: "$$"},
			wantEnd:  6, wantOK: true,
		},
		"no delimiter at position": {
			text: "plain text", pos: 0, mode: types.ModeInline,
			wantOK: false,
		},
		"position past the end": {
			text: "$x$", pos: 10, mode: types.ModeInline,
			wantOK: false,
		},
		"negative position": {
			text: "$x$", pos: -1, mode: types.ModeInline,
			wantOK: false,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			match, ok := resolved.Match(tt.text, tt.pos, tt.mode)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantPair, match.Pair)
				assert.Equal(t, tt.wantEnd, match.End)
			}
		})
	}
}

func TestMatchFollowsDeclarationOrderWithoutSorting(t *testing.T) {
	// "$" deliberately declared before "$$": the shorter pair wins,
	// because the sequence is taken as declared
	resolved, err := Resolve(schema.Current, map[string]any{
		"tex": map[string]any{
			"displayMath": [][]string{{"$", "$"}, {"$$", "$$"}},
		},
	})
	assert.NoError(t, err)

	match, ok := resolved.Match("$$x$$", 0, types.ModeDisplay)
	assert.True(t, ok)
	assert.Equal(t, types.DelimiterPair{Open: "$", Close: "$"}, match.Pair)
	assert.Equal(t, 1, match.End)
}

func TestMatchDefaultsPreferLongDisplayDelimiters(t *testing.T) {
	resolved, err := Resolve(schema.Legacy, nil)
	assert.NoError(t, err)

	// with the stock ordering, "$$" reads as one display opener, not
	// as two inline "$" in a row
	match, ok := resolved.Match("$$E=mc^2$$", 0, types.ModeDisplay)
	assert.True(t, ok)
	assert.Equal(t, types.DelimiterPair{Open: "$$", Close: "$$"}, match.Pair)
	assert.Equal(t, 2, match.End)

	match, ok = resolved.Match("$x$", 0, types.ModeInline)
	assert.True(t, ok)
	assert.Equal(t, types.DelimiterPair{Open: "$", Close: "$"}, match.Pair)
	assert.Equal(t, 1, match.End)
}

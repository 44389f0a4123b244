package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJsonify(t *testing.T) {
	tests := map[string]struct {
		object   string
		expected string
	}{
		"bare keys and single quotes": {
			`{a: 1, b: 'x'}`,
			`{"a": 1, "b": "x"}`,
		},
		"nested pairs": {
			`{tex: {inlineMath: [['$', '$'], ['\\(', '\\)']]}}`,
			`{"tex": {"inlineMath": [["$", "$"], ["\\(", "\\)"]]}}`,
		},
		"trailing comma": {
			`{a: 1,}`,
			`{"a": 1}`,
		},
		"line comment": {
			"{a: 1, // note\nb: 2}",
			"{\"a\": 1, \n\"b\": 2}",
		},
		"block comment": {
			`{a: 1 /* note */}`,
			`{"a": 1 }`,
		},
		"function member in the middle": {
			`{ready: function() { go(); }, a: 1}`,
			`{ "a": 1}`,
		},
		"function member at the end": {
			`{a: 1, ready: function() {}}`,
			`{"a": 1}`,
		},
		"arrow function member": {
			`{ready: () => init(), a: true}`,
			`{ "a": true}`,
		},
		"identifier reference member": {
			`{a: undefined, b: 2}`,
			`{ "b": 2}`,
		},
		"scientific notation": {
			`{scale: 1.5e2}`,
			`{"scale": 1.5e2}`,
		},
		"double quote inside single quotes": {
			`{title: 'say "hi"'}`,
			`{"title": "say \"hi\""}`,
		},
		"booleans and null": {
			`{a: true, b: false, c: null}`,
			`{"a": true, "b": false, "c": null}`,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expected, jsonify(test.object))
		})
	}
}

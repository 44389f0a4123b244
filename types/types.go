package types

import "fmt"

// Mode selects which delimiter sequence applies to a math span.
type Mode string

const (
	ModeInline  Mode = "inline"
	ModeDisplay Mode = "display"
)

func ParseMode(raw string) (Mode, error) {
	switch Mode(raw) {
	case ModeInline:
		return ModeInline, nil
	case ModeDisplay:
		return ModeDisplay, nil
	}
	return "", fmt.Errorf("unknown render mode: %s", raw)
}

// DelimiterPair is an ordered pair of markers bounding a math span.
type DelimiterPair struct {
	Open  string
	Close string
}

func (pair DelimiterPair) String() string {
	return pair.Open + "..." + pair.Close
}

// Wrap puts the pair's markers back around an equation body.
func (pair DelimiterPair) Wrap(equation string) string {
	return pair.Open + equation + pair.Close
}

// MathItem is one math span located in source text. Start and End are
// byte offsets into the scanned text and include the delimiters; Equation
// holds the body between them.
type MathItem struct {
	Equation string
	Mode     Mode
	Start    int
	End      int
	Delim    DelimiterPair
}

func (item MathItem) Display() bool {
	return item.Mode == ModeDisplay
}

// Source reconstructs the span as it appeared in the scanned text.
func (item MathItem) Source() string {
	return item.Delim.Wrap(item.Equation)
}

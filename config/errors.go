package config

import (
	"errors"
	"fmt"

	"github.com/kovetskiy/jax/schema"
	"github.com/kovetskiy/jax/types"
)

// Resolution failures unwrap to one of these sentinels, so callers can
// branch with errors.Is without matching message text.
var (
	ErrInvalidDelimiters = errors.New("invalid delimiter configuration")
	ErrInvalidScale      = errors.New("invalid scale configuration")
	ErrInvalidHook       = errors.New("invalid lifecycle hook")
	ErrSchemaMismatch    = errors.New("schema mismatch")
)

// DelimiterError reports a delimiter-pair sequence violating the
// distinct/non-empty contract for one render mode.
type DelimiterError struct {
	Mode   types.Mode
	Pair   types.DelimiterPair
	Reason string
}

func (err *DelimiterError) Error() string {
	return fmt.Sprintf("%s delimiters: %s", err.Mode, err.Reason)
}

func (err *DelimiterError) Unwrap() error {
	return ErrInvalidDelimiters
}

// ScaleError reports scale-like numbers violating 0 < min <= scale
// within one output namespace.
type ScaleError struct {
	Namespace string
	Scale     float64
	MinScale  float64
}

func (err *ScaleError) Error() string {
	return fmt.Sprintf(
		"%s: scale %v with minimum %v violates 0 < min <= scale",
		err.Namespace, err.Scale, err.MinScale,
	)
}

func (err *ScaleError) Unwrap() error {
	return ErrInvalidScale
}

// HookError reports a lifecycle hook bound to something other than a
// zero-argument function.
type HookError struct {
	Name  string
	Value any
}

func (err *HookError) Error() string {
	return fmt.Sprintf(
		"hook %q: expected zero-argument function, got %T",
		err.Name, err.Value,
	)
}

func (err *HookError) Unwrap() error {
	return ErrInvalidHook
}

// SchemaError reports a wrong value shape for a modeled key, addressed
// by dotted path.
type SchemaError struct {
	Path  string
	Want  schema.Kind
	Value any
}

func (err *SchemaError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %T", err.Path, err.Want, err.Value)
}

func (err *SchemaError) Unwrap() error {
	return ErrSchemaMismatch
}

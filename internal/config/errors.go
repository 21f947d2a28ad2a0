package config

import "fmt"

// MissingFieldError reports a required field that no layer supplied and that
// has no built-in default.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing configuration: no layer supplies %q and it has no default", e.Field)
}

// TypeError reports a layer value that could not be coerced to the field's
// declared kind. Layer names the offending source so the bad value can be
// located without re-running.
type TypeError struct {
	Field string
	Layer string
	Value string
	Err   error
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("configuration type error: field %q from layer %q: cannot coerce %q: %v",
		e.Field, e.Layer, e.Value, e.Err)
}

func (e *TypeError) Unwrap() error { return e.Err }

// PayoutFormatError reports a payout value that is not a two-element ratio.
type PayoutFormatError struct {
	Value string
}

func (e *PayoutFormatError) Error() string {
	return fmt.Sprintf("invalid payout %q: expected a two-element ratio like \"(3,2)\" or \"3:2\"", e.Value)
}

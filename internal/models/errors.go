// internal/models/errors.go
package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput marks caller mistakes: missing fields or values outside a closed enum.
	ErrInvalidInput = errors.New("invalid input")
	// ErrLookupGap marks a static table that lacks an expected combination.
	ErrLookupGap = errors.New("lookup gap")
)

type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

// InputErrors aggregates every offending field of one validation pass.
type InputErrors []*InputError

func (es InputErrors) Error() string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = e.Field + ": " + e.Reason
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (es InputErrors) Unwrap() error { return ErrInvalidInput }

// Fields returns the names of the offending fields in validation order.
func (es InputErrors) Fields() []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.Field
	}
	return out
}

type LookupError struct {
	Table string
	Key   string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lookup gap: table %s has no entry for %s", e.Table, e.Key)
}

func (e *LookupError) Unwrap() error { return ErrLookupGap }

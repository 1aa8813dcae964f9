// Package levenshtein defines core types and configuration options
// for the edit-distance algorithms of fuzzystrmatch.
//
// Two recurrences are available behind one call surface:
//
//	Simple      - character-aware Levenshtein distance (insert, delete,
//	              substitute), the default. Multi-byte characters are
//	              compared as whole characters and charged a single
//	              substitution.
//	Transposing - byte-oriented Damerau-Levenshtein distance that also
//	              counts the swap of two adjacent bytes as one operation.
//
// Options:
//
//	Costs     - per-operation integer costs (Ins, Del, Sub, Trans).
//	Algorithm - Simple (default) or Transposing.
//	CharLen   - character-boundary capability; defaults to UTF-8.
//
// Errors (sentinel):
//
//	ErrInputTooLong     - either input exceeds MaxChars characters.
//	ErrNegativeCost     - a supplied cost is negative.
//	ErrUnknownAlgorithm - the Algorithm value is not a known variant.
package levenshtein

import (
	"errors"
	"fmt"
)

// MaxChars is the maximum number of characters accepted per input.
// Longer inputs are rejected with ErrInputTooLong before any allocation.
const MaxChars = 255

// Sentinel errors returned by the distance functions.
var (
	// ErrInputTooLong indicates that an input exceeds MaxChars characters.
	ErrInputTooLong = errors.New("levenshtein: input exceeds maximum character length")

	// ErrNegativeCost indicates that a negative operation cost was
	// supplied; the recurrences require non-negative costs.
	ErrNegativeCost = errors.New("levenshtein: operation costs must be non-negative")

	// ErrUnknownAlgorithm indicates an Algorithm value outside the known variants.
	ErrUnknownAlgorithm = errors.New("levenshtein: unknown algorithm variant")
)

// Algorithm selects which edit-distance recurrence is applied.
//
// The two variants are intentionally separate metrics and are not
// reconciled: Simple walks characters and has no transposition
// primitive; Transposing walks raw bytes and has one.
type Algorithm int

const (
	// Simple is the character-aware insert/delete/substitute recurrence.
	Simple Algorithm = iota

	// Transposing is the byte-oriented recurrence that additionally counts
	// an adjacent-byte swap as a single operation.
	Transposing
)

// Costs is the per-operation cost vector applied by the recurrences.
// Zero costs are accepted; negative costs are rejected (ErrNegativeCost).
//
// Simple has no transposition primitive and ignores Trans; the field is
// accepted uniformly so one vector configures either algorithm.
type Costs struct {
	Ins   int // cost of inserting one unit
	Del   int // cost of deleting one unit
	Sub   int // cost of substituting one unit
	Trans int // cost of transposing two adjacent units (Transposing only)
}

// DefaultCosts returns the classic unit-cost vector (1, 1, 1, 1).
func DefaultCosts() Costs {
	return Costs{Ins: 1, Del: 1, Sub: 1, Trans: 1}
}

// CharLenFunc reports the byte width of the first character of s.
// It is called only on non-empty remainders of an input, never on an
// empty string. Reported widths are clamped by the walker to stay
// inside the buffer, so an inconsistent capability cannot stall a walk
// or push a cursor out of bounds.
type CharLenFunc func(s string) int

// Option configures a distance computation via functional arguments.
// If an Option is invalid (e.g. a negative cost), the violation is
// recorded internally and surfaced when the distance function is invoked.
type Option func(*Options)

// Options holds the parameters of one distance computation.
type Options struct {
	// Costs carries the four per-operation costs.
	Costs Costs

	// Algorithm picks the recurrence; Simple by default.
	Algorithm Algorithm

	// CharLen locates character boundaries; UTF-8 by default.
	CharLen CharLenFunc

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - unit costs (1, 1, 1, 1)
//   - the Simple algorithm
//   - UTF-8 character boundaries
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Costs:     DefaultCosts(),
		Algorithm: Simple,
		CharLen:   utf8CharLen,
		err:       nil,
	}
}

// WithCosts sets all four operation costs at once.
// Any negative value is invalid and surfaces as ErrNegativeCost.
func WithCosts(ins, del, sub, trans int) Option {
	return func(o *Options) {
		if ins < 0 || del < 0 || sub < 0 || trans < 0 {
			o.err = fmt.Errorf("%w: got (%d, %d, %d, %d)", ErrNegativeCost, ins, del, sub, trans)
			return
		}
		o.Costs = Costs{Ins: ins, Del: del, Sub: sub, Trans: trans}
	}
}

// WithAlgorithm selects the recurrence variant.
// Values outside the known variants surface as ErrUnknownAlgorithm.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		if a != Simple && a != Transposing {
			o.err = fmt.Errorf("%w: %d", ErrUnknownAlgorithm, a)
			return
		}
		o.Algorithm = a
	}
}

// WithCharLen installs a custom character-boundary capability, for
// callers whose buffers are not UTF-8. A nil fn keeps the default.
func WithCharLen(fn CharLenFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.CharLen = fn
		}
	}
}

package span

import (
	"errors"
	"fmt"
)

// Sentinel errors for fixed-point generation.
var (
	// ErrSeedNotInCarrier is returned when a seed element does not belong to
	// the group it is supposed to generate inside.
	ErrSeedNotInCarrier = errors.New("span: seed element not in carrier")

	// ErrCarrierEscape is returned when closure derives an element outside
	// the source carrier, i.e. the source group was not closed to begin with.
	ErrCarrierEscape = errors.New("span: derived element escapes carrier")

	// ErrMappingOutsideCarrier is returned when a Mapping references an
	// element outside the domain or codomain carrier.
	ErrMappingOutsideCarrier = errors.New("span: mapping element not in carrier")

	// ErrInconsistentMapping is returned when two derivations assign
	// different images to the same element: the partial specification is
	// self-contradictory. Distinct from any axiom violation by design.
	ErrInconsistentMapping = errors.New("span: inconsistent generator mapping")

	// ErrElementLimit is returned when closure exceeds the WithMaxElements
	// bound.
	ErrElementLimit = errors.New("span: element limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("span: invalid option supplied")
)

// Option configures fixed-point generation via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the generating function is invoked.
type Option func(*Options)

// Options holds parameters for Generated and GeneratedHomomorphism.
type Options struct {
	// MaxElements, if > 0, aborts closure once more than this many elements
	// have been discovered. A value of 0 disables the guard; closure is then
	// bounded by the carrier size alone. An engineering safeguard, not part
	// of the mathematical contract.
	MaxElements int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the guard disabled.
func DefaultOptions() Options {
	return Options{MaxElements: 0, err: nil}
}

// WithMaxElements bounds the number of elements closure may discover.
//
//	n > 0:  abort with ErrElementLimit past n elements
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxElements(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxElements cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.MaxElements = 0
		default:
			o.MaxElements = n
		}
	}
}

// Mapping is one pair of a partial homomorphism specification: From in the
// domain carrier is sent to To in the codomain carrier.
type Mapping[A, B any] struct {
	From A
	To   B
}

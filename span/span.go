package span

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/core"
)

// Generated computes the subgroup of g generated by seed: the smallest
// subset of g's carrier containing the identity and every seed element,
// closed under multiplication and inversion. The result reuses g's
// operations, restricted to the closed carrier.
//
// Closure runs as a worklist over an index-addressed slice: the i-th
// element, once reached, contributes its inverse and its products (in both
// orders) with every element up to and including itself; newly discovered
// elements are appended and take their own turn. Canonical order of the
// result: identity, seeds in given order, then discovery order.
//
// If g itself satisfies the group laws the result does too; closure holds
// by construction either way and can be confirmed with axioms.CheckGroup.
//
// Returns ErrSeedNotInCarrier if a seed is outside g's carrier,
// ErrCarrierEscape if a product or inverse leaves the carrier (g was not
// closed), ErrElementLimit if the WithMaxElements guard trips, or
// ErrOptionViolation for invalid options.
// Complexity: O(k³) element operations for a result of size k.
func Generated[T any](g core.Group[T], seed []T, opts ...Option) (core.Group[T], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return core.Group[T]{}, o.err
	}

	carrier := g.Carrier()
	for _, s := range seed {
		if !carrier.Contains(s) {
			return core.Group[T]{}, fmt.Errorf("%w: %v", ErrSeedNotInCarrier, s)
		}
	}

	elems := make([]T, 0, len(seed)+1)
	// grow appends e if unseen, enforcing the carrier and the size guard.
	grow := func(e T) error {
		for _, have := range elems {
			if g.Eq(have, e) {
				return nil
			}
		}
		if !carrier.Contains(e) {
			return fmt.Errorf("%w: %v", ErrCarrierEscape, e)
		}
		elems = append(elems, e)
		if o.MaxElements > 0 && len(elems) > o.MaxElements {
			return fmt.Errorf("%w: more than %d elements", ErrElementLimit, o.MaxElements)
		}

		return nil
	}

	if err := grow(g.Identity()); err != nil {
		return core.Group[T]{}, err
	}
	for _, s := range seed {
		if err := grow(s); err != nil {
			return core.Group[T]{}, err
		}
	}

	// Worklist sweep: elems only grows, so every pair is eventually covered
	// at the turn of its later element.
	for i := 0; i < len(elems); i++ {
		if err := grow(g.Inv(elems[i])); err != nil {
			return core.Group[T]{}, err
		}
		for j := 0; j <= i; j++ {
			if err := grow(g.Mul(elems[i], elems[j])); err != nil {
				return core.Group[T]{}, err
			}
			if err := grow(g.Mul(elems[j], elems[i])); err != nil {
				return core.Group[T]{}, err
			}
		}
	}

	sub, err := core.NewSet(carrier.Equality(), elems...)
	if err != nil {
		return core.Group[T]{}, err
	}

	return core.New(sub, g.Mul, g.Inv, g.Identity())
}

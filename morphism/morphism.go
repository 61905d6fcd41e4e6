package morphism

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/core"
)

// Kernel returns the subgroup of phi's domain that maps onto the codomain
// identity, with the domain's operations restricted to it. Carrier order
// follows the domain's canonical order.
//
// For any valid homomorphism the kernel contains the domain identity and is
// a normal subgroup of the domain. If phi is not a homomorphism the
// filtered carrier may miss the identity; that surfaces as
// core.ErrIdentityNotInCarrier.
// Complexity: O(n) map applications over the domain.
func Kernel[A, B any](phi core.Homomorphism[A, B]) (core.Group[A], error) {
	dom := phi.Domain()
	cod := phi.Codomain()

	var members []A
	for _, a := range dom.Carrier().Elems() {
		if cod.Eq(phi.Map(a), cod.Identity()) {
			members = append(members, a)
		}
	}

	carrier, err := core.NewSet(dom.Carrier().Equality(), members...)
	if err != nil {
		return core.Group[A]{}, fmt.Errorf("morphism: kernel carrier: %w", err)
	}

	return core.New(carrier, dom.Mul, dom.Inv, dom.Identity())
}

// Image returns the subgroup of phi's codomain actually hit by the map,
// with the codomain's operations restricted to it. Carrier order is the
// order in which images first appear while sweeping the domain canonically.
//
// If phi is not a homomorphism the image may miss the codomain identity;
// that surfaces as core.ErrIdentityNotInCarrier.
// Complexity: O(n²) comparisons for deduplication.
func Image[A, B any](phi core.Homomorphism[A, B]) (core.Group[B], error) {
	dom := phi.Domain()
	cod := phi.Codomain()

	hit := make([]B, 0, dom.Order())
	for _, a := range dom.Carrier().Elems() {
		hit = append(hit, phi.Map(a))
	}

	carrier, err := core.NewSet(cod.Carrier().Equality(), hit...)
	if err != nil {
		return core.Group[B]{}, fmt.Errorf("morphism: image carrier: %w", err)
	}

	return core.New(carrier, cod.Mul, cod.Inv, cod.Identity())
}

// Entry is one row of a mapping table: From in the domain, To = map(From).
type Entry[A, B any] struct {
	From A
	To   B
}

// Table lists (a, map(a)) for every domain element in canonical order.
// A debug and rendering view; not used by any derivation.
func Table[A, B any](phi core.Homomorphism[A, B]) []Entry[A, B] {
	elems := phi.Domain().Carrier().Elems()
	out := make([]Entry[A, B], len(elems))
	for i, a := range elems {
		out[i] = Entry[A, B]{From: a, To: phi.Map(a)}
	}

	return out
}

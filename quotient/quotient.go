package quotient

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlalg/core"
)

// ErrNotSubset is returned when the claimed subgroup's carrier is not
// contained in the containing group's carrier.
var ErrNotSubset = errors.New("quotient: subgroup carrier not contained in group carrier")

// Coset is a translate of a subgroup inside a containing group's carrier,
// tagged with the representative that produced it. Cosets compare by their
// underlying sets: two cosets with different representatives but the same
// elements are the same coset.
type Coset[T any] struct {
	set core.FiniteSet[T]
	rep T
}

// Set returns the coset's elements.
func (c Coset[T]) Set() core.FiniteSet[T] { return c.set }

// Rep returns the representative the coset was generated from.
func (c Coset[T]) Rep() T { return c.rep }

// String renders the coset as its representative and size, e.g. "1·H(3)".
func (c Coset[T]) String() string {
	return fmt.Sprintf("%v·H(%d)", c.rep, c.set.Len())
}

// ConjugateSet returns { a·s·a⁻¹ : s ∈ S }, in S's canonical order.
// Complexity: O(|S|) group operations plus deduplication.
func ConjugateSet[T any](g core.Group[T], a T, s core.FiniteSet[T]) core.FiniteSet[T] {
	inv := g.Inv(a)
	conj := make([]T, 0, s.Len())
	for _, e := range s.Elems() {
		conj = append(conj, g.Mul(g.Mul(a, e), inv))
	}
	out, _ := core.NewSet(g.Carrier().Equality(), conj...)

	return out
}

// CheckNormalSubgroupOf sweeps g's carrier in canonical order and returns a
// pointer to the first element a with a·H·a⁻¹ ≠ H, where H is h's carrier;
// nil means h is normal in g. Returns ErrNotSubset if H is not contained in
// g's carrier.
// Complexity: O(n·|H|²) group operations.
func CheckNormalSubgroupOf[T any](h, g core.Group[T]) (*T, error) {
	hs := h.Carrier()
	if !hs.SubsetOf(g.Carrier()) {
		return nil, ErrNotSubset
	}

	for _, a := range g.Carrier().Elems() {
		if !ConjugateSet(g, a, hs).Equal(hs) {
			witness := a
			return &witness, nil
		}
	}

	return nil, nil
}

// IsNormalSubgroupOf reports whether h is a normal subgroup of g.
// Returns ErrNotSubset if h's carrier is not contained in g's.
func IsNormalSubgroupOf[T any](h, g core.Group[T]) (bool, error) {
	w, err := CheckNormalSubgroupOf(h, g)
	if err != nil {
		return false, err
	}

	return w == nil, nil
}

// Cosets returns the distinct left cosets { a·H : a ∈ g.carrier }, ordered
// by the first representative producing each coset in g's canonical order.
// The cosets partition g's carrier whether or not h is normal.
// Returns ErrNotSubset if h's carrier is not contained in g's.
// Complexity: O(n·|H|) group operations plus set comparisons.
func Cosets[T any](g, h core.Group[T]) ([]Coset[T], error) {
	hs := h.Carrier()
	if !hs.SubsetOf(g.Carrier()) {
		return nil, ErrNotSubset
	}

	var out []Coset[T]
	for _, a := range g.Carrier().Elems() {
		c := leftCoset(g, a, hs)
		seen := false
		for _, have := range out {
			if have.set.Equal(c.set) {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, c)
		}
	}

	return out, nil
}

// leftCoset builds a·H tagged with representative a.
func leftCoset[T any](g core.Group[T], a T, hs core.FiniteSet[T]) Coset[T] {
	prods := make([]T, 0, hs.Len())
	for _, s := range hs.Elems() {
		prods = append(prods, g.Mul(a, s))
	}
	set, _ := core.NewSet(g.Carrier().Equality(), prods...)

	return Coset[T]{set: set, rep: a}
}

// Quotient constructs the structure g/h over the distinct left cosets.
//
// Multiplication of cosets C1, C2 is their element-wise product set
// { x·y : x ∈ C1, y ∈ C2 }, tagged with the product of the representatives;
// inversion is the element-wise inverse set; the identity is the coset of h
// itself. Coset equality is set equality.
//
// Normality of h is NOT checked. When h is normal in g every product set is
// exactly the coset of the representative product and the result satisfies
// all group laws. When h is not normal some product set is strictly larger
// than any coset, so the result fails axioms.CheckGroup with MulClosed and
// a pair of cosets as witness — the structure constructs either way and is
// diagnosed separately.
//
// Returns ErrNotSubset if h's carrier is not contained in g's.
// Complexity: construction O(n·|H|); each coset multiplication O(|H|²).
func Quotient[T any](g, h core.Group[T]) (core.Group[Coset[T]], error) {
	cs, err := Cosets(g, h)
	if err != nil {
		return core.Group[Coset[T]]{}, err
	}

	eq := func(a, b Coset[T]) bool { return a.set.Equal(b.set) }
	carrier, err := core.NewSet(eq, cs...)
	if err != nil {
		return core.Group[Coset[T]]{}, err
	}

	elemEq := g.Carrier().Equality()
	mul := func(a, b Coset[T]) Coset[T] {
		prods := make([]T, 0, a.set.Len()*b.set.Len())
		for _, x := range a.set.Elems() {
			for _, y := range b.set.Elems() {
				prods = append(prods, g.Mul(x, y))
			}
		}
		set, _ := core.NewSet(elemEq, prods...)

		return Coset[T]{set: set, rep: g.Mul(a.rep, b.rep)}
	}
	inv := func(a Coset[T]) Coset[T] {
		invs := make([]T, 0, a.set.Len())
		for _, x := range a.set.Elems() {
			invs = append(invs, g.Inv(x))
		}
		set, _ := core.NewSet(elemEq, invs...)

		return Coset[T]{set: set, rep: g.Inv(a.rep)}
	}

	// The identity coset is h's own carrier; its canonical representative is
	// the one Cosets discovered for it.
	identity := leftCoset(g, g.Identity(), h.Carrier())
	for _, c := range cs {
		if c.set.Equal(identity.set) {
			identity = c
			break
		}
	}

	return core.New(carrier, mul, inv, identity)
}

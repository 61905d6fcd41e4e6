package groups

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlalg/core"
	"github.com/katalvlaran/lvlalg/span"
)

// Sentinel errors for constructor arguments.
var (
	// ErrNonPositiveModulus indicates IntegersModN was called with n < 1.
	ErrNonPositiveModulus = errors.New("groups: modulus must be positive")

	// ErrDegreeOutOfRange indicates a permutation-group degree outside 1..8.
	ErrDegreeOutOfRange = errors.New("groups: degree out of range")
)

// MaxDegree caps symmetric and dihedral degrees; 8! = 40320 is the largest
// carrier brute-force verification handles comfortably.
const MaxDegree = 8

// IntegersModN returns the additive group ℤ/nℤ: carrier 0..n-1 in counting
// order, addition and negation mod n, identity 0.
// Returns ErrNonPositiveModulus for n < 1.
func IntegersModN(n int) (core.Group[int], error) {
	if n < 1 {
		return core.Group[int]{}, fmt.Errorf("%w: %d", ErrNonPositiveModulus, n)
	}

	elems := make([]int, n)
	for i := range elems {
		elems[i] = i
	}

	return core.New(
		core.Of(elems...),
		func(a, b int) int { return (a + b) % n },
		func(a int) int { return (n - a) % n },
		0,
	)
}

// SymmetricGroup returns Sₙ: all permutations of {1..n} in lexicographic
// one-line order, composition as multiplication, the identity permutation
// as identity.
// Returns ErrDegreeOutOfRange for n < 1 or n > MaxDegree.
func SymmetricGroup(n int) (core.Group[Perm], error) {
	if n < 1 || n > MaxDegree {
		return core.Group[Perm]{}, fmt.Errorf("%w: %d not in 1..%d", ErrDegreeOutOfRange, n, MaxDegree)
	}

	carrier, err := core.NewSet(permEq, allPerms(n)...)
	if err != nil {
		return core.Group[Perm]{}, err
	}

	return core.New(carrier, Perm.Compose, Perm.Inverse, IdentityPerm(n))
}

// DihedralGroup returns Dₙ as a subgroup of Sₙ: the closure of the n-cycle
// rotation (1 2 ... n) and the reversal reflection i ↦ n+1-i of a regular
// n-gon. For n ≥ 3 its order is 2n; degenerate degrees 1 and 2 yield the
// full (tiny) symmetric group. Canonical order follows span.Generated:
// identity, rotation, reflection, then discovery order.
// Returns ErrDegreeOutOfRange for n < 1 or n > MaxDegree.
func DihedralGroup(n int) (core.Group[Perm], error) {
	sym, err := SymmetricGroup(n)
	if err != nil {
		return core.Group[Perm]{}, err
	}

	rotation := make(Perm, n)
	reflection := make(Perm, n)
	for i := 0; i < n; i++ {
		// rotation sends i+1 to i+2, wrapping n back to 1
		rotation[i] = (i+1)%n + 1
		reflection[i] = n - i
	}

	return span.Generated(sym, []Perm{rotation, reflection})
}

// Pair is an element of a direct product: Left from the first factor,
// Right from the second.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// DirectProduct returns g × h with componentwise operations. The carrier is
// enumerated row-major: g's canonical order outer, h's inner.
func DirectProduct[A, B any](g core.Group[A], h core.Group[B]) (core.Group[Pair[A, B]], error) {
	pairs := make([]Pair[A, B], 0, g.Order()*h.Order())
	for _, a := range g.Carrier().Elems() {
		for _, b := range h.Carrier().Elems() {
			pairs = append(pairs, Pair[A, B]{Left: a, Right: b})
		}
	}

	eq := func(x, y Pair[A, B]) bool {
		return g.Eq(x.Left, y.Left) && h.Eq(x.Right, y.Right)
	}
	carrier, err := core.NewSet(eq, pairs...)
	if err != nil {
		return core.Group[Pair[A, B]]{}, err
	}

	mul := func(x, y Pair[A, B]) Pair[A, B] {
		return Pair[A, B]{Left: g.Mul(x.Left, y.Left), Right: h.Mul(x.Right, y.Right)}
	}
	inv := func(x Pair[A, B]) Pair[A, B] {
		return Pair[A, B]{Left: g.Inv(x.Left), Right: h.Inv(x.Right)}
	}

	return core.New(carrier, mul, inv, Pair[A, B]{Left: g.Identity(), Right: h.Identity()})
}

// IntegerRenaming returns the canonical isomorphism from g onto a group
// over {0..order-1}: element i of the renamed carrier stands for the i-th
// element of g's carrier, and the renamed operations are index lookups into
// g's. For a law-abiding g the result passes axioms.CheckMorphism and its
// codomain passes axioms.CheckGroup; for a non-closed g the renamed
// operations yield -1 where g's escape the carrier, so verification fails
// in the same places.
func IntegerRenaming[T any](g core.Group[T]) (core.Homomorphism[T, int], error) {
	carrier := g.Carrier()
	n := carrier.Len()

	names := make([]int, n)
	for i := range names {
		names[i] = i
	}

	mul := func(a, b int) int {
		if a < 0 || a >= n || b < 0 || b >= n {
			return -1
		}
		return carrier.IndexOf(g.Mul(carrier.At(a), carrier.At(b)))
	}
	inv := func(a int) int {
		if a < 0 || a >= n {
			return -1
		}
		return carrier.IndexOf(g.Inv(carrier.At(a)))
	}

	codomain, err := core.New(core.Of(names...), mul, inv, carrier.IndexOf(g.Identity()))
	if err != nil {
		return core.Homomorphism[T, int]{}, err
	}

	return core.NewHomomorphism(g, codomain, carrier.IndexOf)
}

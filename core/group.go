package core

import "errors"

// Sentinel errors for structure construction.
var (
	// ErrNilOperation indicates New was given a nil mul or inv function.
	ErrNilOperation = errors.New("core: group operation is nil")

	// ErrIdentityNotInCarrier indicates the claimed identity element is not
	// a member of the carrier set.
	ErrIdentityNotInCarrier = errors.New("core: identity not in carrier")
)

// Group is a finite algebraic structure: a carrier set plus multiplication,
// inversion, and a distinguished identity element, all carried as ordinary
// data. Two groups over the same element type are entirely independent
// values; there is no per-type dispatch anywhere.
//
// The only invariant enforced here is identity ∈ carrier. Whether the group
// laws actually hold is a question for axioms.CheckGroup — a Group value may
// well be "not a group", and that is by intent.
//
// A Group is immutable after construction; derivations (subgroups, kernels,
// quotients) build fresh values and never touch their source.
type Group[T any] struct {
	carrier  FiniteSet[T]
	mul      func(a, b T) T
	inv      func(a T) T
	identity T
}

// New assembles a Group from its parts.
// Returns ErrNilOperation if mul or inv is nil,
// ErrIdentityNotInCarrier if identity is not a member of carrier.
// Complexity: O(n) for the membership check.
func New[T any](carrier FiniteSet[T], mul func(a, b T) T, inv func(a T) T, identity T) (Group[T], error) {
	if mul == nil || inv == nil {
		return Group[T]{}, ErrNilOperation
	}
	if !carrier.Contains(identity) {
		return Group[T]{}, ErrIdentityNotInCarrier
	}

	return Group[T]{carrier: carrier, mul: mul, inv: inv, identity: identity}, nil
}

// Carrier returns the carrier set.
func (g Group[T]) Carrier() FiniteSet[T] { return g.carrier }

// Mul applies the group multiplication to a and b.
func (g Group[T]) Mul(a, b T) T { return g.mul(a, b) }

// Inv applies the group inversion to a.
func (g Group[T]) Inv(a T) T { return g.inv(a) }

// Identity returns the distinguished identity element.
func (g Group[T]) Identity() T { return g.identity }

// Order returns the carrier size.
func (g Group[T]) Order() int { return g.carrier.Len() }

// Contains reports whether e belongs to the carrier.
func (g Group[T]) Contains(e T) bool { return g.carrier.Contains(e) }

// Eq reports element equality under the carrier's equality relation.
func (g Group[T]) Eq(a, b T) bool { return g.carrier.Eq(a, b) }

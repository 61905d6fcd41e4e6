package core

import "errors"

// ErrNilEquality indicates NewSet was given a nil equality relation.
var ErrNilEquality = errors.New("core: equality relation is nil")

// FiniteSet is an ordered, duplicate-free collection of elements with an
// explicit equality relation.
//
// The element order is fixed at construction (first occurrence wins) and is
// the set's canonical order. It carries no semantic meaning; it exists so
// that exhaustive sweeps report the same witness on every run.
//
// The zero FiniteSet is empty and contains nothing.
type FiniteSet[T any] struct {
	elems []T
	eq    func(a, b T) bool
}

// NewSet builds a FiniteSet from elems under the given equality relation,
// dropping duplicates and keeping the first occurrence of each element.
// Returns ErrNilEquality if eq is nil.
// Complexity: O(n²) pairwise deduplication.
func NewSet[T any](eq func(a, b T) bool, elems ...T) (FiniteSet[T], error) {
	if eq == nil {
		return FiniteSet[T]{}, ErrNilEquality
	}
	s := FiniteSet[T]{eq: eq, elems: make([]T, 0, len(elems))}
	for _, e := range elems {
		if !s.Contains(e) {
			s.elems = append(s.elems, e)
		}
	}

	return s, nil
}

// Of builds a FiniteSet of comparable elements under ==, dropping duplicates
// and keeping first occurrences.
func Of[T comparable](elems ...T) FiniteSet[T] {
	s, _ := NewSet(func(a, b T) bool { return a == b }, elems...)
	return s
}

// Len reports the number of elements.
func (s FiniteSet[T]) Len() int { return len(s.elems) }

// At returns the i-th element in canonical order.
// Panics if i is out of range, as slice indexing does.
func (s FiniteSet[T]) At(i int) T { return s.elems[i] }

// Elems returns a copy of the elements in canonical order.
func (s FiniteSet[T]) Elems() []T {
	out := make([]T, len(s.elems))
	copy(out, s.elems)

	return out
}

// Eq reports whether a and b are equal under the set's equality relation.
// A zero set (nil relation) treats no two elements as equal.
func (s FiniteSet[T]) Eq(a, b T) bool {
	if s.eq == nil {
		return false
	}

	return s.eq(a, b)
}

// Equality returns the set's equality relation, for building derived sets
// over the same element type. Nil for the zero set.
func (s FiniteSet[T]) Equality() func(a, b T) bool { return s.eq }

// Contains reports whether e is a member of the set.
// Complexity: O(n) linear scan; fine at the carrier sizes lvlalg targets.
func (s FiniteSet[T]) Contains(e T) bool { return s.IndexOf(e) >= 0 }

// IndexOf returns the canonical-order index of e, or -1 if absent.
func (s FiniteSet[T]) IndexOf(e T) int {
	if s.eq == nil {
		return -1
	}
	for i, have := range s.elems {
		if s.eq(have, e) {
			return i
		}
	}

	return -1
}

// SubsetOf reports whether every element of s is a member of t.
// Membership is judged by t's equality relation.
func (s FiniteSet[T]) SubsetOf(t FiniteSet[T]) bool {
	for _, e := range s.elems {
		if !t.Contains(e) {
			return false
		}
	}

	return true
}

// Equal reports set equality with t: same size and mutual containment.
// Canonical order is ignored; {0,2} and {2,0} are equal.
func (s FiniteSet[T]) Equal(t FiniteSet[T]) bool {
	if len(s.elems) != len(t.elems) {
		return false
	}

	return s.SubsetOf(t) && t.SubsetOf(s)
}

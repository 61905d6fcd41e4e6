package core

import "errors"

// ErrNilMap indicates NewHomomorphism was given a nil mapping function.
var ErrNilMap = errors.New("core: homomorphism map is nil")

// Homomorphism is a mapping between the carriers of two groups, carried as
// plain data. Nothing about it is verified at construction: whether Map
// lands inside the codomain carrier and respects multiplication is checked
// on demand by axioms.CheckMorphism.
//
// Map is meaningful only on the domain carrier; its behavior elsewhere is
// unspecified.
type Homomorphism[A, B any] struct {
	domain   Group[A]
	codomain Group[B]
	mapFn    func(a A) B
}

// NewHomomorphism assembles a Homomorphism from its parts.
// Returns ErrNilMap if mapFn is nil.
func NewHomomorphism[A, B any](domain Group[A], codomain Group[B], mapFn func(a A) B) (Homomorphism[A, B], error) {
	if mapFn == nil {
		return Homomorphism[A, B]{}, ErrNilMap
	}

	return Homomorphism[A, B]{domain: domain, codomain: codomain, mapFn: mapFn}, nil
}

// Domain returns the domain group.
func (h Homomorphism[A, B]) Domain() Group[A] { return h.domain }

// Codomain returns the codomain group.
func (h Homomorphism[A, B]) Codomain() Group[B] { return h.codomain }

// Map applies the underlying mapping to a.
func (h Homomorphism[A, B]) Map(a A) B { return h.mapFn(a) }

package axioms

import "github.com/katalvlaran/lvlalg/core"

// CheckGroup sweeps all seven group laws over g's carrier and returns the
// first violation, or nil if g satisfies every law. Each law is swept over
// the entire carrier in canonical order before the next law is tried, so
// the reported witness is stable for a given g.
//
// Pure and side-effect free; safe on any Group value, however malformed.
// Complexity: O(n³) in the carrier size, dominated by associativity.
func CheckGroup[T any](g core.Group[T]) *Violation[T] {
	carrier := g.Carrier()
	elems := carrier.Elems()
	id := g.Identity()

	// 1. Multiplication closure.
	for _, a := range elems {
		for _, b := range elems {
			if !carrier.Contains(g.Mul(a, b)) {
				return &Violation[T]{Kind: MulClosed, Witness: []T{a, b}}
			}
		}
	}

	// 2. Inverse closure.
	for _, a := range elems {
		if !carrier.Contains(g.Inv(a)) {
			return &Violation[T]{Kind: InvClosed, Witness: []T{a}}
		}
	}

	// 3. Associativity.
	for _, a := range elems {
		for _, b := range elems {
			for _, c := range elems {
				if !g.Eq(g.Mul(g.Mul(a, b), c), g.Mul(a, g.Mul(b, c))) {
					return &Violation[T]{Kind: MulAssoc, Witness: []T{a, b, c}}
				}
			}
		}
	}

	// 4. Left identity.
	for _, a := range elems {
		if !g.Eq(g.Mul(id, a), a) {
			return &Violation[T]{Kind: IdLeftIdentity, Witness: []T{a}}
		}
	}

	// 5. Right identity.
	for _, a := range elems {
		if !g.Eq(g.Mul(a, id), a) {
			return &Violation[T]{Kind: IdRightIdentity, Witness: []T{a}}
		}
	}

	// 6. Left inverse.
	for _, a := range elems {
		if !g.Eq(g.Mul(g.Inv(a), a), id) {
			return &Violation[T]{Kind: InvLeftInverse, Witness: []T{a}}
		}
	}

	// 7. Right inverse.
	for _, a := range elems {
		if !g.Eq(g.Mul(a, g.Inv(a)), id) {
			return &Violation[T]{Kind: InvRightInverse, Witness: []T{a}}
		}
	}

	return nil
}

// CheckMorphism sweeps the morphism requirements over phi's domain and
// returns the first violation, or nil if phi is a homomorphism.
//
// Image membership is swept first (every map(a) must land inside the
// codomain carrier, witness (a)), then the homomorphism law over nested
// pairs in canonical order (witness (a, b)).
// Complexity: O(n²) in the domain size.
func CheckMorphism[A, B any](phi core.Homomorphism[A, B]) *MorphismViolation[A] {
	dom := phi.Domain()
	cod := phi.Codomain()
	elems := dom.Carrier().Elems()

	for _, a := range elems {
		if !cod.Contains(phi.Map(a)) {
			return &MorphismViolation[A]{Kind: ImageClosed, Witness: []A{a}}
		}
	}

	for _, a := range elems {
		for _, b := range elems {
			if !cod.Eq(phi.Map(dom.Mul(a, b)), cod.Mul(phi.Map(a), phi.Map(b))) {
				return &MorphismViolation[A]{Kind: MorphMul, Witness: []A{a, b}}
			}
		}
	}

	return nil
}

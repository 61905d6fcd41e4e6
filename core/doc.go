// Package core defines the central FiniteSet, Group, and Homomorphism value
// types of lvlalg.
//
// A FiniteSet is an ordered, duplicate-free sequence of elements together
// with an explicit equality relation, both fixed at construction time. The
// construction order is the set's canonical order: every enumeration in the
// library (law sweeps, fixed-point closures, coset listings) follows it, so
// counterexample witnesses and derived structures are reproducible across
// runs.
//
// A Group is a plain (carrier, mul, inv, identity) tuple. Construction
// validates only that the identity belongs to the carrier; closure,
// associativity, and the identity/inverse laws are deliberately NOT assumed —
// they hold only after axioms.CheckGroup reports no violation. Building and
// then diagnosing invalid structures is a first-class use case.
//
// A Homomorphism is a plain (domain, codomain, map) tuple with the same
// philosophy: the homomorphism law is asserted by axioms.CheckMorphism on
// demand, never enforced at construction.
//
// All three types are immutable values; once constructed they are only read,
// so concurrent access needs no locking.
//
// Errors:
//
//	ErrNilEquality          - set constructed with a nil equality relation.
//	ErrNilOperation         - group constructed with a nil mul or inv.
//	ErrIdentityNotInCarrier - group identity is outside the carrier.
//	ErrNilMap               - homomorphism constructed with a nil map.
package core

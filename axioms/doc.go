// Package axioms verifies the group laws and the homomorphism law over
// core values by exhaustive sweep, reporting the first violation together
// with a minimal witness tuple.
//
// CheckGroup runs seven checks in a fixed order, each swept over the whole
// carrier in canonical order before the next begins:
//
//  1. multiplication closure      witness (a, b)
//  2. inverse closure             witness (a)
//  3. associativity               witness (a, b, c)
//  4. left identity               witness (a)
//  5. right identity              witness (a)
//  6. left inverse                witness (a)
//  7. right inverse               witness (a)
//
// CheckMorphism first sweeps image membership (witness (a)), then the
// homomorphism law over nested pairs (witness (a, b)).
//
// Violations are ordinary result values, never errors: probing structures
// that fail the laws is a first-class use of this package. A nil result
// means every law holds for the entire carrier.
//
// Complexity:
//
//	CheckGroup    — O(n³·c) time, dominated by associativity, where c is the
//	                cost of one element comparison (linear for set-valued
//	                elements such as cosets).
//	CheckMorphism — O(n²·c) time.
//
// Both are pure and deterministic: the same structure always yields the
// same witness.
package axioms

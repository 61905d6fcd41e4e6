// Package span derives new structures by fixed-point closure: the subgroup
// generated by a seed set, and the homomorphism generated by a partial
// element-to-element specification.
//
// Both closures run as iterative worklists over an index-addressed slice —
// a growing list of discovered elements, scanned pairwise until no pass adds
// anything new. No recursion, no graph traversal; termination is guaranteed
// because the list only grows and is bounded by the carrier.
//
// Canonical order of a generated carrier: the identity first, then the seeds
// in the order given, then derived elements in discovery order. This order
// is stable and is the one downstream sweeps (axioms, quotient) will follow.
//
// GeneratedHomomorphism propagates images along the same closure:
// map(x·y) = map(x)·map(y) and map(x⁻¹) = map(x)⁻¹, starting from the given
// pairs with the identity pre-seeded onto the codomain identity. If two
// derivations disagree about any element the specification itself is
// contradictory, reported as ErrInconsistentMapping — a caller error, not an
// axiom violation.
//
// Errors:
//
//	ErrSeedNotInCarrier       - a seed element is outside the group's carrier.
//	ErrCarrierEscape          - closure derived an element outside the carrier
//	                            (the source group is not closed).
//	ErrMappingOutsideCarrier  - a pair references an element outside its carrier.
//	ErrInconsistentMapping    - the partial specification contradicts itself.
//	ErrElementLimit           - the WithMaxElements guard tripped.
//	ErrOptionViolation        - an invalid Option was supplied.
package span

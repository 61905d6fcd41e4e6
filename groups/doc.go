// Package groups provides the standard constructors: integers mod n,
// symmetric and dihedral permutation groups, direct products, and the
// canonical integer-renaming isomorphism.
//
// Every constructor returns a Group (or Homomorphism) that satisfies the
// laws by construction; axioms.CheckGroup on any of them reports nil. Each
// documents its carrier's canonical order, since that order decides which
// witness downstream sweeps report.
//
// Perm is the permutation value type: one-line notation over {1..n}. It is
// a plain slice value; FiniteSet's explicit equality relation handles the
// fact that slices are not comparable.
//
// Errors:
//
//	ErrNonPositiveModulus - IntegersModN called with n < 1.
//	ErrDegreeOutOfRange   - symmetric/dihedral degree outside 1..8; the cap
//	                        keeps the factorial carrier within brute-force
//	                        reach (8! = 40320).
//	ErrBadCycle           - Cycle given an out-of-range or repeated point.
package groups

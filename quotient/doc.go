// Package quotient covers conjugation, normality testing, coset partitions,
// and quotient-group construction.
//
// Normality is checked the same way the axioms package checks laws: an
// exhaustive sweep in canonical order that returns the first conjugator
// under which the subgroup is not invariant, or nil when it is normal.
//
// Quotient deliberately does NOT check normality. It always constructs a
// structure over the distinct left cosets; that structure satisfies the
// group laws precisely when the subgroup is normal. Coset multiplication is
// the element-wise product set — for a normal subgroup the product of two
// cosets is again a coset, while for a non-normal subgroup some product
// spills past any single coset, and axioms.CheckGroup on the result reports
// MulClosed with the offending pair of cosets as witness. Construct first,
// diagnose second: probing an invalid quotient is the point, so fusing the
// normality check into the constructor would remove a feature.
//
// Errors:
//
//	ErrNotSubset - the claimed subgroup's carrier is not contained in the
//	               group's carrier (fail-fast configuration error).
package quotient

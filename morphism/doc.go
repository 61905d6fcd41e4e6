// Package morphism derives structures from a homomorphism: its kernel, its
// image, and a mapping-table view.
//
// Kernel and Image build fresh, independent Group values that inherit the
// operations of the domain and codomain respectively; they hold no
// back-reference to the homomorphism they came from.
//
// Both derivations are meaningful for any Homomorphism value, verified or
// not. For a map that is not actually a homomorphism the filtered carriers
// can fail to contain the identity, in which case the derivation surfaces
// core.ErrIdentityNotInCarrier instead of fabricating a structure. For a
// valid homomorphism the kernel is always a normal subgroup of the domain
// (confirm with quotient.IsNormalSubgroupOf) and the image is a subgroup of
// the codomain.
//
// Table is a pure inspection view in the domain's canonical order; nothing
// in the library consumes it.
package morphism

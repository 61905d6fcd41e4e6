// Package lvlalg is an in-memory engine for finite algebraic structures:
// build finite groups as explicit (set, operation) values, verify the group
// laws exhaustively with counterexample witnesses, and derive new structures
// (subgroups, homomorphisms, kernels, images, quotients) from them.
//
// 🚀 What is lvlalg?
//
//	A small, deterministic library that brings together:
//		• Core values: FiniteSet, Group, Homomorphism — immutable, explicit, first-class
//		• Law checking: closure, associativity, identity, inverse — first failure + witness
//		• Generation: fixed-point closure of seeds into subgroups and homomorphisms
//		• Structure theory: kernels, images, conjugation, normality, quotient groups
//		• Standard constructors: ℤ/nℤ, symmetric, dihedral, direct products, renamings
//
// ✨ Why choose lvlalg?
//
//   - Nothing is assumed – a Group is just data; the laws hold only after CheckGroup says so
//   - Reproducible – every sweep follows the carrier's canonical order, so the
//     first counterexample is always the same one
//   - Diagnosable by design – invalid structures (a broken inverse, a quotient
//     by a non-normal subgroup) construct fine and then fail verification with
//     a concrete witness
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under six subpackages:
//
//	core/     — FiniteSet, Group and Homomorphism value types
//	axioms/   — exhaustive group-law and homomorphism-law verification
//	span/     — generated subgroups and generated homomorphisms (fixed-point closure)
//	morphism/ — kernel, image, and mapping-table derivations
//	quotient/ — conjugation, normality witnesses, cosets, quotient groups
//	groups/   — standard constructors: ℤ/nℤ, Sₙ, Dₙ, direct products, integer renamings
//
// Quick taste:
//
//	g, _ := groups.IntegersModN(6)
//	h, _ := span.Generated(g, []int{2})        // {0, 2, 4}
//	q, _ := quotient.Quotient(g, h)            // ℤ6 / ⟨2⟩
//	fmt.Println(axioms.CheckGroup(q) == nil)   // true
//
// Everything operates on values up to a few hundred elements by brute force;
// correctness and reproducibility over raw speed.
//
//	go get github.com/katalvlaran/lvlalg
package lvlalg

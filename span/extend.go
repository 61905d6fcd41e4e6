package span

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/core"
)

// GeneratedHomomorphism extends a partial element-to-element specification
// into a homomorphism defined on the subgroup of domain generated by the
// pairs' From elements.
//
// The extension is computed by fixed-point propagation over that subgroup's
// index-addressed carrier: starting from the given pairs, whenever x and y
// both have images the image of x·y is derived as map(x)·map(y) and the
// image of x⁻¹ as map(x)⁻¹, until no element gains a new image. The domain
// identity is pre-seeded onto the codomain identity, which any homomorphism
// must satisfy.
//
// The result's domain carrier is exactly the generated subgroup — a partial
// specification that does not generate the whole group yields a
// homomorphism on a proper subgroup, not on all of domain. Map returns the
// codomain identity for elements outside that carrier; only carrier inputs
// are meaningful.
//
// Returns ErrMappingOutsideCarrier if a pair references a foreign element,
// ErrInconsistentMapping if two derivations (or two pairs) assign different
// images to the same element, plus any Generated error for the closure
// itself. The result is NOT verified against the homomorphism law of the
// full codomain structure; run axioms.CheckMorphism for that.
// Complexity: O(k³) element operations for a generated subgroup of size k.
func GeneratedHomomorphism[A, B any](domain core.Group[A], codomain core.Group[B], pairs []Mapping[A, B], opts ...Option) (core.Homomorphism[A, B], error) {
	var none core.Homomorphism[A, B]

	for _, p := range pairs {
		if !domain.Contains(p.From) {
			return none, fmt.Errorf("%w: %v not in domain", ErrMappingOutsideCarrier, p.From)
		}
		if !codomain.Contains(p.To) {
			return none, fmt.Errorf("%w: %v not in codomain", ErrMappingOutsideCarrier, p.To)
		}
	}

	seeds := make([]A, len(pairs))
	for i, p := range pairs {
		seeds[i] = p.From
	}
	sub, err := Generated(domain, seeds, opts...)
	if err != nil {
		return none, err
	}

	carrier := sub.Carrier()
	n := carrier.Len()
	images := make([]B, n)
	known := make([]bool, n)
	changed := false

	// assign records image b for the element at index i, rejecting any
	// disagreement with an image already derived for it.
	assign := func(i int, b B) error {
		if known[i] {
			if !codomain.Eq(images[i], b) {
				return fmt.Errorf("%w: %v mapped to both %v and %v",
					ErrInconsistentMapping, carrier.At(i), images[i], b)
			}

			return nil
		}
		images[i] = b
		known[i] = true
		changed = true

		return nil
	}

	// Identity is at index 0 by Generated's canonical order.
	if err = assign(carrier.IndexOf(domain.Identity()), codomain.Identity()); err != nil {
		return none, err
	}
	for _, p := range pairs {
		if err = assign(carrier.IndexOf(p.From), p.To); err != nil {
			return none, err
		}
	}

	// Propagate until no element gains an image. Every element of the
	// generated subgroup is a word in the seeds, so the loop reaches all of
	// them; each pass is a full sweep, and the pass count is bounded by n.
	for changed {
		changed = false
		for i := 0; i < n; i++ {
			if !known[i] {
				continue
			}
			j := carrier.IndexOf(domain.Inv(carrier.At(i)))
			if j < 0 {
				return none, fmt.Errorf("%w: %v", ErrCarrierEscape, domain.Inv(carrier.At(i)))
			}
			if err = assign(j, codomain.Inv(images[i])); err != nil {
				return none, err
			}
			for j = 0; j < n; j++ {
				if !known[j] {
					continue
				}
				prod := domain.Mul(carrier.At(i), carrier.At(j))
				k := carrier.IndexOf(prod)
				if k < 0 {
					return none, fmt.Errorf("%w: %v", ErrCarrierEscape, prod)
				}
				if err = assign(k, codomain.Mul(images[i], images[j])); err != nil {
					return none, err
				}
			}
		}
	}

	mapFn := func(a A) B {
		if i := carrier.IndexOf(a); i >= 0 {
			return images[i]
		}

		return codomain.Identity()
	}

	return core.NewHomomorphism(sub, codomain, mapFn)
}

package axioms

import "fmt"

// Kind identifies which group law a Violation witnesses against.
type Kind int

// The seven group-law kinds, in check order.
const (
	// MulClosed: mul(a, b) must land inside the carrier.
	MulClosed Kind = iota

	// InvClosed: inv(a) must land inside the carrier.
	InvClosed

	// MulAssoc: mul(mul(a, b), c) must equal mul(a, mul(b, c)).
	MulAssoc

	// IdLeftIdentity: mul(identity, a) must equal a.
	IdLeftIdentity

	// IdRightIdentity: mul(a, identity) must equal a.
	IdRightIdentity

	// InvLeftInverse: mul(inv(a), a) must equal the identity.
	InvLeftInverse

	// InvRightInverse: mul(a, inv(a)) must equal the identity.
	InvRightInverse
)

// String returns the law's name.
func (k Kind) String() string {
	switch k {
	case MulClosed:
		return "MulClosed"
	case InvClosed:
		return "InvClosed"
	case MulAssoc:
		return "MulAssoc"
	case IdLeftIdentity:
		return "IdLeftIdentity"
	case IdRightIdentity:
		return "IdRightIdentity"
	case InvLeftInverse:
		return "InvLeftInverse"
	case InvRightInverse:
		return "InvRightInverse"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Violation is a counterexample against one group law: the law's Kind and
// the minimal witness tuple that breaks it, in the order the law quantifies
// its variables. Produced only by CheckGroup; never stored on a Group.
type Violation[T any] struct {
	Kind    Kind
	Witness []T
}

// String renders the violation for diagnostics, e.g. "MulAssoc at (1, 1, 2)".
func (v Violation[T]) String() string {
	return fmt.Sprintf("%s at %s", v.Kind, tuple(v.Witness))
}

// MorphKind identifies which morphism requirement a MorphismViolation
// witnesses against.
type MorphKind int

const (
	// ImageClosed: map(a) must land inside the codomain carrier.
	ImageClosed MorphKind = iota

	// MorphMul: map(mul(a, b)) must equal mul(map(a), map(b)).
	MorphMul
)

// String returns the requirement's name.
func (k MorphKind) String() string {
	switch k {
	case ImageClosed:
		return "ImageClosed"
	case MorphMul:
		return "MorphMul"
	default:
		return fmt.Sprintf("MorphKind(%d)", int(k))
	}
}

// MorphismViolation is a counterexample against a morphism requirement,
// witnessed by domain elements: (a) for ImageClosed, (a, b) for MorphMul.
type MorphismViolation[A any] struct {
	Kind    MorphKind
	Witness []A
}

// String renders the violation for diagnostics.
func (v MorphismViolation[A]) String() string {
	return fmt.Sprintf("%s at %s", v.Kind, tuple(v.Witness))
}

// tuple formats a witness as "(w1, w2, ...)".
func tuple[T any](ws []T) string {
	out := "("
	for i, w := range ws {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%v", w)
	}

	return out + ")"
}

package axioms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/axioms"
	"github.com/katalvlaran/lvlalg/core"
)

// modGroup builds additive ℤ/nℤ by hand so individual operations can be
// broken per test case.
func modGroup(t *testing.T, n int) core.Group[int] {
	t.Helper()
	elems := make([]int, n)
	for i := range elems {
		elems[i] = i
	}
	g, err := core.New(
		core.Of(elems...),
		func(a, b int) int { return (a + b) % n },
		func(a int) int { return (n - a) % n },
		0,
	)
	require.NoError(t, err)

	return g
}

// TestCheckGroup_Valid verifies ℤ/3ℤ passes every law and its table is the
// expected addition table.
func TestCheckGroup_Valid(t *testing.T) {
	g := modGroup(t, 3)
	assert.Nil(t, axioms.CheckGroup(g))

	want := [3][3]int{{0, 1, 2}, {1, 2, 0}, {2, 0, 1}}
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			assert.Equal(t, want[a][b], g.Mul(a, b), "mul(%d,%d)", a, b)
		}
	}
}

// TestCheckGroup_InvClosed breaks inversion with plain negation (no mod):
// inv(1) = -1 escapes the carrier, and 1 is the first element to do so.
func TestCheckGroup_InvClosed(t *testing.T) {
	g, err := core.New(
		core.Of(0, 1, 2),
		func(a, b int) int { return (a + b) % 3 },
		func(a int) int { return -a },
		0,
	)
	require.NoError(t, err)

	v := axioms.CheckGroup(g)
	require.NotNil(t, v)
	assert.Equal(t, axioms.InvClosed, v.Kind)
	assert.Equal(t, []int{1}, v.Witness)
}

// TestCheckGroup_MulAssoc forces mul(1,1) = 1 on top of addition mod 3.
// The first associativity failure in canonical nested order is (1,1,2):
// (1·1)·2 = 1·2 = 0 but 1·(1·2) = 1·0 = 1.
func TestCheckGroup_MulAssoc(t *testing.T) {
	g, err := core.New(
		core.Of(0, 1, 2),
		func(a, b int) int {
			if a == 1 && b == 1 {
				return 1
			}
			return (a + b) % 3
		},
		func(a int) int { return (3 - a) % 3 },
		0,
	)
	require.NoError(t, err)

	v := axioms.CheckGroup(g)
	require.NotNil(t, v)
	assert.Equal(t, axioms.MulAssoc, v.Kind)
	assert.Equal(t, []int{1, 1, 2}, v.Witness)
}

// TestCheckGroup_MulClosed breaks closure directly: mul never reduces mod n.
func TestCheckGroup_MulClosed(t *testing.T) {
	g, err := core.New(
		core.Of(0, 1, 2),
		func(a, b int) int { return a + b },
		func(a int) int { return (3 - a) % 3 },
		0,
	)
	require.NoError(t, err)

	v := axioms.CheckGroup(g)
	require.NotNil(t, v)
	assert.Equal(t, axioms.MulClosed, v.Kind)
	// First escaping pair in canonical order: 1 + 2 = 3.
	assert.Equal(t, []int{1, 2}, v.Witness)
}

// TestCheckGroup_IdentityLaws breaks the identity laws with a left-biased
// multiplication on a two-element carrier.
func TestCheckGroup_IdentityLaws(t *testing.T) {
	// mul(a, b) = a: closed and associative, but 0 is not a left identity.
	g, err := core.New(
		core.Of(0, 1),
		func(a, b int) int { return a },
		func(a int) int { return a },
		0,
	)
	require.NoError(t, err)

	v := axioms.CheckGroup(g)
	require.NotNil(t, v)
	assert.Equal(t, axioms.IdLeftIdentity, v.Kind)
	assert.Equal(t, []int{1}, v.Witness)
}

// TestCheckGroup_InverseLaws breaks only the inverse laws: inv is the
// identity function, so inv(1)·1 = 2 ≠ 0 in ℤ/3ℤ.
func TestCheckGroup_InverseLaws(t *testing.T) {
	g, err := core.New(
		core.Of(0, 1, 2),
		func(a, b int) int { return (a + b) % 3 },
		func(a int) int { return a },
		0,
	)
	require.NoError(t, err)

	v := axioms.CheckGroup(g)
	require.NotNil(t, v)
	assert.Equal(t, axioms.InvLeftInverse, v.Kind)
	assert.Equal(t, []int{1}, v.Witness)
}

// TestCheckMorphism covers the pass case, the image-membership sweep, and
// the law sweep, with witness order pinned.
func TestCheckMorphism(t *testing.T) {
	z4 := modGroup(t, 4)
	z2 := modGroup(t, 2)

	// x mod 2 is a homomorphism ℤ/4ℤ → ℤ/2ℤ.
	phi, err := core.NewHomomorphism(z4, z2, func(a int) int { return a % 2 })
	require.NoError(t, err)
	assert.Nil(t, axioms.CheckMorphism(phi))

	// Image escapes the codomain: first offender in canonical order is 2.
	esc, err := core.NewHomomorphism(z4, z2, func(a int) int { return a })
	require.NoError(t, err)
	v := axioms.CheckMorphism(esc)
	require.NotNil(t, v)
	assert.Equal(t, axioms.ImageClosed, v.Kind)
	assert.Equal(t, []int{2}, v.Witness)

	// Constant-1 map stays inside the codomain but breaks the law at (0,0):
	// map(0+0) = 1 while map(0)+map(0) = 0.
	bad, err := core.NewHomomorphism(z4, z2, func(a int) int { return 1 })
	require.NoError(t, err)
	v = axioms.CheckMorphism(bad)
	require.NotNil(t, v)
	assert.Equal(t, axioms.MorphMul, v.Kind)
	assert.Equal(t, []int{0, 0}, v.Witness)
}

// TestKindStrings pins the diagnostic names.
func TestKindStrings(t *testing.T) {
	names := map[string]string{
		axioms.MulClosed.String():       "MulClosed",
		axioms.InvClosed.String():       "InvClosed",
		axioms.MulAssoc.String():        "MulAssoc",
		axioms.IdLeftIdentity.String():  "IdLeftIdentity",
		axioms.IdRightIdentity.String(): "IdRightIdentity",
		axioms.InvLeftInverse.String():  "InvLeftInverse",
		axioms.InvRightInverse.String(): "InvRightInverse",
		axioms.ImageClosed.String():     "ImageClosed",
		axioms.MorphMul.String():        "MorphMul",
	}
	for got, want := range names {
		assert.Equal(t, want, got)
	}

	v := axioms.Violation[int]{Kind: axioms.MulAssoc, Witness: []int{1, 1, 2}}
	assert.Equal(t, "MulAssoc at (1, 1, 2)", v.String())
}

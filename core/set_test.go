package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvlalg/core"
)

// TestNewSet_NilEquality verifies the nil-relation guard.
func TestNewSet_NilEquality(t *testing.T) {
	if _, err := core.NewSet[int](nil, 1, 2); !errors.Is(err, core.ErrNilEquality) {
		t.Errorf("nil equality: want ErrNilEquality, got %v", err)
	}
}

// TestOf_DedupAndOrder verifies first-occurrence deduplication and canonical order.
func TestOf_DedupAndOrder(t *testing.T) {
	s := core.Of(3, 1, 3, 2, 1)
	want := []int{3, 1, 2}
	got := s.Elems()
	if len(got) != len(want) {
		t.Fatalf("Len = %d; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Elems[%d] = %d; want %d", i, got[i], want[i])
		}
	}
	if s.At(0) != 3 || s.At(2) != 2 {
		t.Errorf("At order = (%d,...,%d); want (3,...,2)", s.At(0), s.At(2))
	}
}

// TestSet_Membership covers Contains and IndexOf, including misses.
func TestSet_Membership(t *testing.T) {
	s := core.Of("a", "b", "c")
	if !s.Contains("b") {
		t.Error("Contains(b) = false; want true")
	}
	if s.Contains("z") {
		t.Error("Contains(z) = true; want false")
	}
	if i := s.IndexOf("c"); i != 2 {
		t.Errorf("IndexOf(c) = %d; want 2", i)
	}
	if i := s.IndexOf("z"); i != -1 {
		t.Errorf("IndexOf(z) = %d; want -1", i)
	}
}

// TestSet_EqualIgnoresOrder verifies that set equality is order-free while
// canonical order is preserved per set.
func TestSet_EqualIgnoresOrder(t *testing.T) {
	a := core.Of(0, 2, 4)
	b := core.Of(4, 0, 2)
	c := core.Of(0, 2)
	if !a.Equal(b) {
		t.Error("{0,2,4} != {4,0,2}; want equal")
	}
	if a.Equal(c) {
		t.Error("{0,2,4} == {0,2}; want not equal")
	}
	if !c.SubsetOf(a) || a.SubsetOf(c) {
		t.Error("subset relation wrong between {0,2} and {0,2,4}")
	}
}

// TestSet_CustomEquality verifies the explicit relation drives membership.
func TestSet_CustomEquality(t *testing.T) {
	mod3 := func(a, b int) bool { return a%3 == b%3 }
	s, err := core.NewSet(mod3, 0, 1, 2, 3, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 3 and 4 collapse onto 0 and 1.
	if s.Len() != 3 {
		t.Errorf("Len = %d; want 3", s.Len())
	}
	if !s.Contains(5) {
		t.Error("Contains(5) = false; want true (5 ≡ 2 mod 3)")
	}
}

// TestSet_ZeroValue verifies the zero set is empty and inert.
func TestSet_ZeroValue(t *testing.T) {
	var s core.FiniteSet[int]
	if s.Len() != 0 {
		t.Errorf("zero set Len = %d; want 0", s.Len())
	}
	if s.Contains(0) {
		t.Error("zero set Contains(0) = true; want false")
	}
	if s.Eq(1, 1) {
		t.Error("zero set Eq(1,1) = true; want false")
	}
	if s.Equality() != nil {
		t.Error("zero set Equality() non-nil; want nil")
	}
}

// TestSet_ElemsIsACopy verifies mutating the returned slice does not leak in.
func TestSet_ElemsIsACopy(t *testing.T) {
	s := core.Of(1, 2, 3)
	s.Elems()[0] = 99
	if s.At(0) != 1 {
		t.Errorf("At(0) = %d after mutating Elems copy; want 1", s.At(0))
	}
}

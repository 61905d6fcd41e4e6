package groups

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadCycle indicates Cycle was given an out-of-range or repeated point.
var ErrBadCycle = errors.New("groups: bad cycle specification")

// Perm is a permutation of {1..n} in one-line notation: p[i] is the image
// of i+1. Perm values are never mutated by this package; treat them as
// immutable.
type Perm []int

// IdentityPerm returns the identity permutation of degree n.
func IdentityPerm(n int) Perm {
	p := make(Perm, n)
	for i := range p {
		p[i] = i + 1
	}

	return p
}

// Compose returns p∘q, the permutation applying q first and then p.
func (p Perm) Compose(q Perm) Perm {
	r := make(Perm, len(p))
	for i := range r {
		r[i] = p[q[i]-1]
	}

	return r
}

// Inverse returns the permutation undoing p.
func (p Perm) Inverse() Perm {
	r := make(Perm, len(p))
	for i, img := range p {
		r[img-1] = i + 1
	}

	return r
}

// Equal reports whether p and q are the same permutation.
func (p Perm) Equal(q Perm) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}

	return true
}

// Sign returns +1 for even permutations and -1 for odd ones, by counting
// inversions.
// Complexity: O(n²), fine at the degrees this package allows.
func (p Perm) Sign() int {
	inversions := 0
	for i := 0; i < len(p); i++ {
		for j := i + 1; j < len(p); j++ {
			if p[i] > p[j] {
				inversions++
			}
		}
	}
	if inversions%2 == 1 {
		return -1
	}

	return 1
}

// String renders one-line notation, e.g. "[2 1 3]".
func (p Perm) String() string {
	parts := make([]string, len(p))
	for i, img := range p {
		parts[i] = fmt.Sprintf("%d", img)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// Transposition returns the degree-n permutation swapping i and j (1-based).
// Panics on out-of-range points, as slice indexing does.
func Transposition(n, i, j int) Perm {
	p := IdentityPerm(n)
	p[i-1], p[j-1] = j, i

	return p
}

// Cycle returns the degree-n permutation cycling points[0] → points[1] →
// ... → points[0], fixing everything else.
// Returns ErrBadCycle for out-of-range or repeated points.
func Cycle(n int, points []int) (Perm, error) {
	p := IdentityPerm(n)
	seen := make(map[int]bool, len(points))
	for _, pt := range points {
		if pt < 1 || pt > n {
			return nil, fmt.Errorf("%w: point %d outside 1..%d", ErrBadCycle, pt, n)
		}
		if seen[pt] {
			return nil, fmt.Errorf("%w: point %d repeated", ErrBadCycle, pt)
		}
		seen[pt] = true
	}
	for i, pt := range points {
		p[pt-1] = points[(i+1)%len(points)]
	}

	return p, nil
}

// permEq is the equality relation for Perm carriers.
func permEq(a, b Perm) bool { return a.Equal(b) }

// allPerms lists every permutation of degree n in lexicographic one-line
// order, the canonical order of SymmetricGroup's carrier.
func allPerms(n int) []Perm {
	var out []Perm
	used := make([]bool, n+1)
	line := make([]int, 0, n)

	var build func()
	build = func() {
		if len(line) == n {
			out = append(out, Perm(append([]int(nil), line...)))
			return
		}
		for v := 1; v <= n; v++ {
			if used[v] {
				continue
			}
			used[v] = true
			line = append(line, v)
			build()
			line = line[:len(line)-1]
			used[v] = false
		}
	}
	build()

	return out
}

package groups_test

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/groups"
)

// ExampleIntegersModN prints the Cayley table of ℤ/3ℤ.
func ExampleIntegersModN() {
	g, _ := groups.IntegersModN(3)
	for _, a := range g.Carrier().Elems() {
		for i, b := range g.Carrier().Elems() {
			if i > 0 {
				fmt.Print(" ")
			}
			fmt.Print(g.Mul(a, b))
		}
		fmt.Println()
	}
	// Output:
	// 0 1 2
	// 1 2 0
	// 2 0 1
}

// ExampleDihedralGroup lists the symmetries of a square: four rotations and
// four reflections inside S₄.
func ExampleDihedralGroup() {
	d4, _ := groups.DihedralGroup(4)
	fmt.Println(d4.Order())
	fmt.Println(d4.Carrier().At(0), d4.Carrier().At(1), d4.Carrier().At(2))
	// Output:
	// 8
	// [1 2 3 4] [2 3 4 1] [4 3 2 1]
}

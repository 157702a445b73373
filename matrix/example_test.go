package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/holomask/matrix"
)

// ExampleMaskRows keeps the middle row of a 3×3 hologram.
func ExampleMaskRows() {
	holo, err := matrix.NewFilled(3, 3, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	out, err := matrix.MaskRows(holo, func(i int) bool { return i == 1 })
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(out)
	// Output:
	// [0, 0, 0]
	// [1, 1, 1]
	// [0, 0, 0]
}

// ExampleMaskWhere keeps the upper triangle.
func ExampleMaskWhere() {
	holo, _ := matrix.NewDenseFrom([][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	out, _ := matrix.MaskWhere(holo, func(i, j int) bool { return j >= i })
	fmt.Print(out)
	// Output:
	// [1, 2, 3]
	// [0, 5, 6]
	// [0, 0, 9]
}

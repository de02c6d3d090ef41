package vector_test

import (
	"fmt"

	"github.com/katalvlaran/matcalc/vector"
)

func ExampleCross() {
	a := vector.New(1, 2, 3)
	b := vector.New(4, 5, 6)
	fmt.Println(vector.Dot(a, b), vector.Cross(a, b))
	// Output: 32 [-3, 6, -3]
}

func ExampleCosAngle() {
	fmt.Println(vector.CosAngle(vector.I, vector.J), vector.SinAngle(vector.I, vector.J))
	fmt.Println(vector.CosAngle(vector.Zero, vector.I))
	// Output:
	// 0 1
	// 0
}

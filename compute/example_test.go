package compute_test

import (
	"fmt"

	"github.com/katalvlaran/lvmath/compute"
)

// ExampleSlopeToRad shows the [0, 2π) range of SlopeToRad.
func ExampleSlopeToRad() {
	fmt.Printf("%.4f\n", compute.SlopeToRad(0, 1))
	fmt.Printf("%.4f\n", compute.SlopeToRad(0, -1))
	// Output:
	// 1.5708
	// 4.7124
}

// ExampleClamp clamps integers and floats with the same helper.
func ExampleClamp() {
	fmt.Println(compute.Clamp(12, 0, 10), compute.Clamp(float32(-0.5), 0, 1))
	// Output: 10 0
}

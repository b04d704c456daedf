package montecarlo_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/minefield/core"
	"github.com/katalvlaran/minefield/montecarlo"
)

// ExampleEstimateArea estimates the area of two overlapping circles with a
// fixed seed and compares it with the exact lens-union value.
func ExampleEstimateArea() {
	nodes := []core.Node{
		{X: 0, Y: 0, R: 1},
		{X: 1, Y: 0, R: 1},
	}
	area, err := montecarlo.EstimateArea(nodes, montecarlo.DefaultSamples, montecarlo.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Two unit circles one radius apart: union = 2π - (2π/3 - √3/2).
	exact := 2*math.Pi - (2*math.Pi/3 - math.Sqrt(3)/2)
	fmt.Printf("within 1%%: %v\n", math.Abs(area-exact) < 0.01*exact)

	// Output:
	// within 1%: true
}

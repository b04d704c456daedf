package core_test

import (
	"fmt"

	"github.com/katalvlaran/minefield/core"
)

// ExampleGraph demonstrates building a minefield, updating a mine and
// removing one.
func ExampleGraph() {
	// 1) Three mines: 0 and 1 reach each other, 2 is far away.
	g, _ := core.NewGraph(3)
	_ = g.SetGeometry(0, 0, 0, 5)
	_ = g.SetGeometry(1, 3, 0, 5)
	_ = g.SetGeometry(2, 10, 0, 1)
	fmt.Print(g)

	// 2) Grow mine 2 until it reaches mine 1 (distance 7).
	_ = g.SetGeometry(2, 10, 0, 7)
	e, _ := g.HasEdge(2, 1)
	fmt.Println("2→1:", e)

	// 3) Remove mine 0; old mine 2 is now index 1.
	_ = g.RemoveNode(0)
	e, _ = g.HasEdge(1, 0)
	fmt.Println("after removal 1→0:", e, "mines:", g.Len())

	// Output:
	// 0 1 0
	// 1 0 0
	// 0 0 0
	//
	// 2→1: true
	// after removal 1→0: true mines: 2
}

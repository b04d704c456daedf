package core_test

import (
	"testing"

	"github.com/katalvlaran/minefield/core"
)

// BenchmarkSetGeometry measures re-placing one mine in a 1,000-mine field.
// Complexity: O(n) per call (both edge directions against every other mine).
func BenchmarkSetGeometry(b *testing.B) {
	const n = 1000
	g, _ := core.NewGraph(n)
	for i := 0; i < n; i++ {
		_ = g.SetGeometry(i, float64(i%40), float64(i/40), 1.5)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.SetGeometry(i%n, float64(i%40), float64((i/40)%25), 1.5)
	}
}

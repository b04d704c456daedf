package blast

import (
	"fmt"

	"github.com/katalvlaran/minefield/core"
	"github.com/katalvlaran/minefield/dfs"
	"github.com/katalvlaran/minefield/montecarlo"
)

// Explode returns the mines detonated by a rocket hitting circle (x, y, r).
// Seeds are the mines whose centers lie inside the rocket circle, pushed in
// ascending index order; the result is their chain reaction in visitation
// order (see package dfs for the ordering rule). A miss yields an empty,
// non-nil slice. A rocket with non-finite values or a negative radius
// yields core.ErrInvalidGeometry.
//
// Complexity: O(V²).
func Explode(g *core.Graph, x, y, r float64) ([]int, error) {
	if g == nil {
		return nil, dfs.ErrGraphNil
	}
	rocket := core.Node{X: x, Y: y, R: r}
	if !rocket.Valid() {
		return nil, fmt.Errorf("blast: Explode(%g, %g, %g): %w", x, y, r, core.ErrInvalidGeometry)
	}

	var seeds []int
	for i, n := range g.Nodes() {
		if core.Covers(rocket, n) {
			seeds = append(seeds, i)
		}
	}

	res, err := dfs.Reachable(g, seeds)
	if err != nil {
		return nil, fmt.Errorf("blast: Explode: %w", err)
	}

	return res.Order, nil
}

// Efficiency returns the size of the chain reaction started by mine i
// alone, mine i included.
//
// Complexity: O(V²).
func Efficiency(g *core.Graph, i int) (int, error) {
	if g == nil {
		return 0, dfs.ErrGraphNil
	}
	res, err := dfs.Reachable(g, []int{i})
	if err != nil {
		return 0, fmt.Errorf("blast: Efficiency: %w", err)
	}

	return res.Len(), nil
}

// Efficiencies returns the efficiency of every mine, indexed by mine.
//
// Complexity: O(V³).
func Efficiencies(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, dfs.ErrGraphNil
	}
	out := make([]int, g.Len())
	for i := range out {
		e, err := Efficiency(g, i)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}

	return out, nil
}

// MaxEfficiencyIndex returns the first mine whose efficiency is strictly
// greater than that of every mine before it and not exceeded after it,
// i.e. ties resolve to the lowest index.
//
// Errors:
//   - ErrEmptyGraph if g has no mines.
func MaxEfficiencyIndex(g *core.Graph) (int, error) {
	idx, _, err := MaxEfficiency(g)

	return idx, err
}

// MaxEfficiency is MaxEfficiencyIndex that also returns the winning
// efficiency.
func MaxEfficiency(g *core.Graph) (index, efficiency int, err error) {
	if g == nil {
		return 0, 0, dfs.ErrGraphNil
	}
	if g.Len() == 0 {
		return 0, 0, ErrEmptyGraph
	}
	effs, err := Efficiencies(g)
	if err != nil {
		return 0, 0, err
	}

	index, efficiency = 0, effs[0]
	for i := 1; i < len(effs); i++ {
		if effs[i] > efficiency {
			index, efficiency = i, effs[i]
		}
	}

	return index, efficiency, nil
}

// ChainArea estimates the area covered by the chain reaction of mine i.
// The chain is Explode at mine i's center with radius 0, so mines stacked
// exactly on that center are seeded too; the union of the chain's circles
// is then passed to montecarlo.EstimateArea with the given sample count.
func ChainArea(g *core.Graph, i, samples int, opts ...montecarlo.Option) (float64, error) {
	if g == nil {
		return 0, dfs.ErrGraphNil
	}
	mine, err := g.Node(i)
	if err != nil {
		return 0, fmt.Errorf("blast: ChainArea: %w", err)
	}
	chain, err := Explode(g, mine.X, mine.Y, 0)
	if err != nil {
		return 0, err
	}
	nodes, err := g.Select(chain)
	if err != nil {
		return 0, fmt.Errorf("blast: ChainArea: %w", err)
	}
	area, err := montecarlo.EstimateArea(nodes, samples, opts...)
	if err != nil {
		return 0, fmt.Errorf("blast: ChainArea: %w", err)
	}

	return area, nil
}

// MaxEfficiencyArea estimates, with montecarlo.DefaultSamples samples, the
// area covered by the chain reaction of the most efficient mine.
//
// Errors:
//   - ErrEmptyGraph if g has no mines.
func MaxEfficiencyArea(g *core.Graph, opts ...montecarlo.Option) (float64, error) {
	idx, err := MaxEfficiencyIndex(g)
	if err != nil {
		return 0, err
	}

	return ChainArea(g, idx, montecarlo.DefaultSamples, opts...)
}

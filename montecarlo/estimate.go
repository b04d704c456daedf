package montecarlo

import (
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/minefield/core"
)

// BoundingBox returns the smallest axis-aligned box enclosing every
// circle, i.e. the union of each node's [X±R] × [Y±R] box.
//
// Errors:
//   - ErrEmptyNodeSet if nodes is empty.
func BoundingBox(nodes []core.Node) (r2.Box, error) {
	if len(nodes) == 0 {
		return r2.Box{}, ErrEmptyNodeSet
	}
	box := nodes[0].Bounds()
	for _, n := range nodes[1:] {
		box = box.Union(n.Bounds())
	}

	return box, nil
}

// EstimateArea returns a Monte Carlo estimate of the area of the union of
// the given circles using samples uniform points in their bounding box.
//
// Algorithm:
//  1. Compute the bounding box B of all circles.
//  2. Draw samples points uniformly in B; a point is a hit if it lies in
//     any circle (the scan stops at the first match).
//  3. Return area(B) * hits / samples.
//
// With Workers > 1 the samples are partitioned (the first samples%k
// workers take one extra) and hit counts are summed.
//
// Complexity: O(samples * len(nodes)) time, O(workers) extra space.
func EstimateArea(nodes []core.Node, samples int, opts ...Option) (float64, error) {
	// 1. Validate inputs
	if len(nodes) == 0 {
		return 0, ErrEmptyNodeSet
	}
	if samples <= 0 {
		return 0, fmt.Errorf("montecarlo: samples=%d: %w", samples, ErrInvalidSampleCount)
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Workers < 1 {
		return 0, fmt.Errorf("montecarlo: workers=%d: %w", o.Workers, ErrInvalidWorkers)
	}

	// 2. Bounding box
	box, err := BoundingBox(nodes)
	if err != nil {
		return 0, err
	}
	size := box.Size()

	// 3. Sample
	var hits int
	if o.Workers == 1 {
		rng := o.Source
		if rng == nil {
			rng = rngFromSeed(o.Seed)
		}
		hits = countHits(nodes, box, samples, rng)
	} else {
		hits, err = countHitsParallel(nodes, box, samples, o.Workers, resolveSeed(o.Seed))
		if err != nil {
			return 0, err
		}
	}

	return size.X * size.Y * float64(hits) / float64(samples), nil
}

// countHits draws n points in box and counts those inside any circle.
func countHits(nodes []core.Node, box r2.Box, n int, rng *rand.Rand) int {
	size := box.Size()

	var (
		hits int
		p    r2.Vec
	)
	for i := 0; i < n; i++ {
		p.X = box.Min.X + rng.Float64()*size.X
		p.Y = box.Min.Y + rng.Float64()*size.Y
		for _, c := range nodes {
			if core.Contains(c, p) {
				hits++
				break
			}
		}
	}

	return hits
}

// countHitsParallel splits n samples across k workers, each with its own
// derived stream, and sums their hits.
func countHitsParallel(nodes []core.Node, box r2.Box, n, k int, seed int64) (int, error) {
	if k > n {
		k = n
	}
	perWorker := make([]int, k)

	var g errgroup.Group
	base, extra := n/k, n%k
	for w := 0; w < k; w++ {
		w := w
		share := base
		if w < extra {
			share++
		}
		rng := deriveRNG(seed, uint64(w))
		g.Go(func() error {
			perWorker[w] = countHits(nodes, box, share, rng)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var hits int
	for _, h := range perWorker {
		hits += h
	}

	return hits, nil
}

// Package dfs implements explicit-stack depth-first reachability on a
// minefield core.Graph.
//
// Key features:
//   - Reachable(g, seeds, opts...): multi-seed traversal, one result per call
//   - Hooks: OnVisit with error abort
//   - Filtering: FilterNeighbor, SkippedNeighbors diagnostic count
//
// Complexity:
//
//   - Time:   O(V²) (one matrix row scan per visited node).
//   - Memory: O(V + E) for the stack, O(V) for visited marks.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/minefield/core"
)

// stack is the traversal work list. Each frame is one node index.
type stack []int

func (s *stack) push(i int) { *s = append(*s, i) }

// pop removes and returns the top frame. The caller checks len first.
func (s *stack) pop() int {
	old := *s
	i := old[len(old)-1]
	*s = old[:len(old)-1]

	return i
}

// walker encapsulates state during one traversal.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
	work  stack
	succ  []int // reused successor buffer
}

// Reachable returns every node reachable from seeds by following
// detonation edges. Seeds themselves are included. Duplicate seeds are
// allowed and collapse through the visited marks.
//
// Algorithm:
//  1. Push all seeds in the given order.
//  2. Pop the top index; if already visited, discard it.
//  3. Otherwise mark it, append it to Order, run OnVisit, and push every
//     successor j (ascending) that passes FilterNeighbor.
//  4. Repeat until the stack is empty.
//
// Each node is marked at most once, so the loop terminates after at most
// len(seeds) + E pops.
func Reachable(g *core.Graph, seeds []int, opts ...Option) (*Result, error) {
	// 1. Validate input graph and seeds
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.Len()
	for _, s := range seeds {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("dfs: seed %d (n=%d): %w", s, n, core.ErrIndexOutOfRange)
		}
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Initialize result and preload the stack
	w := &walker{
		graph: g,
		opts:  dopts,
		res: &Result{
			Order:   make([]int, 0, n),
			Visited: make([]bool, n),
		},
		work: make(stack, 0, len(seeds)+n),
		succ: make([]int, 0, n),
	}
	for _, s := range seeds {
		w.work.push(s)
	}
	w.res.MaxStack = len(w.work)

	// 4. Drain
	if err := w.drain(); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// drain pops frames until the work list is empty.
func (w *walker) drain() error {
	var i, j int
	for len(w.work) > 0 {
		i = w.work.pop()
		if w.res.Visited[i] {
			continue
		}
		w.res.Visited[i] = true
		w.res.Order = append(w.res.Order, i)

		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(i); err != nil {
				return fmt.Errorf("dfs: OnVisit hook for %d: %w", i, err)
			}
		}

		w.succ = w.graph.AppendSuccessors(w.succ[:0], i)
		for _, j = range w.succ {
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(i, j) {
				w.res.SkippedNeighbors++
				continue
			}
			w.work.push(j)
		}
		if len(w.work) > w.res.MaxStack {
			w.res.MaxStack = len(w.work)
		}
	}

	return nil
}

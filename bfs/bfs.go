package bfs

import (
	"fmt"

	"github.com/katalvlaran/minefield/core"
)

// walker encapsulates mutable traversal state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []int
	succ  []int
	res   *Result
}

// Rounds runs a multi-source breadth-first search from seeds and records
// the round in which every mine detonates. Duplicate seeds collapse.
func Rounds(g *core.Graph, seeds []int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := g.Len()
	for _, s := range seeds {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("bfs: seed %d (n=%d): %w", s, n, core.ErrIndexOutOfRange)
		}
	}

	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]int, 0, n),
		succ:  make([]int, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := range w.res.Depth {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}
	for _, s := range seeds {
		if w.res.Depth[s] < 0 {
			w.enqueue(s, 0, -1)
		}
	}

	return w.res, w.loop()
}

func (w *walker) enqueue(mine, round, parent int) {
	w.res.Depth[mine] = round
	w.res.Parent[mine] = parent
	w.queue = append(w.queue, mine)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		cur := w.queue[head]
		round := w.res.Depth[cur]
		w.res.Order = append(w.res.Order, cur)
		if err := w.opts.OnVisit(cur, round); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", cur, err)
		}
		if w.opts.MaxDepth > 0 && round >= w.opts.MaxDepth {
			continue
		}

		w.succ = w.graph.AppendSuccessors(w.succ[:0], cur)
		for _, next := range w.succ {
			if w.res.Depth[next] < 0 {
				w.enqueue(next, round+1, cur)
			}
		}
	}

	return nil
}

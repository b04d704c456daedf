package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for round computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures Rounds via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for Rounds.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a mine is dequeued with its round. Returning
	// an error aborts the traversal.
	OnVisit func(mine, round int) error

	// MaxDepth, if > 0, stops expanding beyond this round.
	MaxDepth int

	err error
}

// DefaultOptions returns background context, no-op hook and no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  func(int, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on each visit.
func WithOnVisit(fn func(mine, round int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the traversal to rounds 0..d.
//
//	d > 0: limit to round d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result is the outcome of Rounds.
type Result struct {
	Order  []int
	Depth  []int
	Parent []int
}

// Layers groups Order by round.
func (r *Result) Layers() [][]int {
	var out [][]int
	for _, m := range r.Order {
		d := r.Depth[m]
		for len(out) <= d {
			out = append(out, nil)
		}
		out[d] = append(out[d], m)
	}

	return out
}

// PathTo returns the trigger chain from a seed to mine.
func (r *Result) PathTo(mine int) ([]int, error) {
	if mine < 0 || mine >= len(r.Depth) || r.Depth[mine] < 0 {
		return nil, fmt.Errorf("bfs: mine %d not reached", mine)
	}
	path := make([]int, 0, r.Depth[mine]+1)
	for cur := mine; cur >= 0; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

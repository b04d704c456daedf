// Package dfs defines types and options for explicit-stack reachability:
// visit hooks, neighbor filtering and basic diagnostics.
package dfs

import (
	"errors"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to Reachable.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Option configures optional behavior of a traversal.
type Option func(*Options)

// Options holds configurable parameters for Reachable.
// Complexity stays O(V²) when hooks and filters are O(1).
type Options struct {
	// OnVisit, if non-nil, is invoked when a node is popped for the first
	// time, before its successors are pushed. Returning an error aborts
	// the traversal with that error.
	OnVisit func(index int) error

	// FilterNeighbor, if non-nil, is called for each edge from→to before
	// pushing to. Return false to skip the edge.
	FilterNeighbor func(from, to int) bool
}

// DefaultOptions returns Options with no hooks and no filtering.
func DefaultOptions() Options {
	return Options{
		OnVisit:        nil,
		FilterNeighbor: nil,
	}
}

// WithOnVisit returns an Option that installs fn as the visit hook.
func WithOnVisit(fn func(index int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithFilterNeighbor returns an Option that filters edges.
// If fn(from, to) == false the edge is skipped and counted in
// Result.SkippedNeighbors.
func WithFilterNeighbor(fn func(from, to int) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}

// Result captures the outcome of a traversal.
type Result struct {
	// Order lists visited nodes in the order they were popped and marked.
	// No index appears twice.
	Order []int

	// Visited flags which nodes were reached, indexed by node.
	Visited []bool

	// MaxStack is the high-water mark of the work list.
	MaxStack int

	// SkippedNeighbors counts edges rejected by FilterNeighbor.
	SkippedNeighbors int
}

// Len returns the number of reached nodes.
func (r *Result) Len() int { return len(r.Order) }

// Package core defines Node, Graph and the sentinel errors of the
// minefield graph store.
package core

import (
	"errors"

	"github.com/katalvlaran/minefield/matrix"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeSize indicates NewGraph was asked for a negative node count.
	ErrNegativeSize = errors.New("core: node count must be >= 0")

	// ErrIndexOutOfRange indicates a node index outside [0, n).
	ErrIndexOutOfRange = errors.New("core: node index out of range")

	// ErrInvalidGeometry indicates non-finite coordinates or a radius that
	// is negative or NaN.
	ErrInvalidGeometry = errors.New("core: invalid node geometry")
)

// Node is a mine: a circle with center (X, Y) and blast radius R.
// The zero Node is a point at the origin.
type Node struct {
	X, Y float64
	R    float64
}

// Graph is the minefield: nodes in index order plus the n×n detonation
// matrix, where adj[u][v] is true iff v's center lies within u's circle.
type Graph struct {
	nodes []Node
	adj   *matrix.Bool
}

// NewGraph creates a graph with n zero-geometry nodes and no edges.
// Complexity: O(n²).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	adj, err := matrix.NewBool(n)
	if err != nil {
		return nil, err
	}

	return &Graph{
		nodes: make([]Node, n),
		adj:   adj,
	}, nil
}

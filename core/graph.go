// File: graph.go
// Role: Node lifecycle, geometry updates and edge queries.
//
// Invariants kept at the boundary of every exported method:
//   - adj.Size() == len(nodes).
//   - adj[u][v] == Covers(nodes[u], nodes[v]) for u != v; diagonal false.
package core

import (
	"fmt"
)

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// checkIndex validates i against [0, n).
func (g *Graph) checkIndex(i int) error {
	if i < 0 || i >= len(g.nodes) {
		return fmt.Errorf("index %d (n=%d): %w", i, len(g.nodes), ErrIndexOutOfRange)
	}

	return nil
}

// AddNode appends a zero-geometry node with no edges and returns its index.
// The matrix grows to (n+1)×(n+1) with the new row and column all false.
//
// A zero node is a point at the origin; it takes part in no edge until its
// geometry is set, even if another circle already covers the origin.
// Complexity: O(n²).
func (g *Graph) AddNode() int {
	g.nodes = append(g.nodes, Node{})

	return g.adj.Grow()
}

// RemoveNode deletes node i together with its matrix row and column.
// Every node previously at k > i moves to k-1; edges among the surviving
// nodes keep their values and only change position.
//
// Errors:
//   - ErrIndexOutOfRange if i ∉ [0, n).
//
// Complexity: O(n²).
func (g *Graph) RemoveNode(i int) error {
	if err := g.checkIndex(i); err != nil {
		return fmt.Errorf("core: RemoveNode: %w", err)
	}
	if err := g.adj.Remove(i); err != nil {
		return fmt.Errorf("core: RemoveNode: %w", err)
	}
	g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)

	return nil
}

// SetGeometry moves node i to (x, y) with radius r and recomputes every
// edge incident to i in both directions:
//
//	adj[j][i] = Covers(node j, node i)   // does j's blast reach i now?
//	adj[i][j] = Covers(node i, node j)   // does i's new blast reach j?
//
// Both passes run from scratch against every other node, so edges from a
// previous radius or position never survive.
//
// Errors:
//   - ErrIndexOutOfRange if i ∉ [0, n).
//   - ErrInvalidGeometry if x or y is not finite, or r is negative, NaN or Inf.
//     The node is left unchanged.
//
// Complexity: O(n).
func (g *Graph) SetGeometry(i int, x, y, r float64) error {
	if err := g.checkIndex(i); err != nil {
		return fmt.Errorf("core: SetGeometry: %w", err)
	}
	node := Node{X: x, Y: y, R: r}
	if !node.Valid() {
		return fmt.Errorf("core: SetGeometry(%d, %g, %g, %g): %w", i, x, y, r, ErrInvalidGeometry)
	}
	g.nodes[i] = node

	var j int
	for j = range g.nodes {
		if j == i {
			continue
		}
		// Indices are validated above; Set cannot fail here.
		_ = g.adj.Set(j, i, Covers(g.nodes[j], node))
		_ = g.adj.Set(i, j, Covers(node, g.nodes[j]))
	}

	return nil
}

// Node returns a copy of node i.
func (g *Graph) Node(i int) (Node, error) {
	if err := g.checkIndex(i); err != nil {
		return Node{}, fmt.Errorf("core: Node: %w", err)
	}

	return g.nodes[i], nil
}

// Nodes returns a copy of all nodes in index order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Select returns copies of the nodes at the given indices, in the given
// order.
func (g *Graph) Select(indices []int) ([]Node, error) {
	out := make([]Node, 0, len(indices))
	for _, i := range indices {
		if err := g.checkIndex(i); err != nil {
			return nil, fmt.Errorf("core: Select: %w", err)
		}
		out = append(out, g.nodes[i])
	}

	return out, nil
}

// HasEdge reports whether u's blast triggers v.
func (g *Graph) HasEdge(u, v int) (bool, error) {
	if err := g.checkIndex(u); err != nil {
		return false, fmt.Errorf("core: HasEdge: %w", err)
	}
	if err := g.checkIndex(v); err != nil {
		return false, fmt.Errorf("core: HasEdge: %w", err)
	}

	return g.adj.At(u, v)
}

// Successors returns every j with an edge i→j, ascending.
func (g *Graph) Successors(i int) ([]int, error) {
	if err := g.checkIndex(i); err != nil {
		return nil, fmt.Errorf("core: Successors: %w", err)
	}

	return g.adj.Successors(make([]int, 0), i), nil
}

// AppendSuccessors is the allocation-free form of Successors used by
// traversals: it appends the successors of i (ascending) to dst.
// i must be a valid index; it is not checked.
func (g *Graph) AppendSuccessors(dst []int, i int) []int {
	return g.adj.Successors(dst, i)
}

// EdgeCount returns the number of detonation edges.
func (g *Graph) EdgeCount() int { return g.adj.Count() }

// Clone returns a deep copy of the graph.
func (g *Graph) Clone() *Graph {
	return &Graph{
		nodes: g.Nodes(),
		adj:   g.adj.Clone(),
	}
}

// String renders the detonation matrix as 0/1 rows followed by a blank line.
func (g *Graph) String() string {
	return g.adj.String() + "\n"
}

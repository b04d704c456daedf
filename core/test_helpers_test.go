// Package core_test contains test helpers for minefield/core.
//
// Purpose:
//   - Provide small, deterministic minefield fixtures.
//   - Compare the matrix against a from-scratch evaluation of the detonation rule.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minefield/core"
)

// build creates a graph and places every node in order via SetGeometry,
// the same way the loader does.
func build(t *testing.T, nodes ...core.Node) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(len(nodes))
	require.NoError(t, err)
	for i, n := range nodes {
		require.NoError(t, g.SetGeometry(i, n.X, n.Y, n.R))
	}

	return g
}

// requireConsistent asserts that every off-diagonal cell equals the
// detonation rule on the current geometry and that the diagonal is false.
func requireConsistent(t *testing.T, g *core.Graph) {
	t.Helper()
	nodes := g.Nodes()
	for u := range nodes {
		for v := range nodes {
			got, err := g.HasEdge(u, v)
			require.NoError(t, err)
			want := u != v && core.Covers(nodes[u], nodes[v])
			require.Equalf(t, want, got, "edge %d→%d", u, v)
		}
	}
}

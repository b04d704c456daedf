package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minefield/bfs"
	"github.com/katalvlaran/minefield/core"
	"github.com/katalvlaran/minefield/dfs"
)

// fan builds 0→{1,3}, 1→{0,2}, plus leaves 2, 3 and isolated 4.
func fan(t *testing.T) *core.Graph {
	t.Helper()
	nodes := []core.Node{
		{X: 0, Y: 0, R: 4},
		{X: 3, Y: 0, R: 3.5},
		{X: 6, Y: 0, R: 1},
		{X: 0, Y: 3, R: 1},
		{X: 50, Y: 50, R: 1},
	}
	g, err := core.NewGraph(len(nodes))
	require.NoError(t, err)
	for i, n := range nodes {
		require.NoError(t, g.SetGeometry(i, n.X, n.Y, n.R))
	}

	return g
}

func TestRounds_Errors(t *testing.T) {
	_, err := bfs.Rounds(nil, []int{0})
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := fan(t)
	_, err = bfs.Rounds(g, []int{5})
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)

	_, err = bfs.Rounds(g, []int{0}, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestRounds_Depths(t *testing.T) {
	res, err := bfs.Rounds(fan(t), []int{0})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 3, 2}, res.Order)
	assert.Equal(t, []int{0, 1, 2, 1, -1}, res.Depth)
	assert.Equal(t, []int{-1, 0, 1, 0, -1}, res.Parent)
	assert.Equal(t, [][]int{{0}, {1, 3}, {2}}, res.Layers())

	path, err := res.PathTo(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, path)

	_, err = res.PathTo(4)
	assert.Error(t, err)
}

func TestRounds_MultiSeed(t *testing.T) {
	res, err := bfs.Rounds(fan(t), []int{2, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1, 3}, res.Order)
	assert.Equal(t, [][]int{{2, 0}, {1, 3}}, res.Layers())
}

func TestRounds_MaxDepth(t *testing.T) {
	res, err := bfs.Rounds(fan(t), []int{0}, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, res.Order)
	assert.Equal(t, -1, res.Depth[2])
}

func TestRounds_NoSeeds(t *testing.T) {
	res, err := bfs.Rounds(fan(t), nil)
	require.NoError(t, err)
	assert.Empty(t, res.Order)
	assert.Empty(t, res.Layers())
}

func TestRounds_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.Rounds(fan(t), []int{0}, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRounds_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	var seen []int
	_, err := bfs.Rounds(fan(t), []int{0}, bfs.WithOnVisit(func(m, round int) error {
		seen = append(seen, m)
		if round == 1 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []int{0, 1}, seen)
}

// The set of mines reached matches depth-first reachability.
func TestRounds_SameSetAsDFS(t *testing.T) {
	g := fan(t)
	for s := 0; s < g.Len(); s++ {
		b, err := bfs.Rounds(g, []int{s})
		require.NoError(t, err)
		d, err := dfs.Reachable(g, []int{s})
		require.NoError(t, err)
		assert.ElementsMatch(t, d.Order, b.Order, "seed %d", s)
	}
}

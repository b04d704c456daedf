// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minefield/matrix"
)

// fill builds an n×n matrix with (i,j) set for every pair in cells.
func fill(t *testing.T, n int, cells ...[2]int) *matrix.Bool {
	t.Helper()
	m, err := matrix.NewBool(n)
	require.NoError(t, err)
	for _, c := range cells {
		require.NoError(t, m.Set(c[0], c[1], true))
	}

	return m
}

func TestNewBool(t *testing.T) {
	m, err := matrix.NewBool(3)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Size())
	assert.Equal(t, 0, m.Count())

	empty, err := matrix.NewBool(0)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Size())
	assert.Equal(t, "", empty.String())

	_, err = matrix.NewBool(-1)
	assert.ErrorIs(t, err, matrix.ErrNegativeSize)
}

func TestBool_AtSetBounds(t *testing.T) {
	m := fill(t, 2, [2]int{0, 1})

	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.True(t, v)
	v, err = m.At(1, 0)
	require.NoError(t, err)
	assert.False(t, v)

	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err = m.At(idx[0], idx[1])
		assert.ErrorIs(t, err, matrix.ErrOutOfRange, "At%v", idx)
		assert.ErrorIs(t, m.Set(idx[0], idx[1], true), matrix.ErrOutOfRange, "Set%v", idx)
	}
	_, err = m.Row(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestBool_GrowKeepsCells(t *testing.T) {
	m := fill(t, 2, [2]int{0, 1}, [2]int{1, 0})

	idx := m.Grow()
	assert.Equal(t, 2, idx)
	assert.Equal(t, 3, m.Size())
	assert.Equal(t, "0 1 0\n1 0 0\n0 0 0\n", m.String())
}

func TestBool_RemoveShiftsHigherIndices(t *testing.T) {
	// 0→2, 2→1, 1→0 ; drop 1 => 0→1 survives (old 0→2), others vanish.
	m := fill(t, 3, [2]int{0, 2}, [2]int{2, 1}, [2]int{1, 0})

	require.NoError(t, m.Remove(1))
	assert.Equal(t, 2, m.Size())
	assert.Equal(t, "0 1\n0 0\n", m.String())

	assert.ErrorIs(t, m.Remove(2), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Remove(-1), matrix.ErrOutOfRange)
}

func TestBool_RemoveToEmpty(t *testing.T) {
	m := fill(t, 1)
	require.NoError(t, m.Remove(0))
	assert.Equal(t, 0, m.Size())
	assert.Equal(t, 0, m.Grow())
	assert.Equal(t, 1, m.Size())
}

func TestBool_GrowRemoveRoundTrip(t *testing.T) {
	m := fill(t, 4, [2]int{0, 3}, [2]int{3, 2}, [2]int{1, 1}, [2]int{2, 0})
	before := m.String()

	last := m.Grow()
	require.NoError(t, m.Remove(last))
	assert.Equal(t, before, m.String())
}

func TestBool_SuccessorsAscending(t *testing.T) {
	m := fill(t, 4, [2]int{1, 3}, [2]int{1, 0}, [2]int{1, 2})
	assert.Equal(t, []int{0, 2, 3}, m.Successors(nil, 1))
	assert.Empty(t, m.Successors(nil, 0))

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true, true}, row)
}

func TestBool_CloneIsIndependent(t *testing.T) {
	m := fill(t, 2, [2]int{0, 1})
	c := m.Clone()
	require.NoError(t, c.Set(1, 0, true))

	v, _ := m.At(1, 0)
	assert.False(t, v)
	assert.Equal(t, 1, m.Count())
	assert.Equal(t, 2, c.Count())
}

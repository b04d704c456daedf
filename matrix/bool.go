// SPDX-License-Identifier: MIT

// Package matrix - Bool storage (row-major) & safe accessors.
//
// Purpose:
//   - Keep the adjacency relation in one contiguous buffer with the explicit
//     index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set/Remove return errors
//     instead of panicking.
//   - Route every change of order through reshape, the only place that
//     allocates and copies.
//
// Complexity quicksheet:
//   - NewBool: O(n²) zero-init; At/Set: O(1); Grow/Remove: O(n²); Clone: O(n²).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRow    = "Row"
	ctxRemove = "Remove"
)

// keepAll is the reshape sentinel meaning "no row/column is dropped".
const keepAll = -1

// boolErrorf wraps an error with a uniform Bool context and callsite indices.
func boolErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Bool.%s(%d,%d): %w", method, row, col, err)
}

// Bool is a square row-major boolean matrix.
//   - n is the order (rows == cols == n).
//   - data is a flat buffer of length n*n (offset = i*n + j).
type Bool struct {
	n    int
	data []bool
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Bool)(nil)

// NewBool creates an n×n all-false matrix. A zero order is legal and
// yields an empty matrix that can later Grow.
//
// Errors:
//   - ErrNegativeSize if n < 0.
func NewBool(n int) (*Bool, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}

	return &Bool{n: n, data: make([]bool, n*n)}, nil
}

// Size returns the order n of the matrix.
func (m *Bool) Size() int { return m.n }

// inBounds reports whether i is a valid row/column index.
func (m *Bool) inBounds(i int) bool { return i >= 0 && i < m.n }

// At returns the value at (i, j).
func (m *Bool) At(i, j int) (bool, error) {
	if !m.inBounds(i) || !m.inBounds(j) {
		return false, boolErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.data[i*m.n+j], nil
}

// Set assigns v at (i, j).
func (m *Bool) Set(i, j int, v bool) error {
	if !m.inBounds(i) || !m.inBounds(j) {
		return boolErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	m.data[i*m.n+j] = v

	return nil
}

// Row returns a copy of row i.
func (m *Bool) Row(i int) ([]bool, error) {
	if !m.inBounds(i) {
		return nil, boolErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]bool, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return out, nil
}

// Successors appends to dst every column j with (i, j) set, in ascending
// order, and returns the extended slice. The caller guarantees i is in
// bounds; this is the traversal hot path and performs no checks.
func (m *Bool) Successors(dst []int, i int) []int {
	row := m.data[i*m.n : (i+1)*m.n]
	for j, set := range row {
		if set {
			dst = append(dst, j)
		}
	}

	return dst
}

// Count returns the number of true cells.
func (m *Bool) Count() int {
	var k int
	for _, v := range m.data {
		if v {
			k++
		}
	}

	return k
}

// Grow appends one all-false row and column and returns the index of the
// new row (the previous order).
func (m *Bool) Grow() int {
	idx := m.n
	m.reshape(m.n+1, keepAll)

	return idx
}

// Remove drops row k and column k. Every cell (i, j) with i > k or j > k
// moves to (i-1) or (j-1) respectively; values are preserved.
func (m *Bool) Remove(k int) error {
	if !m.inBounds(k) {
		return boolErrorf(ctxRemove, k, k, ErrOutOfRange)
	}
	m.reshape(m.n-1, k)

	return nil
}

// reshape reallocates the buffer to order n, copying every surviving cell
// from the old layout. drop names the row/column skipped while copying, or
// keepAll. Cells with no source (a grown row or column) stay false.
func (m *Bool) reshape(n, drop int) {
	next := make([]bool, n*n)

	var si, sj, di, dj int
	for si, di = 0, 0; si < m.n && di < n; si++ {
		if si == drop {
			continue
		}
		for sj, dj = 0, 0; sj < m.n && dj < n; sj++ {
			if sj == drop {
				continue
			}
			next[di*n+dj] = m.data[si*m.n+sj]
			dj++
		}
		di++
	}

	m.n = n
	m.data = next
}

// Clone returns a deep copy.
func (m *Bool) Clone() *Bool {
	data := make([]bool, len(m.data))
	copy(data, m.data)

	return &Bool{n: m.n, data: data}
}

// String renders the matrix as rows of space-separated 0/1 digits, one row
// per line.
func (m *Bool) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if m.data[i*m.n+j] {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

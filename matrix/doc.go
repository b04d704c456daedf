// Package matrix provides the square boolean adjacency matrix that backs
// a minefield graph.
//
// What:
//
//   - Bool is an n×n matrix of bool stored in a single row-major buffer
//     (offset = i*n + j).
//   - Grow appends one all-false row and column; Remove drops row and
//     column k and shifts every higher index down by one.
//   - Both resizes go through one reshape-and-copy routine, so the matrix
//     is always exactly n×n between calls.
//
// Why:
//
//   - Detonation edges are dense by nature (every pair is tested), so an
//     O(1) bit lookup beats an adjacency list for the traversal hot loop.
//   - A flat buffer keeps resizing to a single allocation and copy.
//
// Complexity:
//
//   - NewBool: O(n²); At/Set: O(1); Grow/Remove: O(n²); Row: O(n).
//
// Errors:
//
//   - ErrNegativeSize: requested size is negative.
//   - ErrOutOfRange:   row, column or removal index outside [0, n).
//
// At and Set return errors instead of panicking; the unchecked accessors
// used by the traversal hot path are unexported.
package matrix

// Package loader reads and writes the plain minefield format.
//
// Format:
//
//	3            <- mine count n
//	0 0 5        <- x y r of mine 0
//	3 0 5        <- x y r of mine 1
//	10 0 1       <- x y r of mine 2
//
// Parse builds the graph exactly as a caller would: core.NewGraph(n), then
// SetGeometry(i, x, y, r) for each mine line in order.
//
// Leniency:
//
//   - Blank lines are skipped anywhere.
//   - Lines after the n-th mine line are ignored (logged at debug level).
//
// Errors:
//
//   - ErrFileNotFound     the path does not exist.
//   - ErrMalformedInput   the count line or a mine line is not valid: wrong
//     token count, non-numeric field, negative count, missing mine lines,
//     or geometry rejected by core.SetGeometry. The message carries the
//     1-based line number.
package loader

// Package core provides the minefield graph: an ordered set of circular
// mines plus the directed detonation relation between them.
//
// The Graph G = (V,E) is defined geometrically:
//
//   - Every vertex is a Node, a circle with center (X, Y) and blast radius R.
//   - An edge u→v exists iff v's center lies inside u's circle
//     (squared distance ≤ R², boundary inclusive). The relation is not
//     symmetric: a large mine can reach a small one that cannot reach back.
//   - The diagonal is always false; a mine does not trigger itself.
//
// Storage:
//
//   - Nodes live in an index-addressed slice; the index is the identity.
//   - Edges live in a matrix.Bool kept exactly n×n at the boundary of every
//     mutating call.
//
// Lifecycle:
//
//	NewGraph(n)                  // n zero-geometry nodes, no edges
//	AddNode() int                // append one zero node, return its index
//	SetGeometry(i, x, y, r)      // move/resize node i, recompute all edges touching i
//	RemoveNode(i)                // drop node i; every index above i shifts down by one
//
// SetGeometry is the only code path that writes edges. It recomputes both
// directions against every other node, so no edge from an earlier geometry
// survives an update.
//
// Indices are not stable across RemoveNode: callers must not cache them
// over a removal.
//
// Concurrency:
//
//	A Graph has a single owner. It performs no locking and must not be
//	mutated concurrently; concurrent readers are fine while no writer runs.
//
// Errors:
//
//	ErrNegativeSize     - NewGraph called with n < 0.
//	ErrIndexOutOfRange  - node index outside [0, n).
//	ErrInvalidGeometry  - NaN/Inf coordinates or a negative/NaN radius.
package core

// Package dfs implements depth-first reachability over a minefield
// core.Graph using an explicit stack instead of recursion.
//
// What:
//
//   - Reachable(g, seeds, opts...): every node reachable from any seed by
//     following detonation edges, each reported once, in visitation order.
//   - The work list is an owned slice used as a LIFO stack. Stack use grows
//     with edges, not with chain depth, so long chains never exhaust the
//     goroutine stack.
//
// Order:
//
//	Seeds are pushed in the given order; when a node is visited its
//	successors are pushed in ascending index order, so they pop in
//	descending order. The resulting Order is well defined but not canonical.
//	Callers that only need membership or a count can treat it as a set.
//
// Complexity:
//
//   - Time:   O(V²) on the adjacency matrix (each visited node scans one row).
//   - Memory: O(V + E) worst case for the stack (a node can be pushed once
//     per incoming edge, plus once per seed); O(V) for the visited marks.
//
// Options:
//
//   - WithOnVisit(fn)          hook run when a node is first visited; error aborts.
//   - WithFilterNeighbor(fn)   skip edges for which fn(from, to) is false.
//
// Errors:
//
//   - ErrGraphNil                  if g is nil.
//   - core.ErrIndexOutOfRange      if a seed is outside [0, n).
//   - any error returned by OnVisit, wrapped.
package dfs

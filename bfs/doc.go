// Package bfs computes detonation rounds over a minefield core.Graph.
//
// What
//
//   - Round 0 is the set of seed mines. Round k+1 holds every mine first
//     reached by an edge out of round k.
//   - Returns a Result containing:
//   - Order:  visit sequence, round by round
//   - Depth:  round of each mine, -1 if it never detonates
//   - Parent: the mine that triggered each one, -1 for seeds and misses
//   - Hooks: OnVisit (may abort with an error).
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	Seeds are enqueued in the given order and successors in ascending index
//	order, so the visit sequence is reproducible. The set of mines reached
//	equals dfs.Reachable for the same seeds; only the order differs.
//
// Complexity (V = number of mines)
//
//   - Time:   O(V²)  (one matrix row scan per visited mine)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.Rounds(g, []int{3},
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(2),
//	)
//	for k, layer := range res.Layers() { ... }
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - core.ErrIndexOutOfRange (wrapped) for a bad seed.
//   - ErrOptionViolation  for an invalid Option (e.g. negative MaxDepth).
//   - Context errors and wrapped OnVisit errors.
package bfs

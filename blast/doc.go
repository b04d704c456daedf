// Package blast answers chain-reaction questions on a minefield graph.
//
// What:
//
//   - Explode(g, x, y, r): a rocket hits circle (x, y, r); every mine whose
//     center lies inside it is a seed, and the result is every mine reached
//     from those seeds.
//   - Efficiency(g, i): how many mines go off when mine i alone detonates
//     (itself included).
//   - Efficiencies(g) / MaxEfficiencyIndex(g): the ranking of all mines and
//     the first one with the largest chain reaction.
//   - ChainArea / MaxEfficiencyArea: Monte Carlo estimate of the ground
//     covered by the union of a chain reaction's blast circles.
//
// Edge cases:
//
//   - A zero-radius rocket seeds every mine whose center coincides exactly
//     with (x, y). Several mines sharing one center are all seeded.
//   - ChainArea uses that same rocket at the mine's own center, so mines
//     stacked on the same point join the chain.
//   - Ties in MaxEfficiencyIndex go to the lowest index.
//
// Errors:
//
//   - ErrEmptyGraph              ranking or area on a graph with no mines.
//   - core.ErrIndexOutOfRange    bad mine index.
//   - dfs.ErrGraphNil            nil graph.
//   - montecarlo errors          propagated from the estimator.
package blast

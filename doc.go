// Package minefield models a field of circular mines and the chain
// reactions between them.
//
// A mine detonates every other mine whose center lies inside its own blast
// circle. The relation is directed: a large mine can set off a small
// neighbor that cannot reach back.
//
// Packages:
//
//	matrix/     square boolean adjacency matrix with a single resize routine
//	core/       Node geometry and the Graph store (create, add, remove, place)
//	dfs/        explicit-stack reachability
//	bfs/        detonation rounds
//	blast/      explode, efficiency and max-efficiency queries, chain area
//	montecarlo/ union-of-circles area estimation, seeded and parallel
//	loader/     plain-text minefield files
//	config/     YAML configuration with XDG lookup
//	metrics/    Prometheus counters for the CLI
//	cmd/minefield  command-line front end
//
// Quick start:
//
//	g, _ := loader.Load("field.txt")
//	best, _ := blast.MaxEfficiencyIndex(g)
//	area, _ := blast.MaxEfficiencyArea(g, montecarlo.WithSeed(1))
package minefield

// Package pathviz is the engine behind a grid pathfinding visualizer:
// a rectangular board of walls, a Start and an End, and a uniform-cost
// shortest-path search that records the order in which it explores cells.
//
// 🚀 What is in the box?
//
//	grid/        the board: cells, walls, Start/End roles, neighbors,
//	             search bookkeeping, text pictures and reachability
//	search/      Dijkstra with unit weights and a deterministic row-major
//	             tie-break; scan and heap frontiers give identical output
//	playback/    turns a search result into a timed animation timeline
//	board/       in-memory board store with IDs, plus YAML/text board files
//	api/         gin HTTP handlers over the board store
//	cmd/pathviz  cobra CLI: one-shot terminal search or `serve`
//
// ✨ Guarantees
//
//   - Same board, same result: VisitedOrder and Path are reproducible.
//   - Walls are never visited and never appear on a path.
//   - Path is empty if and only if End cannot be reached.
//
// Quick start:
//
//	g := grid.NewDefault()
//	_ = g.ToggleWall(7, 10)
//	res, _ := search.Solve(g)
//	fmt.Print(g.Render(res.VisitedOrder, res.Path))
package pathviz

// Package search runs a uniform-cost shortest-path search over a grid.Grid
// and returns the two sequences a visualizer replays: the order in which
// cells are finalized, and the reconstructed Start→End path.
//
// Overview:
//
//   - Every edge weighs 1, so the search is Dijkstra's algorithm behaving like
//     breadth-first search. It is still implemented as repeated extract-min
//     over tentative distances because the extraction order is the product:
//     VisitedOrder drives the animation and must be reproducible bit for bit.
//   - Ties on distance are broken by row-major order (row, then column): of
//     two cells at the same distance, the one enumerated first is finalized
//     first.
//   - Walls are never finalized, never recorded and never relaxed from.
//   - The search stops as soon as End is finalized, or as soon as the minimum
//     remaining distance is Infinity (everything left is unreachable).
//
// Frontiers:
//
//   - FrontierScan (default): the frontier is every cell; each step scans all
//     remaining cells in row-major order for the minimum. O(V²) on a V-cell
//     board, trivially correct with respect to the tie-break.
//   - FrontierHeap: a container/heap min-heap keyed by (distance, row-major
//     index) with lazy decrease-key. O(V log V), same output as FrontierScan.
//
// Path reconstruction follows predecessor links back from End. It never
// trusts the links blindly: a visited set and a step bound of Rows×Cols
// guard against cycles, and a chain that does not end at Start yields an
// empty path.
//
// Errors (sentinel):
//
//   - ErrNilGrid                    if the grid pointer is nil.
//   - grid.ErrOutOfBounds           if start or end lies outside the board.
//   - grid.ErrInvalidConfiguration  if start or end is a wall.
//
// All validation happens before any cell is touched, so a failed call leaves
// the grid exactly as it was. An unreachable End is not an error: the Result
// simply has an empty Path.
//
// Example usage:
//
//	g := grid.NewDefault()
//	_ = g.ToggleWall(7, 15)
//	res, err := search.Solve(g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(res.VisitedOrder), len(res.Path))
//
// Thread safety: Run mutates the search fields of the grid it is given.
// Concurrent searches need independently owned grids.
package search

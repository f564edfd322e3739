package search

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pathviz/grid"
)

// Run searches g from start to end and returns the finalization order and
// the shortest path.
//
// Preconditions and validation (in order, before any mutation):
//  1. g must be non-nil (ErrNilGrid).
//  2. start and end must lie on the board (grid.ErrOutOfBounds).
//  3. start and end must not be walls (grid.ErrInvalidConfiguration).
//
// Run resets the search state of g itself, so results never depend on a
// previous run. start and end need not be the grid's own Start and End
// roles; start == end yields VisitedOrder == Path == [start].
//
// Complexity:
//
//   - FrontierScan: O(V²) time, O(V) space.
//   - FrontierHeap: O(V log V) time, O(V) space.
func Run(g *grid.Grid, start, end grid.Coord, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validate before touching the grid.
	if g == nil {
		return Result{}, ErrNilGrid
	}
	for _, at := range []grid.Coord{start, end} {
		c, err := g.Cell(at.Row, at.Col)
		if err != nil {
			return Result{}, err
		}
		if c.Wall {
			return Result{}, fmt.Errorf("%w: %v is a wall", grid.ErrInvalidConfiguration, at)
		}
	}

	// 2) Reset, seed and drain the frontier.
	r := &runner{
		g:       g,
		options: cfg,
		start:   g.Index(start.Row, start.Col),
		end:     g.Index(end.Row, end.Col),
		res: Result{
			VisitedOrder: make([]grid.Coord, 0, g.Len()),
			Path:         []grid.Coord{},
		},
	}
	r.init()
	r.process()
	// 3) Walk predecessors back from End.
	r.res.Path = r.reconstruct()

	return r.res, nil
}

// Solve runs the search between the grid's own Start and End cells.
func Solve(g *grid.Grid, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	return Run(g, g.Start(), g.End(), opts...)
}

// runner holds the mutable state for a single search.
type runner struct {
	g          *grid.Grid
	options    Options
	start, end int // row-major indices
	front      frontier
	res        Result
}

// init resets the grid, seeds the start distance and builds the frontier.
func (r *runner) init() {
	r.g.ResetSearchState()
	r.g.CellAt(r.start).Distance = 0

	switch r.options.Frontier {
	case FrontierHeap:
		r.front = newHeapFrontier(r.g, r.start)
	default:
		r.front = newScanFrontier(r.g)
	}
}

// process is the extract-min loop. It stops when End is finalized, when the
// next cell is unreachable, or when the frontier runs dry.
func (r *runner) process() {
	for {
		// 1) Extract the closest remaining cell.
		idx, ok := r.front.pop()
		if !ok {
			return
		}
		c := r.g.CellAt(idx)

		// 2) Walls leave the frontier without being finalized.
		if c.Wall {
			continue
		}
		// 3) Everything still in the frontier is at Infinity too.
		if c.Distance == grid.Infinity {
			return
		}

		// 4) Finalize and report.
		c.Visited = true
		r.res.VisitedOrder = append(r.res.VisitedOrder, c.Coord)
		r.options.OnVisit(c.Coord, c.Distance)

		// 5) End is final, so its predecessor chain is too.
		if idx == r.end {
			return
		}
		r.relax(idx)
	}
}

// relax offers distance+1 to every non-visited neighbor of idx and records
// idx as predecessor on strict improvement.
func (r *runner) relax(idx int) {
	c := r.g.CellAt(idx)
	// idx came out of the frontier, so it is on the board.
	neighbors, _ := r.g.Neighbors(c.Row, c.Col)
	candidate := c.Distance + 1
	for _, n := range neighbors {
		// 1) Finalized cells keep their distance.
		if n.Visited {
			continue
		}
		// 2) Only a strict improvement moves the predecessor.
		if candidate >= n.Distance {
			continue
		}
		// 3) Record and tell the frontier.
		n.Distance = candidate
		n.Predecessor = idx
		r.front.update(r.g.Index(n.Row, n.Col))
	}
}

// reconstruct walks predecessor links back from End and returns the path in
// Start→End order. It returns an empty path when End was never finalized,
// when the chain does not terminate at Start, or when it loops.
func (r *runner) reconstruct() []grid.Coord {
	if !r.g.CellAt(r.end).Visited {
		return []grid.Coord{}
	}

	limit := r.g.Len()
	seen := mapset.New[int]()
	path := make([]grid.Coord, 0)
	at := r.end
	for steps := 0; ; steps++ {
		if steps >= limit || seen.Has(at) {
			return []grid.Coord{}
		}
		seen.Put(at)
		c := r.g.CellAt(at)
		path = append(path, c.Coord)
		if !c.HasPredecessor() {
			break
		}
		at = c.Predecessor
	}
	if at != r.start {
		return []grid.Coord{}
	}

	// reverse to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

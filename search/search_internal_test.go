package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/grid"
)

// newTestRunner builds a runner over a 1×4 board without running the search,
// so predecessor links can be forged by hand.
func newTestRunner(t *testing.T) (*runner, *grid.Grid) {
	t.Helper()
	g, err := grid.New(1, 4, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 0, Col: 3})
	require.NoError(t, err)
	return &runner{g: g, options: DefaultOptions(), start: 0, end: 3}, g
}

func TestReconstruct_EndNotVisited(t *testing.T) {
	r, _ := newTestRunner(t)
	assert.Empty(t, r.reconstruct())
}

func TestReconstruct_Cycle(t *testing.T) {
	r, g := newTestRunner(t)
	g.CellAt(3).Visited = true
	g.CellAt(3).Predecessor = 2
	g.CellAt(2).Predecessor = 1
	g.CellAt(1).Predecessor = 2

	assert.Empty(t, r.reconstruct(), "a predecessor cycle must not be followed forever")
}

func TestReconstruct_ChainMissesStart(t *testing.T) {
	r, g := newTestRunner(t)
	g.CellAt(3).Visited = true
	g.CellAt(3).Predecessor = 2

	assert.Empty(t, r.reconstruct())
}

func TestReconstruct_EndWithoutPredecessor(t *testing.T) {
	r, g := newTestRunner(t)
	g.CellAt(3).Visited = true

	assert.Empty(t, r.reconstruct())
}

func TestReconstruct_Chain(t *testing.T) {
	r, g := newTestRunner(t)
	g.CellAt(3).Visited = true
	g.CellAt(3).Predecessor = 2
	g.CellAt(2).Predecessor = 1
	g.CellAt(1).Predecessor = 0

	want := []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}}
	assert.Equal(t, want, r.reconstruct())
}

func TestNodePQ_TieBreakByIndex(t *testing.T) {
	g := grid.NewDefault()
	f := newHeapFrontier(g, 40)
	g.CellAt(40).Distance = 0
	for _, idx := range []int{90, 12, 61, 5} {
		g.CellAt(idx).Distance = 3
		f.update(idx)
	}

	var got []int
	for {
		idx, ok := f.pop()
		if !ok {
			break
		}
		got = append(got, idx)
		g.CellAt(idx).Visited = true
	}
	assert.Equal(t, []int{40, 5, 12, 61, 90}, got)
}

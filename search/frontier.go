package search

import (
	"container/heap"

	"github.com/katalvlaran/pathviz/grid"
)

// frontier yields the row-major index of the next cell to finalize.
//
// pop returns the remaining cell with minimum distance, ties broken by the
// lowest index, and removes it. ok is false when nothing is left to offer.
// update is called after relaxation lowers the distance of idx.
type frontier interface {
	pop() (idx int, ok bool)
	update(idx int)
}

// scanFrontier holds every not-yet-extracted cell in row-major order and
// finds the minimum with a full scan. Cells at Infinity and walls are
// extracted like any other; the runner decides what to do with them.
type scanFrontier struct {
	g         *grid.Grid
	remaining []int
}

func newScanFrontier(g *grid.Grid) *scanFrontier {
	remaining := make([]int, g.Len())
	for i := range remaining {
		remaining[i] = i
	}
	return &scanFrontier{g: g, remaining: remaining}
}

func (f *scanFrontier) pop() (int, bool) {
	if len(f.remaining) == 0 {
		return 0, false
	}
	best := 0
	bestDist := f.g.CellAt(f.remaining[0]).Distance
	for k := 1; k < len(f.remaining); k++ {
		// strict < keeps the earliest row-major cell on ties
		if d := f.g.CellAt(f.remaining[k]).Distance; d < bestDist {
			best, bestDist = k, d
		}
	}
	idx := f.remaining[best]
	f.remaining = append(f.remaining[:best], f.remaining[best+1:]...)
	return idx, true
}

// update is a no-op: the scan reads distances straight from the grid.
func (f *scanFrontier) update(int) {}

// heapFrontier keeps only reached cells, in a min-heap ordered by
// (distance, index). Unreached cells are never pushed, so an empty heap is
// the same stopping point as the scan frontier extracting an Infinity cell.
type heapFrontier struct {
	g  *grid.Grid
	pq nodePQ
}

func newHeapFrontier(g *grid.Grid, start int) *heapFrontier {
	f := &heapFrontier{g: g, pq: make(nodePQ, 0, g.Len())}
	heap.Init(&f.pq)
	heap.Push(&f.pq, &nodeItem{idx: start, dist: 0})
	return f
}

func (f *heapFrontier) pop() (int, bool) {
	for f.pq.Len() > 0 {
		item := heap.Pop(&f.pq).(*nodeItem)
		c := f.g.CellAt(item.idx)
		// Skip stale entries left behind by lazy decrease-key.
		if c.Visited || item.dist != c.Distance {
			continue
		}
		return item.idx, true
	}
	return 0, false
}

func (f *heapFrontier) update(idx int) {
	heap.Push(&f.pq, &nodeItem{idx: idx, dist: f.g.CellAt(idx).Distance})
}

// nodeItem is a heap entry: a cell index and the distance it was pushed with.
type nodeItem struct {
	idx  int
	dist int
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then idx.
// The idx tie-break reproduces the row-major order of the scan frontier.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].idx < pq[j].idx
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

package grid

import "github.com/zyedidia/generic/mapset"

// Reachable collects every open cell orthogonally connected to from,
// including from itself. Walls are never part of the result; a walled
// from yields an empty set.
// Returns ErrOutOfBounds if from lies outside the board.
//
// Time:   O(Rows×Cols).
// Memory: O(Rows×Cols) for the set and the queue.
func (g *Grid) Reachable(from Coord) (mapset.Set[Coord], error) {
	seen := mapset.New[Coord]()
	if !g.InBounds(from.Row, from.Col) {
		return seen, g.outOfBounds(from.Row, from.Col)
	}
	if g.cells[g.Index(from.Row, from.Col)].Wall {
		return seen, nil
	}

	queue := []Coord{from}
	seen.Put(from)
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range neighborOffsets {
			v := Coord{Row: u.Row + d[0], Col: u.Col + d[1]}
			if !g.InBounds(v.Row, v.Col) || g.cells[g.Index(v.Row, v.Col)].Wall {
				continue
			}
			if !seen.Has(v) {
				seen.Put(v)
				queue = append(queue, v)
			}
		}
	}
	return seen, nil
}

package grid

import "fmt"

// New allocates a rows×cols board with the given Start and End.
// Every cell starts open, with Distance=Infinity, Visited=false and no
// predecessor.
// Returns ErrInvalidConfiguration if rows or cols is not positive, if
// rows×cols exceeds MaxCells, if start == end, or if either lies outside
// the board.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int, start, end Coord) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidConfiguration, rows, cols)
	}
	// Divide instead of multiplying so huge dimensions cannot overflow.
	if rows > MaxCells/cols {
		return nil, fmt.Errorf("%w: dimensions %dx%d exceed %d cells", ErrInvalidConfiguration, rows, cols, MaxCells)
	}
	g := &Grid{rows: rows, cols: cols, start: start, end: end}
	if !g.InBounds(start.Row, start.Col) {
		return nil, fmt.Errorf("%w: start %v outside %dx%d board", ErrInvalidConfiguration, start, rows, cols)
	}
	if !g.InBounds(end.Row, end.Col) {
		return nil, fmt.Errorf("%w: end %v outside %dx%d board", ErrInvalidConfiguration, end, rows, cols)
	}
	if start == end {
		return nil, fmt.Errorf("%w: start and end are both %v", ErrInvalidConfiguration, start)
	}

	g.cells = make([]Cell, rows*cols)
	for i := range g.cells {
		row, col := g.Coordinate(i)
		g.cells[i] = Cell{
			Coord:       Coord{Row: row, Col: col},
			Distance:    Infinity,
			Predecessor: NoPredecessor,
		}
	}
	g.cells[g.Index(start.Row, start.Col)].Role = RoleStart
	g.cells[g.Index(end.Row, end.Col)].Role = RoleEnd

	return g, nil
}

// NewDefault returns the DefaultRows×DefaultCols board with DefaultStart
// and DefaultEnd.
func NewDefault() *Grid {
	g, err := New(DefaultRows, DefaultCols, DefaultStart, DefaultEnd)
	if err != nil {
		panic(err) // defaults are valid by construction
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Start returns the Start coordinate.
func (g *Grid) Start() Coord { return g.start }

// End returns the End coordinate.
func (g *Grid) End() Coord { return g.end }

// Len returns the number of cells, Rows×Cols.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (row,col) lies within the board.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Index maps (row,col) to its row-major index: row*Cols + col.
// The caller must check InBounds first.
// Complexity: O(1).
func (g *Grid) Index(row, col int) int {
	return row*g.cols + col
}

// Coordinate converts a row-major index back to (row,col).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.cols, idx % g.cols
}

// Cell returns the cell at (row,col), or ErrOutOfBounds.
// The returned pointer aliases the board.
func (g *Grid) Cell(row, col int) (*Cell, error) {
	if !g.InBounds(row, col) {
		return nil, g.outOfBounds(row, col)
	}
	return &g.cells[g.Index(row, col)], nil
}

// CellAt returns the cell stored at row-major index idx.
// It panics if idx is outside [0, Len()).
func (g *Grid) CellAt(idx int) *Cell {
	return &g.cells[idx]
}

// ToggleWall flips the wall flag at (row,col).
// It is a no-op on the Start and End cells.
// Returns ErrOutOfBounds for coordinates outside the board.
func (g *Grid) ToggleWall(row, col int) error {
	c, err := g.Cell(row, col)
	if err != nil {
		return err
	}
	if c.Role != RoleNormal {
		return nil
	}
	c.Wall = !c.Wall
	return nil
}

// SetWall sets the wall flag at (row,col) to wall, for drag painting.
// Like ToggleWall it never touches the Start and End cells.
func (g *Grid) SetWall(row, col int, wall bool) error {
	c, err := g.Cell(row, col)
	if err != nil {
		return err
	}
	if c.Role != RoleNormal {
		return nil
	}
	c.Wall = wall
	return nil
}

// ResetSearchState sets Distance=Infinity, Visited=false and
// Predecessor=NoPredecessor on every cell. Walls and roles are kept.
// Complexity: O(Rows×Cols).
func (g *Grid) ResetSearchState() {
	for i := range g.cells {
		c := &g.cells[i]
		c.Distance = Infinity
		c.Visited = false
		c.Predecessor = NoPredecessor
	}
}

// Clear removes every wall and resets search state, leaving Start and End
// where they are.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].Wall = false
	}
	g.ResetSearchState()
}

// Neighbors returns the in-bounds orthogonal neighbors of (row,col) in the
// fixed order up, down, left, right. Walls are included; filtering is the
// caller's business.
// Returns ErrOutOfBounds for coordinates outside the board.
// Complexity: O(1).
func (g *Grid) Neighbors(row, col int) ([]*Cell, error) {
	if !g.InBounds(row, col) {
		return nil, g.outOfBounds(row, col)
	}
	out := make([]*Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		nr, nc := row+d[0], col+d[1]
		if !g.InBounds(nr, nc) {
			continue
		}
		out = append(out, &g.cells[g.Index(nr, nc)])
	}
	return out, nil
}

// Walls lists wall coordinates in row-major order.
func (g *Grid) Walls() []Coord {
	var walls []Coord
	for i := range g.cells {
		if g.cells[i].Wall {
			walls = append(walls, g.cells[i].Coord)
		}
	}
	return walls
}

func (g *Grid) outOfBounds(row, col int) error {
	return fmt.Errorf("%w: (%d,%d) outside %dx%d board", ErrOutOfBounds, row, col, g.rows, g.cols)
}

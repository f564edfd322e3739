package grid

import (
	"fmt"
	"math"
)

// Default board geometry used by the visualizer.
const (
	DefaultRows = 15
	DefaultCols = 30
)

// MaxCells bounds Rows×Cols for any board New will allocate.
const MaxCells = 1 << 25

// Infinity marks a distance that has not been reached yet.
const Infinity = math.MaxInt

// NoPredecessor marks a cell without a predecessor link.
const NoPredecessor = -1

var (
	// DefaultStart is the Start cell of the default board.
	DefaultStart = Coord{Row: 7, Col: 5}
	// DefaultEnd is the End cell of the default board.
	DefaultEnd = Coord{Row: 7, Col: 25}
)

// Coord addresses a cell by 0-indexed row and column.
type Coord struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// String formats c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Role tells whether a cell is the Start, the End, or an ordinary cell.
type Role int

const (
	// RoleNormal is any cell that is neither Start nor End.
	RoleNormal Role = iota
	// RoleStart marks the single Start cell.
	RoleStart
	// RoleEnd marks the single End cell.
	RoleEnd
)

// String returns a lower-case role name.
func (r Role) String() string {
	switch r {
	case RoleStart:
		return "start"
	case RoleEnd:
		return "end"
	default:
		return "normal"
	}
}

// Cell is one board position.
//
// Wall and Role are static and only change through Grid methods.
// Distance, Visited and Predecessor belong to the search engine while a run
// is in flight and are reset by Grid.ResetSearchState.
type Cell struct {
	Coord
	Wall        bool
	Role        Role
	Distance    int  // Infinity until reached
	Visited     bool // finalized by the search
	Predecessor int  // row-major index of the previous cell, or NoPredecessor
}

// HasPredecessor reports whether c links back to another cell.
func (c *Cell) HasPredecessor() bool {
	return c.Predecessor != NoPredecessor
}

// Grid is a Rows×Cols board with exactly one Start and one End.
// cells are stored in row-major order: index = row*cols + col.
type Grid struct {
	rows, cols int
	cells      []Cell
	start, end Coord
}

// neighborOffsets lists (dRow, dCol) for up, down, left, right.
// The order is observable through Neighbors and drives search tie-breaking.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

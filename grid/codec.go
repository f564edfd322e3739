package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Board picture symbols.
const (
	SymbolOpen    = '.'
	SymbolWall    = '#'
	SymbolStart   = 'S'
	SymbolEnd     = 'E'
	SymbolVisited = 'o'
	SymbolPath    = '*'
)

// Parse reads a board picture, one line per row, using '.' for open cells,
// '#' for walls, 'S' for Start and 'E' for End. Blank lines are skipped.
// Returns ErrMalformedBoard for ragged rows, unknown symbols, or a picture
// without exactly one 'S' and one 'E'.
func Parse(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBoard, err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedBoard)
	}

	cols := len(lines[0])
	var starts, ends []Coord
	var walls []Coord
	for row, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrMalformedBoard, row, len(line), cols)
		}
		for col, ch := range []byte(line) {
			switch ch {
			case SymbolOpen:
			case SymbolWall:
				walls = append(walls, Coord{Row: row, Col: col})
			case SymbolStart:
				starts = append(starts, Coord{Row: row, Col: col})
			case SymbolEnd:
				ends = append(ends, Coord{Row: row, Col: col})
			default:
				return nil, fmt.Errorf("%w: unexpected %q at (%d,%d)", ErrMalformedBoard, ch, row, col)
			}
		}
	}
	if len(starts) != 1 || len(ends) != 1 {
		return nil, fmt.Errorf("%w: want exactly one %c and one %c, got %d and %d",
			ErrMalformedBoard, SymbolStart, SymbolEnd, len(starts), len(ends))
	}

	g, err := New(len(lines), cols, starts[0], ends[0])
	if err != nil {
		return nil, err
	}
	for _, w := range walls {
		g.cells[g.Index(w.Row, w.Col)].Wall = true
	}
	return g, nil
}

// String renders the board picture accepted by Parse.
func (g *Grid) String() string {
	return g.Render(nil, nil)
}

// Render draws the board with visited cells marked 'o' and path cells
// marked '*'. Start and End keep their own symbols. Coordinates outside
// the board are ignored.
func (g *Grid) Render(visited, path []Coord) string {
	picture := make([]byte, len(g.cells))
	for i := range g.cells {
		c := &g.cells[i]
		switch {
		case c.Role == RoleStart:
			picture[i] = SymbolStart
		case c.Role == RoleEnd:
			picture[i] = SymbolEnd
		case c.Wall:
			picture[i] = SymbolWall
		default:
			picture[i] = SymbolOpen
		}
	}
	mark := func(coords []Coord, symbol byte) {
		for _, c := range coords {
			if !g.InBounds(c.Row, c.Col) {
				continue
			}
			i := g.Index(c.Row, c.Col)
			if g.cells[i].Role == RoleNormal {
				picture[i] = symbol
			}
		}
	}
	mark(visited, SymbolVisited)
	mark(path, SymbolPath)

	var b strings.Builder
	b.Grow(len(picture) + g.rows)
	for row := 0; row < g.rows; row++ {
		b.Write(picture[row*g.cols : (row+1)*g.cols])
		b.WriteByte('\n')
	}
	return b.String()
}

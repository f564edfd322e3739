package board

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathviz/grid"
)

// File is the YAML form of a board.
type File struct {
	Rows  int          `yaml:"rows"`
	Cols  int          `yaml:"cols"`
	Start grid.Coord   `yaml:"start"`
	End   grid.Coord   `yaml:"end"`
	Walls []grid.Coord `yaml:"walls"`
}

// Grid builds the board described by f. Walls on Start or End are ignored,
// as everywhere else. Boards larger than maxCells are rejected with
// grid.ErrInvalidConfiguration; maxCells <= 0 disables that check.
func (f File) Grid(maxCells int) (*grid.Grid, error) {
	if err := checkSize(f.Rows, f.Cols, maxCells); err != nil {
		return nil, err
	}
	g, err := grid.New(f.Rows, f.Cols, f.Start, f.End)
	if err != nil {
		return nil, err
	}
	for _, w := range f.Walls {
		if err := g.SetWall(w.Row, w.Col, true); err != nil {
			return nil, fmt.Errorf("%w: wall %v: %v", grid.ErrMalformedBoard, w, err)
		}
	}
	return g, nil
}

// FileOf captures g in its YAML form.
func FileOf(g *grid.Grid) File {
	return File{
		Rows:  g.Rows(),
		Cols:  g.Cols(),
		Start: g.Start(),
		End:   g.End(),
		Walls: g.Walls(),
	}
}

// Decode reads a board from data. Files ending in .yaml or .yml are YAML;
// anything else is a text picture. maxCells works as in File.Grid.
func Decode(name string, data []byte, maxCells int) (*grid.Grid, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		var f File
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", grid.ErrMalformedBoard, name, err)
		}
		return f.Grid(maxCells)
	default:
		g, err := grid.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		if err := checkSize(g.Rows(), g.Cols(), maxCells); err != nil {
			return nil, err
		}
		return g, nil
	}
}

// Load reads the board file at path, capped at maxCells cells.
func Load(path string, maxCells int) (*grid.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("board: read %s: %w", path, err)
	}
	return Decode(path, data, maxCells)
}

// Encode writes g as YAML.
func Encode(g *grid.Grid) ([]byte, error) {
	return yaml.Marshal(FileOf(g))
}

// checkSize rejects a rows×cols board above maxCells. Non-positive
// dimensions are left for grid.New to report.
func checkSize(rows, cols, maxCells int) error {
	if maxCells <= 0 || rows <= 0 || cols <= 0 {
		return nil
	}
	if rows > maxCells/cols {
		return fmt.Errorf("%w: %dx%d board exceeds the %d cell limit", grid.ErrInvalidConfiguration, rows, cols, maxCells)
	}
	return nil
}

package board_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/board"
	"github.com/katalvlaran/pathviz/grid"
)

const yamlBoard = `
rows: 3
cols: 4
start: {row: 0, col: 0}
end: {row: 2, col: 3}
walls:
  - {row: 0, col: 2}
  - {row: 1, col: 2}
  - {row: 0, col: 0}
`

func TestDecode_YAML(t *testing.T) {
	g, err := board.Decode("maze.yaml", []byte(yamlBoard), 0)
	require.NoError(t, err)
	assert.Equal(t, "S.#.\n..#.\n...E\n", g.String(), "wall on Start is ignored")
}

func TestDecode_Text(t *testing.T) {
	g, err := board.Decode("maze.txt", []byte("S.#.\n..#.\n...E\n"), board.DefaultMaxCells)
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{{Row: 0, Col: 2}, {Row: 1, Col: 2}}, g.Walls())
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name, file, data string
		want             error
	}{
		{"BadYAML", "b.yml", "rows: [", grid.ErrMalformedBoard},
		{"WallOutside", "b.yaml", "rows: 2\ncols: 2\nstart: {row: 0, col: 0}\nend: {row: 1, col: 1}\nwalls: [{row: 5, col: 5}]\n", grid.ErrMalformedBoard},
		{"SameEndpoints", "b.yaml", "rows: 2\ncols: 2\nstart: {row: 0, col: 0}\nend: {row: 0, col: 0}\n", grid.ErrInvalidConfiguration},
		{"BadText", "b.txt", "S?E\n", grid.ErrMalformedBoard},
		{"YAMLTooLarge", "b.yaml", "rows: 4\ncols: 3\nstart: {row: 0, col: 0}\nend: {row: 3, col: 2}\n", grid.ErrInvalidConfiguration},
		{"YAMLOverflow", "b.yaml", "rows: 4294967296\ncols: 4294967296\nstart: {row: 0, col: 0}\nend: {row: 0, col: 1}\n", grid.ErrInvalidConfiguration},
		{"TextTooLarge", "b.txt", "S.....\n.....E\n", grid.ErrInvalidConfiguration},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := board.Decode(tc.file, []byte(tc.data), 10)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestEncodeLoad_RoundTrip(t *testing.T) {
	g := grid.NewDefault()
	require.NoError(t, g.ToggleWall(3, 4))
	require.NoError(t, g.ToggleWall(10, 20))

	data, err := board.Encode(g)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "board.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	back, err := board.Load(path, board.DefaultMaxCells)
	require.NoError(t, err)
	assert.Equal(t, g.String(), back.String())
	assert.Equal(t, board.FileOf(g), board.FileOf(back))
}

func TestLoad_Missing(t *testing.T) {
	_, err := board.Load(filepath.Join(t.TempDir(), "nope.txt"), 0)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileGrid_NoLimit(t *testing.T) {
	f := board.File{Rows: 200, Cols: 200, Start: grid.Coord{}, End: grid.Coord{Row: 199, Col: 199}}
	_, err := f.Grid(board.DefaultMaxCells)
	assert.ErrorIs(t, err, grid.ErrInvalidConfiguration)

	g, err := f.Grid(0)
	require.NoError(t, err)
	assert.Equal(t, 200*200, g.Len())
}

package board_test

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/board"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

func newStore(t *testing.T) (*board.Store, *test.Hook) {
	t.Helper()
	log, hook := test.NewNullLogger()
	return board.NewStore(board.DefaultSettings(), log), hook
}

func TestStore_CreateDefaults(t *testing.T) {
	s, hook := newStore(t)
	v, err := s.Create(board.Spec{})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, v.ID)
	assert.Equal(t, grid.DefaultRows, v.Rows)
	assert.Equal(t, grid.DefaultCols, v.Cols)
	assert.Equal(t, grid.DefaultStart, v.Start)
	assert.Equal(t, grid.DefaultEnd, v.End)
	assert.NotNil(t, v.Walls)
	assert.Empty(t, v.Walls)
	assert.Equal(t, 1, s.Len())

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "board created", hook.LastEntry().Message)
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
}

func TestStore_CreateInvalid(t *testing.T) {
	s, _ := newStore(t)
	same := grid.Coord{Row: 1, Col: 1}
	_, err := s.Create(board.Spec{Rows: 3, Cols: 3, Start: &same, End: &same})
	assert.ErrorIs(t, err, grid.ErrInvalidConfiguration)
	assert.Equal(t, 0, s.Len())
}

func TestStore_CreateTooLarge(t *testing.T) {
	s, _ := newStore(t)
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"OverLimit", 101, 100},
		{"Huge", 100000, 100000},
		{"Overflow", 1 << 32, 1 << 32},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Create(board.Spec{Rows: tc.rows, Cols: tc.cols})
			assert.ErrorIs(t, err, grid.ErrInvalidConfiguration)
		})
	}
	assert.Equal(t, 0, s.Len())

	v, err := s.Create(board.Spec{Rows: 100, Cols: 100})
	require.NoError(t, err, "exactly DefaultMaxCells is allowed")
	assert.Equal(t, 100, v.Rows)
}

func TestStore_NotFound(t *testing.T) {
	s, _ := newStore(t)
	id := uuid.New()

	_, err := s.Get(id)
	assert.ErrorIs(t, err, board.ErrNotFound)
	_, err = s.ToggleWall(id, grid.Coord{})
	assert.ErrorIs(t, err, board.ErrNotFound)
	_, err = s.Clear(id)
	assert.ErrorIs(t, err, board.ErrNotFound)
	_, err = s.Search(id)
	assert.ErrorIs(t, err, board.ErrNotFound)
	assert.ErrorIs(t, s.Delete(id), board.ErrNotFound)
}

func TestStore_WallsAndClear(t *testing.T) {
	s, _ := newStore(t)
	v, err := s.Create(board.Spec{})
	require.NoError(t, err)

	v, err = s.ToggleWall(v.ID, grid.Coord{Row: 7, Col: 10})
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{{Row: 7, Col: 10}}, v.Walls)

	v, err = s.ToggleWall(v.ID, grid.DefaultStart)
	require.NoError(t, err)
	assert.Len(t, v.Walls, 1, "start cannot become a wall")

	_, err = s.ToggleWall(v.ID, grid.Coord{Row: 99, Col: 0})
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)

	v, err = s.SetWall(v.ID, grid.Coord{Row: 7, Col: 11}, true)
	require.NoError(t, err)
	assert.Len(t, v.Walls, 2)

	v, err = s.SetWall(v.ID, grid.Coord{Row: 7, Col: 11}, true)
	require.NoError(t, err)
	assert.Len(t, v.Walls, 2, "painting twice keeps one wall")

	v, err = s.Clear(v.ID)
	require.NoError(t, err)
	assert.Empty(t, v.Walls)
}

func TestStore_Search(t *testing.T) {
	s, hook := newStore(t)
	v, err := s.Create(board.Spec{})
	require.NoError(t, err)

	out, err := s.Search(v.ID)
	require.NoError(t, err)
	assert.True(t, out.Found())
	assert.Len(t, out.Path, 21)
	assert.Len(t, out.Timeline.Frames, len(out.VisitedOrder)+len(out.Path))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "search finished", entry.Message)
	assert.Equal(t, true, entry.Data["found"])
	assert.Equal(t, 21, entry.Data["path"])
}

// TestStore_SearchFrontierSetting: the configured frontier is used and
// yields the same outcome as the default.
func TestStore_SearchFrontierSetting(t *testing.T) {
	settings := board.DefaultSettings()
	settings.Frontier = search.FrontierHeap
	heapStore := board.NewStore(settings, nil)
	scanStore, _ := newStore(t)

	a, err := heapStore.Create(board.Spec{})
	require.NoError(t, err)
	b, err := scanStore.Create(board.Spec{})
	require.NoError(t, err)
	for _, c := range []grid.Coord{{Row: 6, Col: 12}, {Row: 7, Col: 12}, {Row: 8, Col: 12}} {
		_, err = heapStore.ToggleWall(a.ID, c)
		require.NoError(t, err)
		_, err = scanStore.ToggleWall(b.ID, c)
		require.NoError(t, err)
	}

	ha, err := heapStore.Search(a.ID)
	require.NoError(t, err)
	sb, err := scanStore.Search(b.ID)
	require.NoError(t, err)
	assert.Equal(t, sb.Result, ha.Result)
}

func TestStore_Delete(t *testing.T) {
	s, _ := newStore(t)
	v, err := s.Create(board.Spec{})
	require.NoError(t, err)
	require.NoError(t, s.Delete(v.ID))
	_, err = s.Get(v.ID)
	assert.ErrorIs(t, err, board.ErrNotFound)
}

// TestStore_ConcurrentBoards edits and searches several boards at once.
// Run with -race.
func TestStore_ConcurrentBoards(t *testing.T) {
	s, _ := newStore(t)
	const boards = 8
	ids := make([]uuid.UUID, boards)
	for i := range ids {
		v, err := s.Create(board.Spec{})
		require.NoError(t, err)
		ids[i] = v.ID
	}

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(2)
		go func(id uuid.UUID, col int) {
			defer wg.Done()
			for row := 0; row < grid.DefaultRows; row++ {
				_, _ = s.ToggleWall(id, grid.Coord{Row: row, Col: col})
			}
		}(id, 10+i)
		go func(id uuid.UUID) {
			defer wg.Done()
			for k := 0; k < 5; k++ {
				_, _ = s.Search(id)
			}
		}(id)
	}
	wg.Wait()

	for i, id := range ids {
		out, err := s.Search(id)
		require.NoError(t, err)
		assert.False(t, out.Found(), "board %d: full column wall at %d must block", i, 10+i)
	}
}

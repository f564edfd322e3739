package board

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/playback"
	"github.com/katalvlaran/pathviz/search"
)

// ErrNotFound indicates that no board has the requested ID.
var ErrNotFound = errors.New("board: not found")

// DefaultMaxCells caps the size of boards a Store will create.
// The scan frontier is quadratic in the cell count.
const DefaultMaxCells = 100 * 100

// Settings holds the defaults applied to new boards and searches.
type Settings struct {
	Rows, Cols int
	MaxCells   int // largest Rows×Cols accepted; <= 0 leaves only grid.MaxCells
	Start, End grid.Coord
	Frontier   search.Frontier
	VisitDelay time.Duration
	PathDelay  time.Duration
}

// DefaultSettings returns the 15×30 visualizer board with default delays.
func DefaultSettings() Settings {
	return Settings{
		Rows:       grid.DefaultRows,
		Cols:       grid.DefaultCols,
		MaxCells:   DefaultMaxCells,
		Start:      grid.DefaultStart,
		End:        grid.DefaultEnd,
		Frontier:   search.FrontierScan,
		VisitDelay: playback.DefaultVisitDelay,
		PathDelay:  playback.DefaultPathDelay,
	}
}

// Spec describes a board to create. Zero dimensions and nil coordinates
// fall back to the store Settings.
type Spec struct {
	Rows  int         `json:"rows" yaml:"rows"`
	Cols  int         `json:"cols" yaml:"cols"`
	Start *grid.Coord `json:"start" yaml:"start"`
	End   *grid.Coord `json:"end" yaml:"end"`
}

// View is a read-only snapshot of a board.
type View struct {
	ID    uuid.UUID    `json:"id"`
	Rows  int          `json:"rows"`
	Cols  int          `json:"cols"`
	Start grid.Coord   `json:"start"`
	End   grid.Coord   `json:"end"`
	Walls []grid.Coord `json:"walls"`
}

// Outcome is a search result together with its animation timeline.
type Outcome struct {
	search.Result
	Timeline playback.Timeline
}

// entry is one stored board.
type entry struct {
	mu sync.Mutex
	g  *grid.Grid
}

// Store holds boards in memory.
type Store struct {
	mu       sync.RWMutex
	boards   map[uuid.UUID]*entry
	settings Settings
	log      logrus.FieldLogger
}

// NewStore returns an empty store. A nil log discards log output.
func NewStore(settings Settings, log logrus.FieldLogger) *Store {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	return &Store{
		boards:   make(map[uuid.UUID]*entry),
		settings: settings,
		log:      log,
	}
}

// Settings returns the defaults the store was built with.
func (s *Store) Settings() Settings { return s.settings }

// Create builds a board from spec and stores it.
// Returns grid.ErrInvalidConfiguration for an impossible spec or one larger
// than Settings.MaxCells.
func (s *Store) Create(spec Spec) (View, error) {
	rows, cols := spec.Rows, spec.Cols
	if rows == 0 {
		rows = s.settings.Rows
	}
	if cols == 0 {
		cols = s.settings.Cols
	}
	start, end := s.settings.Start, s.settings.End
	if spec.Start != nil {
		start = *spec.Start
	}
	if spec.End != nil {
		end = *spec.End
	}

	if err := checkSize(rows, cols, s.settings.MaxCells); err != nil {
		return View{}, err
	}
	g, err := grid.New(rows, cols, start, end)
	if err != nil {
		return View{}, err
	}
	return s.Add(g), nil
}

// Add stores an existing grid under a fresh ID. The store takes ownership
// of g; callers must not touch it afterwards.
func (s *Store) Add(g *grid.Grid) View {
	id := uuid.New()
	e := &entry{g: g}

	s.mu.Lock()
	s.boards[id] = e
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"board": id,
		"rows":  g.Rows(),
		"cols":  g.Cols(),
	}).Info("board created")

	e.mu.Lock()
	defer e.mu.Unlock()
	return view(id, g)
}

// Get returns a snapshot of board id.
func (s *Store) Get(id uuid.UUID) (View, error) {
	var v View
	err := s.with(id, func(g *grid.Grid) error {
		v = view(id, g)
		return nil
	})
	return v, err
}

// Delete removes board id.
func (s *Store) Delete(id uuid.UUID) error {
	s.mu.Lock()
	_, ok := s.boards[id]
	delete(s.boards, id)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.log.WithField("board", id).Info("board deleted")
	return nil
}

// ToggleWall flips the wall at c on board id. Start and End are left alone.
func (s *Store) ToggleWall(id uuid.UUID, c grid.Coord) (View, error) {
	var v View
	err := s.with(id, func(g *grid.Grid) error {
		if err := g.ToggleWall(c.Row, c.Col); err != nil {
			return err
		}
		v = view(id, g)
		return nil
	})
	return v, err
}

// SetWall paints (wall=true) or erases a wall at c on board id.
func (s *Store) SetWall(id uuid.UUID, c grid.Coord, wall bool) (View, error) {
	var v View
	err := s.with(id, func(g *grid.Grid) error {
		if err := g.SetWall(c.Row, c.Col, wall); err != nil {
			return err
		}
		v = view(id, g)
		return nil
	})
	return v, err
}

// Clear removes every wall from board id.
func (s *Store) Clear(id uuid.UUID) (View, error) {
	var v View
	err := s.with(id, func(g *grid.Grid) error {
		g.Clear()
		v = view(id, g)
		return nil
	})
	if err == nil {
		s.log.WithField("board", id).Info("board cleared")
	}
	return v, err
}

// Search runs the engine on board id between its Start and End and lays
// out the animation timeline.
func (s *Store) Search(id uuid.UUID) (Outcome, error) {
	var out Outcome
	err := s.with(id, func(g *grid.Grid) error {
		res, err := search.Solve(g, search.WithFrontier(s.settings.Frontier))
		if err != nil {
			return err
		}
		tl, err := playback.Schedule(res, s.playbackOptions()...)
		if err != nil {
			return err
		}
		out = Outcome{Result: res, Timeline: tl}
		return nil
	})
	if err != nil {
		return Outcome{}, err
	}

	s.log.WithFields(logrus.Fields{
		"board":    id,
		"frontier": s.settings.Frontier,
		"visited":  len(out.VisitedOrder),
		"path":     len(out.Path),
		"found":    out.Found(),
	}).Info("search finished")
	return out, nil
}

// Len returns the number of stored boards.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.boards)
}

// with runs fn on board id while holding the board lock.
func (s *Store) with(id uuid.UUID, fn func(g *grid.Grid) error) error {
	s.mu.RLock()
	e, ok := s.boards[id]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.g)
}

func (s *Store) playbackOptions() []playback.Option {
	return []playback.Option{
		playback.WithVisitDelay(s.settings.VisitDelay),
		playback.WithPathDelay(s.settings.PathDelay),
	}
}

func view(id uuid.UUID, g *grid.Grid) View {
	walls := g.Walls()
	if walls == nil {
		walls = []grid.Coord{}
	}
	return View{
		ID:    id,
		Rows:  g.Rows(),
		Cols:  g.Cols(),
		Start: g.Start(),
		End:   g.End(),
		Walls: walls,
	}
}

package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathviz/grid"
)

// ErrNilGrid indicates that a nil *grid.Grid was passed to Run.
var ErrNilGrid = errors.New("search: grid is nil")

// ErrUnknownFrontier indicates an unrecognised frontier name.
var ErrUnknownFrontier = errors.New("search: unknown frontier")

// Frontier selects how the next cell to finalize is extracted.
type Frontier int

const (
	// FrontierScan scans every remaining cell in row-major order.
	FrontierScan Frontier = iota
	// FrontierHeap keeps reached cells in a min-heap keyed by
	// (distance, row-major index).
	FrontierHeap
)

// String returns "scan" or "heap".
func (f Frontier) String() string {
	switch f {
	case FrontierHeap:
		return "heap"
	default:
		return "scan"
	}
}

// ParseFrontier maps "scan" or "heap" to a Frontier.
func ParseFrontier(name string) (Frontier, error) {
	switch name {
	case "", "scan":
		return FrontierScan, nil
	case "heap":
		return FrontierHeap, nil
	default:
		return FrontierScan, fmt.Errorf("%w: %q", ErrUnknownFrontier, name)
	}
}

// Options configures a search run.
//
// Frontier – extraction strategy; both strategies yield identical results.
// OnVisit  – called once per finalized cell, in VisitedOrder, with its distance.
type Options struct {
	Frontier Frontier
	OnVisit  func(c grid.Coord, distance int)
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// WithFrontier selects the frontier strategy.
func WithFrontier(f Frontier) Option {
	return func(o *Options) {
		o.Frontier = f
	}
}

// WithOnVisit registers a callback fired every time a cell is finalized.
// A nil fn leaves the default no-op in place.
func WithOnVisit(fn func(c grid.Coord, distance int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// DefaultOptions returns FrontierScan and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Frontier: FrontierScan,
		OnVisit:  func(grid.Coord, int) {},
	}
}

// Result holds the two sequences produced by a search.
//
//   - VisitedOrder: cells in the order they were finalized.
//   - Path: Start..End inclusive, or empty if End was never reached.
type Result struct {
	VisitedOrder []grid.Coord `json:"visitedOrder"`
	Path         []grid.Coord `json:"path"`
}

// Found reports whether End was reached.
func (r Result) Found() bool { return len(r.Path) > 0 }

// Steps returns the number of moves along Path, or -1 if End was not reached.
func (r Result) Steps() int {
	if len(r.Path) == 0 {
		return -1
	}
	return len(r.Path) - 1
}

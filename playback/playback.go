// Package playback turns a search.Result into a timed animation: every
// finalized cell is shown VisitDelay after the previous one, then the path
// is traced PathDelay per cell once exploration has finished.
//
// The engine itself knows nothing about time; this package is the
// presentation contract consumed by the HTTP API and the CLI.
package playback

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

// Default delays of the visualizer.
const (
	DefaultVisitDelay = 10 * time.Millisecond
	DefaultPathDelay  = 50 * time.Millisecond
)

// ErrBadDelay is returned by Schedule when an option supplied a negative delay.
var ErrBadDelay = errors.New("playback: delay must be non-negative")

// Kind tells which sequence a frame comes from.
type Kind int

const (
	// KindVisited frames replay search.Result.VisitedOrder.
	KindVisited Kind = iota
	// KindPath frames replay search.Result.Path.
	KindPath
)

// String returns "visited" or "path".
func (k Kind) String() string {
	if k == KindPath {
		return "path"
	}
	return "visited"
}

// MarshalText encodes k by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Frame is one cell to paint At after playback starts.
type Frame struct {
	At   time.Duration
	Kind Kind
	Cell grid.Coord
}

// Timeline is the full ordered animation of a search result.
type Timeline struct {
	Frames   []Frame
	Duration time.Duration // when the last frame has finished showing
}

// Options holds the playback delays.
type Options struct {
	VisitDelay time.Duration
	PathDelay  time.Duration

	// internal error recorded during option parsing
	err error
}

// Option configures Schedule.
type Option func(*Options)

// DefaultOptions returns DefaultVisitDelay and DefaultPathDelay.
func DefaultOptions() Options {
	return Options{VisitDelay: DefaultVisitDelay, PathDelay: DefaultPathDelay}
}

// WithVisitDelay sets the gap between two visited frames.
func WithVisitDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: visit delay %v", ErrBadDelay, d)
			return
		}
		o.VisitDelay = d
	}
}

// WithPathDelay sets the gap between two path frames.
func WithPathDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: path delay %v", ErrBadDelay, d)
			return
		}
		o.PathDelay = d
	}
}

// Schedule lays out res as a Timeline. Visited frame i is at i×VisitDelay;
// path frame j is at len(VisitedOrder)×VisitDelay + j×PathDelay.
func Schedule(res search.Result, opts ...Option) (Timeline, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Timeline{}, o.err
	}

	frames := make([]Frame, 0, len(res.VisitedOrder)+len(res.Path))
	for i, c := range res.VisitedOrder {
		frames = append(frames, Frame{At: time.Duration(i) * o.VisitDelay, Kind: KindVisited, Cell: c})
	}
	pathStart := time.Duration(len(res.VisitedOrder)) * o.VisitDelay
	for j, c := range res.Path {
		frames = append(frames, Frame{At: pathStart + time.Duration(j)*o.PathDelay, Kind: KindPath, Cell: c})
	}

	return Timeline{
		Frames:   frames,
		Duration: pathStart + time.Duration(len(res.Path))*o.PathDelay,
	}, nil
}

// Play calls show for every frame at its offset from the moment Play is
// called. It blocks until the last frame was shown or ctx is done, in which
// case it returns ctx.Err().
func Play(ctx context.Context, tl Timeline, show func(Frame)) error {
	begin := time.Now()
	timer := time.NewTimer(0)
	defer timer.Stop()
	<-timer.C

	for _, f := range tl.Frames {
		if wait := f.At - time.Since(begin); wait > 0 {
			timer.Reset(wait)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		show(f)
	}
	return nil
}

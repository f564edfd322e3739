package api

import (
	"github.com/katalvlaran/pathviz/board"
	"github.com/katalvlaran/pathviz/grid"
)

// createBoardRequest mirrors board.Spec; every field is optional.
type createBoardRequest struct {
	Rows  int         `json:"rows"`
	Cols  int         `json:"cols"`
	Start *grid.Coord `json:"start"`
	End   *grid.Coord `json:"end"`
}

// toggleWallRequest addresses one cell.
type toggleWallRequest struct {
	Row *int `json:"row" binding:"required"`
	Col *int `json:"col" binding:"required"`
}

// paintWallRequest sets one cell to a given wall state.
type paintWallRequest struct {
	Row  *int  `json:"row" binding:"required"`
	Col  *int  `json:"col" binding:"required"`
	Wall *bool `json:"wall" binding:"required"`
}

// frameDTO is one timeline frame with its offset in milliseconds.
type frameDTO struct {
	AtMs int64      `json:"atMs"`
	Kind string     `json:"kind"`
	Cell grid.Coord `json:"cell"`
}

// searchResponse is the body of POST /boards/:id/search.
type searchResponse struct {
	VisitedOrder []grid.Coord `json:"visitedOrder"`
	Path         []grid.Coord `json:"path"`
	Found        bool         `json:"found"`
	DurationMs   int64        `json:"durationMs"`
	Timeline     []frameDTO   `json:"timeline"`
}

func toSearchResponse(out board.Outcome) searchResponse {
	frames := make([]frameDTO, len(out.Timeline.Frames))
	for i, f := range out.Timeline.Frames {
		frames[i] = frameDTO{AtMs: f.At.Milliseconds(), Kind: f.Kind.String(), Cell: f.Cell}
	}
	return searchResponse{
		VisitedOrder: out.VisitedOrder,
		Path:         out.Path,
		Found:        out.Found(),
		DurationMs:   out.Timeline.Duration.Milliseconds(),
		Timeline:     frames,
	}
}

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error string `json:"error"`
}

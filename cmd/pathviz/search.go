package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathviz/board"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/internal/config"
	"github.com/katalvlaran/pathviz/playback"
	"github.com/katalvlaran/pathviz/search"
)

// clearScreen homes the cursor and wipes the terminal.
const clearScreen = "\033[H\033[2J"

func newSearchCmd(a *app) *cobra.Command {
	var (
		boardFile string
		animate   bool
	)
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run one search and print the board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := loadBoard(a, boardFile)
			if err != nil {
				return err
			}

			res, err := search.Solve(g, search.WithFrontier(a.cfg.Board.Frontier))
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{
				"frontier": a.cfg.Board.Frontier.String(),
				"visited":  len(res.VisitedOrder),
				"path":     len(res.Path),
			}).Debug("search finished")

			out := cmd.OutOrStdout()
			if animate {
				ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
				defer stop()
				if err := replay(ctx, out, g, res, a.cfg.Timing()...); err != nil {
					return err
				}
			} else {
				fmt.Fprint(out, g.Render(res.VisitedOrder, res.Path))
			}
			return summarize(out, res)
		},
	}
	cmd.Flags().StringVar(&boardFile, "board", "", "board file (.yaml, .yml or text); default is the configured empty board")
	cmd.Flags().String("frontier", "scan", "frontier implementation: scan or heap")
	cmd.Flags().BoolVar(&animate, "animate", false, "replay the search on the terminal")
	_ = a.v.BindPFlag(config.KeyFrontier, cmd.Flags().Lookup("frontier"))
	return cmd
}

// loadBoard reads file, or builds the configured empty board when file is "".
func loadBoard(a *app, file string) (*grid.Grid, error) {
	if file != "" {
		return board.Load(file, a.cfg.Board.MaxCells)
	}
	s := a.cfg.Board
	return grid.New(s.Rows, s.Cols, s.Start, s.End)
}

// replay redraws the board for every frame of the search timeline.
func replay(ctx context.Context, w io.Writer, g *grid.Grid, res search.Result, opts ...playback.Option) error {
	tl, err := playback.Schedule(res, opts...)
	if err != nil {
		return err
	}
	var visited, path []grid.Coord
	return playback.Play(ctx, tl, func(f playback.Frame) {
		if f.Kind == playback.KindPath {
			path = append(path, f.Cell)
		} else {
			visited = append(visited, f.Cell)
		}
		fmt.Fprint(w, clearScreen, g.Render(visited, path))
	})
}

func summarize(w io.Writer, res search.Result) error {
	if !res.Found() {
		_, err := fmt.Fprintf(w, "no path; visited %d cells\n", len(res.VisitedOrder))
		return err
	}
	_, err := fmt.Fprintf(w, "path of %d steps; visited %d cells\n", res.Steps(), len(res.VisitedOrder))
	return err
}

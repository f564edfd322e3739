package main

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathviz/api"
	"github.com/katalvlaran/pathviz/board"
	"github.com/katalvlaran/pathviz/internal/config"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the board API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			gin.SetMode(a.cfg.GinMode)
			a.log.WithField("settings", a.cfg.Describe()).Info("starting pathviz api")
			return newRouter(a).Run()
		},
	}
	cmd.Flags().String("addr", ":8080", "listen address")
	_ = a.v.BindPFlag(config.KeyHTTPAddr, cmd.Flags().Lookup("addr"))
	return cmd
}

// newRouter wires a fresh board store into the HTTP API.
func newRouter(a *app) *api.Router {
	store := board.NewStore(a.cfg.Board, a.log)
	return api.NewRouter(api.Config{
		Addr:        a.cfg.HTTPAddr,
		BaseURL:     "/api",
		Controllers: []api.Controller{api.NewBoardController(store)},
		Logger:      a.log,
	})
}

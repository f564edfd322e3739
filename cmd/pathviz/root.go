package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/pathviz/internal/config"
	"github.com/katalvlaran/pathviz/internal/logging"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	v          *viper.Viper
	configFile string
	cfg        config.Config
	log        *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:          "pathviz",
		Short:        "Shortest paths on a grid of walls",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.v, a.configFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logging.NewWithOutput(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogJSON)
			a.log.WithField("settings", cfg.Describe()).Debug("configuration loaded")
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (yaml, json or toml)")
	flags.String("log-level", "info", "log level: trace, debug, info, warn, error")
	flags.String("log-format", "text", "log format: text or json")
	_ = a.v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = a.v.BindPFlag(config.KeyLogFormat, flags.Lookup("log-format"))

	root.AddCommand(newSearchCmd(a), newServeCmd(a))
	return root
}

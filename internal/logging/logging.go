// Package logging builds the logrus logger shared by the CLI, the board
// store and the HTTP API.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing to stderr at level (default info when the
// name is unknown), as JSON or as timestamped text.
func New(level string, json bool) *logrus.Logger {
	return NewWithOutput(os.Stderr, level, json)
}

// NewWithOutput is New with an explicit destination.
func NewWithOutput(w io.Writer, level string, json bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	if json {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	if err != nil {
		log.WithField("level", level).Warn("unknown log level, using info")
	}
	return log
}

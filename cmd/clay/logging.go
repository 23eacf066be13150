package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// newLogger returns a human readable logger writing to w at the named level.
func newLogger(w io.Writer, level string, useColor bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	out := zerolog.ConsoleWriter{Out: w, NoColor: !useColor, TimeFormat: time.TimeOnly}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

package config

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger returns a timestamped logger writing to w. The level comes from
// LOG_LEVEL (debug, info, warn, error); unknown values fall back to info.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          prefix,
		Level:           level,
	})
}

// TuningFromEnv loads the file named by UFO_TUNING, or the defaults when
// the variable is unset.
func TuningFromEnv() (Tuning, error) {
	path := GetEnv("UFO_TUNING", "")
	if path == "" {
		return DefaultTuning(), nil
	}
	return LoadTuning(path)
}

package cmd

import (
	"io"
	stdlog "log"

	"github.com/charmbracelet/log"
)

// NewLogger returns the logger for the configured level, -v forces debug.
// The standard library logger is redirected to it.
func NewLogger(w io.Writer, cfg Config, verbose bool) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "amortize",
		Level:  level,
	})
	stdlog.SetFlags(0)
	stdlog.SetOutput(logger.StandardLog(log.StandardLogOptions{ForceLevel: log.DebugLevel}).Writer())
	log.SetDefault(logger)
	return logger, nil
}

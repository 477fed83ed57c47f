// Package logging configures the global zerolog logger.
package logging

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var levelMapping = map[string]zerolog.Level{
	"debug":   zerolog.DebugLevel,
	"info":    zerolog.InfoLevel,
	"warning": zerolog.WarnLevel,
	"warn":    zerolog.WarnLevel,
	"error":   zerolog.ErrorLevel,
}

// ParseLevel maps a configured level name to a zerolog level.
func ParseLevel(level string) (zerolog.Level, error) {
	lev, ok := levelMapping[level]
	if !ok {
		return zerolog.NoLevel, fmt.Errorf("invalid logging level: %s", level)
	}
	return lev, nil
}

// Setup sets the global level and output. An empty path logs to
// stderr in human readable form, otherwise JSON lines are appended
// to path.
func Setup(path, level string) error {
	lev, err := ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lev)
	if path != "" {
		logf, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to initialize log file %s: %w", path, err)
		}
		log.Logger = log.Output(logf)
		return nil
	}
	log.Logger = log.Output(
		zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		},
	)
	return nil
}

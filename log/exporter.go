// Package log is the structured JSON logger shared by the store, the seed
// routine and the command.
package log

import (
	"fmt"
	"log/slog"
	"strings"
)

// Default returns the process logger.
func Default() Logger {
	return std
}

// Action set action field for the process logger.
func Action(action string) StdLogger {
	return std.Action(action)
}

// With any map data, the value of key must be string, int ... basic value
func With(m map[string]any) StdLogger {
	return std.With(m)
}

// SetLevel set the process log level with: debug, info, warn, error
func SetLevel(level string) error {
	l, err := parseLevel(level)
	if err != nil {
		return err
	}
	slog.SetLogLoggerLevel(l)
	std.level.Set(l)
	return nil
}

func parseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return l, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return l, nil
}

package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
)

var std *sLogger

const actionKey = "action"

func init() {
	std = newSLogger(os.Stdout, slog.LevelDebug)
	slog.SetDefault(std.logger)
}

type sLogger struct {
	logger *slog.Logger
	level  *slog.LevelVar
	fields []any
}

func newSLogger(w io.Writer, level slog.Level) *sLogger {
	lvl := new(slog.LevelVar)
	lvl.Set(level)
	return &sLogger{
		logger: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})),
		level:  lvl,
	}
}

// New creates a JSON logger writing to w, level is one of debug, info, warn, error.
func New(w io.Writer, level string) (Logger, error) {
	l, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	return newSLogger(w, l), nil
}

func format(msgOrFormat string, args []any) string {
	if len(args) == 0 {
		return msgOrFormat
	}
	return fmt.Sprintf(msgOrFormat, args...)
}

// Debug logs a message at DebugLevel with the fields accumulated on the logger.
func (l *sLogger) Debug(msgOrFormat string, args ...any) {
	l.logger.Debug(format(msgOrFormat, args), l.fields...)
}

// Info logs a message at InfoLevel with the fields accumulated on the logger.
func (l *sLogger) Info(msgOrFormat string, args ...any) {
	l.logger.Info(format(msgOrFormat, args), l.fields...)
}

// Warn logs a message at WarnLevel with the fields accumulated on the logger.
func (l *sLogger) Warn(msgOrFormat string, args ...any) {
	l.logger.Warn(format(msgOrFormat, args), l.fields...)
}

// Error logs a message at ErrorLevel with the fields accumulated on the logger.
func (l *sLogger) Error(msgOrFormat string, args ...any) {
	l.logger.Error(format(msgOrFormat, args), l.fields...)
}

// Fatal logs a message at ErrorLevel and then calls os.Exit(1).
func (l *sLogger) Fatal(msgOrFormat string, args ...any) {
	l.logger.Error(format(msgOrFormat, args), l.fields...)
	os.Exit(1)
}

// Action logger with the action key set.
func (l *sLogger) Action(action string) StdLogger {
	return &sLogger{
		logger: l.logger.With(slog.String(actionKey, action)),
		level:  l.level,
		fields: l.fields,
	}
}

// With returns a logger carrying m as attributes.
func (l *sLogger) With(m map[string]any) StdLogger {
	return &sLogger{
		logger: l.logger.With(tagsToFields(m)...),
		level:  l.level,
		fields: l.fields,
	}
}

// Inject adds m to the fields written with every later line.
func (l *sLogger) Inject(m map[string]any) {
	l.fields = append(l.fields, tagsToFields(m)...)
}

func (l *sLogger) newWithTags(m map[string]any) Logger {
	return &sLogger{
		logger: l.logger.With(tagsToFields(m)...),
		level:  l.level,
	}
}

// tagsToFields converts m to slog attributes in key order.
func tagsToFields(m map[string]any) []any {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fields := make([]any, len(keys))
	for i, key := range keys {
		switch v := m[key].(type) {
		case string:
			fields[i] = slog.String(key, v)
		case int:
			fields[i] = slog.Int(key, v)
		case int32:
			fields[i] = slog.Int(key, int(v))
		case int64:
			fields[i] = slog.Int64(key, v)
		case bool:
			fields[i] = slog.Bool(key, v)
		case float64:
			fields[i] = slog.Float64(key, v)
		default:
			fields[i] = slog.Any(key, v)
		}
	}
	return fields
}

package log

// Logger scopes log lines to an action or a set of labels.
type Logger interface {
	// Action returns a logger tagged with the action key, e.g. "insert_one".
	Action(action string) StdLogger
	// With returns a logger carrying the labels, values should be basic types.
	With(map[string]any) StdLogger
	// Inject adds labels to the current logger in place.
	Inject(map[string]any)
}

// StdLogger the leveled logger. When args is empty msgOrFormat is logged as is.
type StdLogger interface {
	Debug(msgOrFormat string, args ...any)
	Info(msgOrFormat string, args ...any)
	Warn(msgOrFormat string, args ...any)
	Error(msgOrFormat string, args ...any)
	Fatal(msgOrFormat string, args ...any)
}

package diriter

import (
	"log/slog"
)

// Sink receives non-fatal diagnostics: the path involved and the cause.
// Vanished entries are never reported.
type Sink interface {
	Warn(path string, err error)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(path string, err error)

// Warn calls f(path, err).
func (f SinkFunc) Warn(path string, err error) {
	f(path, err)
}

// LogSink reports diagnostics as WARN records on logger.
func LogSink(logger *slog.Logger) Sink {
	return SinkFunc(func(path string, err error) {
		logger.Warn("directory walk problem", "path", path, "error", err)
	})
}

// Option configures an Iterator at Begin.
type Option func(*Iterator)

// WithSink routes diagnostics to sink instead of the default slog logger.
func WithSink(sink Sink) Option {
	return func(it *Iterator) {
		if sink != nil {
			it.sink = sink
		}
	}
}

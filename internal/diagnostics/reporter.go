// Package diagnostics collects the non-fatal problems a walk runs into and
// logs them with actionable context.
package diagnostics

import (
	"io"
	"log/slog"
	"sync"

	pkgerrors "github.com/joe/dir-iterator/pkg/errors"
)

// DefaultMaxRecorded bounds how many warnings a Reporter keeps in memory.
// Every warning is still logged and counted.
const DefaultMaxRecorded = 1000

// Warning is one enriched, non-fatal walk problem.
type Warning struct {
	Path        string
	Err         error
	Category    pkgerrors.ErrorCategory
	Suggestions []string
}

// Reporter is a diriter.Sink that logs each warning and records it for
// later display. It is safe for concurrent use.
type Reporter struct {
	logger      *slog.Logger
	enricher    pkgerrors.Enricher
	maxRecorded int

	mu       sync.Mutex
	warnings []Warning
	total    int
}

// NewReporter creates a Reporter that logs to logger, or slog.Default() if
// logger is nil.
func NewReporter(logger *slog.Logger) *Reporter {
	if logger == nil {
		logger = slog.Default()
	}

	return &Reporter{
		logger:      logger,
		enricher:    pkgerrors.NewEnricher(),
		maxRecorded: DefaultMaxRecorded,
	}
}

// NewLogger builds the text logger used by the binary.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Warn records and logs a problem at path.
func (r *Reporter) Warn(path string, err error) {
	warning := Warning{Path: path, Err: err, Category: pkgerrors.CategoryUnknown}

	if enriched, ok := r.enricher.Enrich(err, path).(pkgerrors.ActionableError); ok {
		warning.Category = enriched.Category()
		warning.Suggestions = enriched.Suggestions()
	}

	r.logger.Warn("skipped entry",
		"path", path,
		"error", err,
		"category", string(warning.Category),
	)

	for _, suggestion := range warning.Suggestions {
		r.logger.Debug("suggestion", "path", path, "hint", suggestion)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.total++
	if len(r.warnings) < r.maxRecorded {
		r.warnings = append(r.warnings, warning)
	}
}

// Warnings returns a copy of the recorded warnings, oldest first.
func (r *Reporter) Warnings() []Warning {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Warning(nil), r.warnings...)
}

// Count is the number of warnings seen, including ones not recorded.
func (r *Reporter) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.total
}

// Actionable returns w as an ActionableError for display.
func (w Warning) Actionable() pkgerrors.ActionableError {
	return pkgerrors.NewActionableError(w.Err.Error(), w.Category, w.Suggestions, w.Path)
}

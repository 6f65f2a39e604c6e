// Package listing runs a walk to completion and writes each entry to a
// stream as text or YAML.
package listing

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/joe/dir-iterator/internal/config"
	"github.com/joe/dir-iterator/pkg/diriter"
	"github.com/joe/dir-iterator/pkg/filesystem"
)

// Options configures Run.
type Options struct {
	FileSystem filesystem.FileSystem
	Root       string
	Flags      diriter.Flags
	Include    string
	Format     config.OutputFormat
	Out        io.Writer
	// Sink receives walk warnings. Defaults to a slog sink.
	Sink diriter.Sink
	// Styled colors text output with lipgloss.
	Styled bool
}

// Run walks opts.Root and writes every produced entry that passes the
// include filter. Cancelling ctx aborts the walk between entries and
// returns the context error with the partial summary.
func Run(ctx context.Context, opts Options) (Summary, error) {
	summary := NewSummary(opts.Flags)

	writer, err := newEntryWriter(opts.Format, opts.Out, opts.Styled)
	if err != nil {
		return summary, err
	}

	sink := &countingSink{inner: opts.Sink}
	if sink.inner == nil {
		sink.inner = diriter.LogSink(slog.Default())
	}

	it, err := diriter.Begin(opts.FileSystem, opts.Root, opts.Flags, diriter.WithSink(sink))
	if err != nil {
		return summary, err //nolint:wrapcheck // Begin names the root already
	}

	filter := NewGlobFilter(opts.Include)

	walkErr := walk(ctx, it, filter, writer, &summary)
	summary.Warnings = sink.count()
	summary.Opened = it.Opened()

	if closeErr := writer.Close(); closeErr != nil && walkErr == nil {
		walkErr = closeErr
	}

	return summary, walkErr
}

func walk(ctx context.Context, it *diriter.Iterator, filter EntryFilter, writer entryWriter, summary *Summary) error {
	for {
		if err := ctx.Err(); err != nil {
			it.Abort()
			return fmt.Errorf("walk cancelled: %w", err)
		}

		switch it.Advance() {
		case diriter.StatusDone:
			return nil
		case diriter.StatusError:
			return fmt.Errorf("walk failed: %w", it.Err())
		case diriter.StatusOK:
		}

		entry := it.Entry()
		summary.Add(entry)

		if !filter.ShouldInclude(entry.RelativePath) {
			continue
		}

		if err := writer.Write(entry); err != nil {
			it.Abort()
			return err
		}

		summary.Listed++
	}
}

// countingSink forwards warnings and counts them.
type countingSink struct {
	inner diriter.Sink
	n     atomic.Int64
}

func (s *countingSink) Warn(path string, err error) {
	s.n.Add(1)
	s.inner.Warn(path, err)
}

func (s *countingSink) count() int {
	return int(s.n.Load())
}

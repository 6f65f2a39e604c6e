// Package main is the entry point for the dir-iterator application.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term" //nolint:depguard // Required for TTY detection

	"github.com/joe/dir-iterator/internal/config"
	"github.com/joe/dir-iterator/internal/diagnostics"
	"github.com/joe/dir-iterator/internal/listing"
	"github.com/joe/dir-iterator/internal/tui"
	"github.com/joe/dir-iterator/pkg/diriter"
	"github.com/joe/dir-iterator/pkg/filesystem"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.ParseFlags()
	if err != nil {
		return err
	}

	fsys, root, closer, err := filesystem.CreateFileSystem(cfg.Root)
	if err != nil {
		return err
	}

	if closer != nil {
		defer closer()
	}

	stdoutIsTerminal := term.IsTerminal(int(os.Stdout.Fd()))

	if cfg.InteractiveMode && stdoutIsTerminal {
		return runInteractive(cfg, fsys, root)
	}

	logger := diagnostics.NewLogger(os.Stderr, cfg.LogLevel())
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := listing.Run(ctx, listing.Options{
		FileSystem: fsys,
		Root:       root,
		Flags:      cfg.Flags(),
		Include:    cfg.Include,
		Format:     cfg.Format,
		Out:        os.Stdout,
		Sink:       diagnostics.NewReporter(logger),
		Styled:     stdoutIsTerminal && cfg.Format == config.FormatText,
	})

	logger.Info("walk finished",
		"root", cfg.Root,
		"flags", cfg.Flags().String(),
		"summary", summary.String(),
		"opened", summary.Opened,
	)

	return err
}

func runInteractive(cfg *config.Config, fsys filesystem.FileSystem, root string) error {
	// Warnings are shown on screen; the log would tear the alt screen
	reporter := diagnostics.NewReporter(diagnostics.NewLogger(io.Discard, cfg.LogLevel()))

	it, err := diriter.Begin(fsys, root, cfg.Flags(), diriter.WithSink(reporter))
	if err != nil {
		return err //nolint:wrapcheck // Begin names the root already
	}

	walker := tui.NewWalker(it)

	final, err := tea.NewProgram(tui.NewModel(cfg, walker, reporter), tea.WithAltScreen()).Run()

	// Release handles if the program stopped before the walk did. This waits
	// for an advance still running on a command goroutine.
	walker.Abort()

	if err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}

	if model, ok := final.(tui.Model); ok {
		return model.Err()
	}

	return nil
}

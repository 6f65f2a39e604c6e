// Package config handles application configuration and command-line argument parsing.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/bmatcuk/doublestar/v4"

	"github.com/joe/dir-iterator/pkg/diriter"
)

// OutputFormat selects how the non-interactive listing is written
type OutputFormat int

const (
	// FormatText - one relative path per line
	FormatText OutputFormat = iota
	// FormatYAML - one YAML document per entry
	FormatYAML
)

// String returns the string representation of OutputFormat
func (f OutputFormat) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseOutputFormat parses a string into an OutputFormat
func ParseOutputFormat(s string) (OutputFormat, error) {
	s = strings.ToLower(s)
	switch s {
	case "text", "txt", "plain":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatText, fmt.Errorf("invalid output format: %s (valid: text, yaml)", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for go-arg
func (f *OutputFormat) UnmarshalText(text []byte) error {
	parsed, err := ParseOutputFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Config holds the application configuration
type Config struct {
	Root            string       `arg:"positional" help:"Directory to walk (local path or sftp://user@host[:port]/path)"`
	Strict          bool         `arg:"--strict" help:"Stop at the first error other than a vanished entry"`
	FollowSymlinks  bool         `arg:"-L,--follow-symlinks" help:"Descend into symlinked directories (cycles are not detected)"`
	DirsBefore      bool         `arg:"--dirs-before" help:"List each directory before its contents"`
	DirsAfter       bool         `arg:"--dirs-after" help:"List each directory after its contents"`
	Include         string       `arg:"--include" help:"Only list entries whose relative path matches this glob (supports **)"`
	Format          OutputFormat `arg:"-f,--format" default:"text" help:"Output format: text|yaml"`
	InteractiveMode bool         `arg:"-i,--interactive" help:"Browse the walk in a terminal UI"`
	Verbose         bool         `arg:"-v,--verbose" help:"Log debug details for every warning"`
}

// Description returns the program description for go-arg
func (Config) Description() string {
	return "Walk a directory tree depth-first, one entry at a time, locally or over SFTP"
}

// Version returns the version string for go-arg
func (Config) Version() string {
	return "dir-iterator 1.0.0"
}

// ParseFlags parses command-line flags and returns configuration
func ParseFlags() (*Config, error) {
	cfg := &Config{
		Format: FormatText,
	}

	arg.MustParse(cfg)

	return PostProcessConfig(cfg)
}

// PostProcessConfig applies post-processing logic to a parsed config
func PostProcessConfig(cfg *Config) (*Config, error) {
	// With no root, browse the working directory interactively
	if cfg.Root == "" {
		cfg.Root = "."
		cfg.InteractiveMode = true
	}

	if err := cfg.ValidateRoot(); err != nil {
		return nil, err
	}

	if err := cfg.ValidateInclude(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Flags converts the traversal switches to engine flags
func (cfg *Config) Flags() diriter.Flags {
	var flags diriter.Flags

	if cfg.Strict {
		flags |= diriter.Strict
	}

	if cfg.FollowSymlinks {
		flags |= diriter.FollowSymlinks
	}

	if cfg.DirsBefore {
		flags |= diriter.DirsBefore
	}

	if cfg.DirsAfter {
		flags |= diriter.DirsAfter
	}

	return flags
}

// LogLevel is the minimum level for the process logger
func (cfg *Config) LogLevel() slog.Level {
	if cfg.Verbose {
		return slog.LevelDebug
	}

	return slog.LevelInfo
}

// ValidateInclude checks the include glob, if any
func (cfg *Config) ValidateInclude() error {
	if cfg.Include == "" {
		return nil
	}

	if !doublestar.ValidatePattern(cfg.Include) {
		return fmt.Errorf("invalid include pattern: %s", cfg.Include)
	}

	return nil
}

// ValidateRoot validates that the walk root is usable
func (cfg *Config) ValidateRoot() error {
	if cfg.Root == "" {
		return errors.New("root path is required")
	}

	if strings.HasPrefix(cfg.Root, "sftp://") {
		return validateSFTPURL(cfg.Root)
	}

	info, err := os.Stat(cfg.Root)
	if os.IsNotExist(err) {
		return fmt.Errorf("root path does not exist: %s", cfg.Root)
	}
	if err != nil {
		return fmt.Errorf("cannot access root path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root path is not a directory: %s", cfg.Root)
	}

	return nil
}

// validateSFTPURL checks the shape of an SFTP root without connecting
func validateSFTPURL(root string) error {
	rest := strings.TrimPrefix(root, "sftp://")

	if !strings.Contains(rest, "@") {
		return fmt.Errorf("SFTP root must include username (sftp://user@host/path): %s", root)
	}

	if !strings.Contains(rest, "/") {
		return fmt.Errorf("SFTP root must include path (sftp://user@host/path): %s", root)
	}

	return nil
}

package listing

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/joe/dir-iterator/internal/config"
	"github.com/joe/dir-iterator/pkg/diriter"
)

// entryWriter renders produced entries to an output stream.
type entryWriter interface {
	Write(entry diriter.Entry) error
	Close() error
}

func newEntryWriter(format config.OutputFormat, out io.Writer, styled bool) (entryWriter, error) {
	switch format {
	case config.FormatText:
		return &textWriter{out: out, styled: styled}, nil
	case config.FormatYAML:
		return newYAMLWriter(out), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// textWriter prints one relative path per line; directories end in "/".
type textWriter struct {
	out    io.Writer
	styled bool
}

func (w *textWriter) Write(entry diriter.Entry) error {
	line := entry.RelativePath

	kind := KindOf(entry.Info)
	if kind == KindDir {
		line += "/"
	}

	if w.styled {
		line = styleFor(kind).Render(line)
	}

	_, err := fmt.Fprintln(w.out, line)
	if err != nil {
		return fmt.Errorf("failed to write entry: %w", err)
	}

	return nil
}

func (w *textWriter) Close() error {
	return nil
}

func styleFor(kind Kind) lipgloss.Style {
	switch kind {
	case KindDir:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(dirColorCode)).Bold(true)
	case KindSymlink:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(symlinkColorCode))
	case KindOther:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(otherColorCode))
	case KindFile:
	}

	return lipgloss.NewStyle()
}

// Record is the YAML form of one produced entry.
type Record struct {
	Path     string    `yaml:"path"`
	Type     Kind      `yaml:"type"`
	Size     int64     `yaml:"size"`
	Mode     string    `yaml:"mode"`
	Modified time.Time `yaml:"modified"`
	Phase    string    `yaml:"phase,omitempty"`
}

// NewRecord converts a produced entry. Phase is set for directories only.
func NewRecord(entry diriter.Entry) Record {
	record := Record{
		Path: entry.RelativePath,
		Type: KindOf(entry.Info),
	}

	if entry.Info != nil {
		record.Size = entry.Info.Size()
		record.Mode = entry.Info.Mode().String()
		record.Modified = entry.Info.ModTime().UTC()
	}

	if record.Type == KindDir {
		record.Phase = entry.Orientation.String()
	}

	return record
}

// yamlWriter emits one YAML document per entry.
type yamlWriter struct {
	encoder *yaml.Encoder
}

func newYAMLWriter(out io.Writer) *yamlWriter {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(yamlIndent)

	return &yamlWriter{encoder: encoder}
}

func (w *yamlWriter) Write(entry diriter.Entry) error {
	err := w.encoder.Encode(NewRecord(entry))
	if err != nil {
		return fmt.Errorf("failed to encode entry %s: %w", entry.RelativePath, err)
	}

	return nil
}

func (w *yamlWriter) Close() error {
	err := w.encoder.Close()
	if err != nil {
		return fmt.Errorf("failed to finish yaml stream: %w", err)
	}

	return nil
}

// unexported constants.
const (
	dirColorCode     = "62"  // Blue
	otherColorCode   = "226" // Yellow
	symlinkColorCode = "86"  // Cyan
	yamlIndent       = 2
)

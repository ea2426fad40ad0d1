// Package output provides unified text and JSON formatting for the
// one-shot CLI commands.
package output

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Format is the output format type.
type Format int

const (
	// FormatText is human-readable text (default on a TTY).
	FormatText Format = iota
	// FormatJSON is machine-readable JSON.
	FormatJSON
)

// String returns the format name.
func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "text"
}

// Formatter handles command output.
type Formatter struct {
	format Format
	writer io.Writer
	pretty bool
}

// Option is a functional option for Formatter.
type Option func(*Formatter)

// WithFormat sets the output format.
func WithFormat(format Format) Option {
	return func(f *Formatter) { f.format = format }
}

// WithWriter sets the output writer.
func WithWriter(w io.Writer) Option {
	return func(f *Formatter) { f.writer = w }
}

// WithPretty controls JSON indentation.
func WithPretty(pretty bool) Option {
	return func(f *Formatter) { f.pretty = pretty }
}

// New creates a Formatter.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		format: FormatText,
		writer: os.Stdout,
		pretty: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// IsJSON reports whether output is JSON.
func (f *Formatter) IsJSON() bool { return f.format == FormatJSON }

// Writer returns the output writer.
func (f *Formatter) Writer() io.Writer { return f.writer }

// Output writes jsonData as JSON, or runs textFn for text mode.
func (f *Formatter) Output(jsonData any, textFn func(w io.Writer) error) error {
	if f.IsJSON() {
		return WriteJSON(f.writer, jsonData, f.pretty)
	}
	return textFn(f.writer)
}

// DetectFormat picks the output format.
// Priority: explicit --json flag, then ORCHTOP_OUTPUT_FORMAT, then pipe
// detection (JSON when stdout is not a terminal), then text.
func DetectFormat(jsonFlag bool) Format {
	if jsonFlag {
		return FormatJSON
	}

	switch os.Getenv("ORCHTOP_OUTPUT_FORMAT") {
	case "json", "JSON":
		return FormatJSON
	case "text", "TEXT":
		return FormatText
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return FormatJSON
	}
	return FormatText
}

// TerminalWidth returns the stdout width, or a sane default when stdout
// is not a terminal.
func TerminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 100
}

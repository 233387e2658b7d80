package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Status prints one-line outcome messages for CLI commands.
// Colors are only emitted when the destination is a color-capable terminal.
type Status struct {
	out *termenv.Output
}

// NewStatus creates a status printer for w.
func NewStatus(w io.Writer) *Status {
	return &Status{out: termenv.NewOutput(w)}
}

// Success prints a green check line.
func (s *Status) Success(format string, args ...any) {
	s.print("✔", "#34d399", format, args...)
}

// Failure prints a red cross line.
func (s *Status) Failure(format string, args ...any) {
	s.print("✘", "#f87171", format, args...)
}

func (s *Status) print(mark, color, format string, args ...any) {
	prefix := s.out.String(mark).Foreground(s.out.Color(color)).Bold()
	fmt.Fprintf(s.out, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"dinos/internal/config"
)

// Styles renders output for one stream. Styling is dropped when the stream
// is not a terminal unless color is forced.
type Styles struct {
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles binds a style set to w.
func NewStyles(w io.Writer, mode config.ColorMode) Styles {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case config.ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}

	return Styles{
		Muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
		Success: r.NewStyle().Foreground(lipgloss.Color("2")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// Plain returns styles that never emit escape sequences.
func Plain() Styles {
	return NewStyles(io.Discard, config.ColorNever)
}

package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for terminal diagnostics
type Theme struct {
	Error   lipgloss.Color // error states
	Warning lipgloss.Color // warnings
	Muted   lipgloss.Color // dimmed/secondary text
}

// DefaultTheme returns the default color theme (gruvbox)
func DefaultTheme() *Theme {
	return &Theme{
		Error:   lipgloss.Color("#fb4934"), // gruvbox red
		Warning: lipgloss.Color("#fabd2f"), // gruvbox yellow
		Muted:   lipgloss.Color("#928374"), // gruvbox gray
	}
}

// Styles returns styled text helpers bound to a renderer. Everything a human
// reads goes through these; stdout belongs to the preprocessor protocol, so
// diagnostics default to stderr.
type Styles struct {
	renderer *lipgloss.Renderer
	output   *os.File

	Error   lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles creates a new Styles instance for the given output
func NewStyles(output *os.File) *Styles {
	return NewStylesWithTheme(output, DefaultTheme())
}

// NewStylesWithTheme creates styles with a specific theme
func NewStylesWithTheme(output *os.File, theme *Theme) *Styles {
	r := lipgloss.NewRenderer(output)

	return &Styles{
		renderer: r,
		output:   output,

		Error: r.NewStyle().
			Bold(true).
			Foreground(theme.Error),

		Warning: r.NewStyle().
			Bold(true).
			Foreground(theme.Warning),

		Muted: r.NewStyle().
			Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles for stderr
func DefaultStyles() *Styles {
	return NewStyles(os.Stderr)
}

// Warnf prints one warning line with a styled prefix.
func (s *Styles) Warnf(format string, args ...any) {
	fmt.Fprintf(s.output, "%s %s\n", s.Warning.Render("Warning:"), fmt.Sprintf(format, args...))
}

// Errorf prints one error line with a styled prefix.
func (s *Styles) Errorf(format string, args ...any) {
	fmt.Fprintf(s.output, "%s %s\n", s.Error.Render("Error:"), fmt.Sprintf(format, args...))
}

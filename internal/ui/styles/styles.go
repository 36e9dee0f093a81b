// Package styles defines the visual styling for the report.
package styles

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/j-veylop/covid-tracker/internal/models"
)

// Color definitions.
var (
	// Primary colors
	Primary   = lipgloss.Color("205") // Pink
	Secondary = lipgloss.Color("63")  // Purple
	Subtle    = lipgloss.Color("240") // Gray

	// Status colors
	Warning = lipgloss.Color("220") // Yellow
	Info    = lipgloss.Color("39")  // Blue

	// Text colors
	TextPrimary   = lipgloss.Color("252")
	TextSecondary = lipgloss.Color("245")
	TextMuted     = lipgloss.Color("240")
)

// ColorMode selects whether escape sequences are emitted.
type ColorMode int

const (
	// ColorAuto styles only when the output supports it.
	ColorAuto ColorMode = iota
	// ColorNever always writes plain text.
	ColorNever
	// ColorAlways forces 256-color output.
	ColorAlways
)

// Styles holds one style per report line kind. Styles never change the
// display width of a line.
type Styles struct {
	Title     lipgloss.Style
	Timestamp lipgloss.Style
	Table     lipgloss.Style
	Note      lipgloss.Style
	Advisory  lipgloss.Style
}

// New builds the report styles on r, whose color profile decides whether
// anything is actually emitted.
func New(r *lipgloss.Renderer) Styles {
	return Styles{
		Title: r.NewStyle().
			Bold(true).
			Foreground(Primary),
		Timestamp: r.NewStyle().
			Foreground(Info),
		Table: r.NewStyle().
			Foreground(TextPrimary),
		Note: r.NewStyle().
			Foreground(TextSecondary),
		Advisory: r.NewStyle().
			Bold(true).
			Foreground(Warning),
	}
}

// NewRenderer returns a renderer for w honoring mode.
func NewRenderer(w io.Writer, mode ColorMode) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	}
	return r
}

// For returns the style for a line kind.
func (s Styles) For(kind models.LineKind) (lipgloss.Style, bool) {
	switch kind {
	case models.LineTitle:
		return s.Title, true
	case models.LineTimestamp:
		return s.Timestamp, true
	case models.LineTable:
		return s.Table, true
	case models.LineNote:
		return s.Note, true
	case models.LineAdvisory:
		return s.Advisory, true
	default:
		return lipgloss.Style{}, false
	}
}

// FocusedStyle is used for the prompt question.
var FocusedStyle = lipgloss.NewStyle().
	Foreground(Primary).
	Bold(true)

// BlurredStyle is used for secondary prompt text.
var BlurredStyle = lipgloss.NewStyle().
	Foreground(TextMuted)

// HintStyle is shown when an answer has to be re-entered.
var HintStyle = lipgloss.NewStyle().
	Foreground(Warning)

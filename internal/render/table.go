// Package render lays out ranked records as a box-drawn text grid.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/j-veylop/covid-tracker/internal/models"
)

// Alignment is the horizontal placement of text within a column.
type Alignment int

const (
	// AlignLeft pads on the right.
	AlignLeft Alignment = iota
	// AlignRight pads on the left.
	AlignRight
	// AlignCenter splits padding on both sides.
	AlignCenter
)

func (a Alignment) position() lipgloss.Position {
	switch a {
	case AlignRight:
		return lipgloss.Right
	case AlignCenter:
		return lipgloss.Center
	default:
		return lipgloss.Left
	}
}

const (
	// headerPadding is added to each header's width when sizing a column.
	headerPadding = 2
	// cellMargin is the space kept between a separator and cell text.
	cellMargin = 1

	vertical = "│"
)

// DefaultHeaders are the report columns in record order.
var DefaultHeaders = []string{"Country", "Cases", "New Cases", "Deaths", "New Deaths"}

// DefaultAlignments align names and daily changes left, totals right.
var DefaultAlignments = []Alignment{AlignLeft, AlignRight, AlignLeft, AlignRight, AlignLeft}

// ErrShape is returned when headers, alignments and rows disagree on the
// number of columns.
var ErrShape = errors.New("table shape mismatch")

type border struct {
	left, fill, join, right string
}

var (
	borderTop    = border{"╒", "═", "╤", "╕"}
	borderHeader = border{"╞", "═", "╪", "╡"}
	borderRow    = border{"├", "─", "┼", "┤"}
	borderBottom = border{"╘", "═", "╧", "╛"}
)

// Render builds the grid for records using the given headers and per-column
// alignment. Headers are always centered.
func Render(records models.RecordSet, headers []string, align []Alignment) (models.RenderedTable, error) {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = r.Cells()
	}
	return RenderRows(rows, headers, align)
}

// RenderRows is Render over plain string rows.
func RenderRows(rows [][]string, headers []string, align []Alignment) (models.RenderedTable, error) {
	if len(headers) == 0 || len(headers) != len(align) {
		return models.RenderedTable{}, fmt.Errorf("%w: %d headers, %d alignments", ErrShape, len(headers), len(align))
	}
	for i, row := range rows {
		if len(row) != len(headers) {
			return models.RenderedTable{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrShape, i, len(row), len(headers))
		}
	}

	widths := columnWidths(rows, headers)

	lines := make([]string, 0, 2*len(rows)+3)
	lines = append(lines, rule(borderTop, widths))
	lines = append(lines, CenterHeader(row(headers, widths, align)))
	lines = append(lines, rule(borderHeader, widths))
	for i, r := range rows {
		if i > 0 {
			lines = append(lines, rule(borderRow, widths))
		}
		lines = append(lines, row(r, widths, align))
	}
	lines = append(lines, rule(borderBottom, widths))

	return models.RenderedTable{
		Lines: lines,
		Rows:  len(rows),
		Width: ansi.StringWidth(lines[0]),
	}, nil
}

// CenterHeader recenters every cell of a grid line within its existing
// width. Column alignment applies to the header too, so the header line is
// rebuilt after the fact. Lines without separators are returned unchanged
// and the display width never changes.
func CenterHeader(line string) string {
	parts := strings.Split(line, vertical)
	if len(parts) < 3 {
		return line
	}
	for i := 1; i < len(parts)-1; i++ {
		w := ansi.StringWidth(parts[i])
		parts[i] = lipgloss.PlaceHorizontal(w, lipgloss.Center, strings.TrimSpace(parts[i]))
	}
	return strings.Join(parts, vertical)
}

func columnWidths(rows [][]string, headers []string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = ansi.StringWidth(h) + headerPadding
	}
	for _, r := range rows {
		for i, cell := range r {
			widths[i] = max(widths[i], ansi.StringWidth(cell))
		}
	}
	return widths
}

func row(cells []string, widths []int, align []Alignment) string {
	margin := strings.Repeat(" ", cellMargin)

	var b strings.Builder
	b.WriteString(vertical)
	for i, cell := range cells {
		b.WriteString(margin)
		b.WriteString(lipgloss.PlaceHorizontal(widths[i], align[i].position(), cell))
		b.WriteString(margin)
		b.WriteString(vertical)
	}
	return b.String()
}

func rule(br border, widths []int) string {
	segs := make([]string, len(widths))
	for i, w := range widths {
		segs[i] = strings.Repeat(br.fill, w+2*cellMargin)
	}
	return br.left + strings.Join(segs, br.join) + br.right
}

// Package report wraps a rendered table with a title, timestamps and notes,
// placed for a given output width.
package report

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/j-veylop/covid-tracker/internal/models"
)

// WidthUnknown is passed when the output has no addressable width. Layout
// then degrades to left-aligned text with no padding.
const WidthUnknown = 0

const (
	// Title heads every report.
	Title = "Coronavirus (COVID-19) Tracker for Specific Countries"
	// Advisory replaces the table when no requested country was found.
	Advisory = "No data found for the requested countries"

	dateLayout      = "Jan 02, 2006"
	timeLayout      = "Monday 03:04 PM"
	referenceLayout = "01-02-2006 03:04 PM MST-0700"
)

// ReferenceZone is the fixed-offset clock shown next to local time.
var ReferenceZone = time.FixedZone("GMT", 0)

// Notes are printed under the table.
var Notes = []string{
	"  --> 'New' displays the live changes for the current day",
	"      (reset after midnight GMT +0)",
	"  --> Data acquired from www.worldometers.info/coronavirus/",
}

// Compose lays out the report. local and reference are the same instant
// read on the local and the reference clock. A table without rows yields
// only the centered advisory.
func Compose(table models.RenderedTable, local, reference time.Time, width int) models.Report {
	if table.Rows == 0 {
		return models.Report{Lines: []models.Line{
			blank(),
			{Text: Center(Advisory, width), Kind: models.LineAdvisory},
			blank(),
		}}
	}

	pad := LeftPad(width, table.Width)
	prefix := strings.Repeat(" ", pad)

	lines := make([]models.Line, 0, len(table.Lines)+len(Notes)+11)
	lines = append(lines,
		blank(),
		models.Line{Text: Center(Title, width), Kind: models.LineTitle},
		blank(),
		models.Line{Text: Center(local.Format(dateLayout), width), Kind: models.LineTimestamp},
		models.Line{Text: Center(local.Format(timeLayout), width), Kind: models.LineTimestamp},
		models.Line{Text: Center("["+reference.Format(referenceLayout)+"]", width), Kind: models.LineTimestamp},
		blank(),
	)
	for _, l := range table.Lines {
		lines = append(lines, models.Line{Text: prefix + l, Kind: models.LineTable})
	}
	lines = append(lines, blank(), models.Line{Text: prefix + "Note:", Kind: models.LineNote})
	for _, n := range Notes {
		lines = append(lines, models.Line{Text: prefix + n, Kind: models.LineNote})
	}
	lines = append(lines, blank())

	return models.Report{Lines: lines, LeftPad: pad}
}

// LeftPad returns the prefix that centers a block of tableWidth columns in
// width columns, never negative.
func LeftPad(width, tableWidth int) int {
	if width <= WidthUnknown {
		return 0
	}
	pad := int(math.Floor(float64(width)/2 - float64(tableWidth)/2))
	return max(pad, 0)
}

// Center places s in the middle of width columns. Strings at least as wide
// as width, and an unknown width, leave s unchanged.
func Center(s string, width int) string {
	if width <= WidthUnknown {
		return s
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

func blank() models.Line {
	return models.Line{Kind: models.LineBlank}
}

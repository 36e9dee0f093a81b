package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Column positions on the statistics page. The page layout is an external
// contract; a change there is handled here and nowhere else.
const (
	colName = iota
	colTotalCases
	colNewCases
	colTotalDeaths
	colNewDeaths

	minColumns
)

// RowView exposes named accessors over the cells of one table row.
type RowView struct {
	row   *goquery.Selection
	cells *goquery.Selection
}

// NewRowView wraps a <tr> selection.
func NewRowView(row *goquery.Selection) RowView {
	return RowView{row: row, cells: row.ChildrenFiltered("td")}
}

// Eligible reports whether the row is a plain country row. Aggregate rows
// (continents, world total) carry a non-empty style attribute on the page.
func (v RowView) Eligible() bool {
	if v.row.Length() == 0 {
		return false
	}
	style, ok := v.row.Attr("style")
	return !ok || strings.TrimSpace(style) == ""
}

// Len returns the number of cells in the row.
func (v RowView) Len() int {
	return v.cells.Length()
}

// HasName reports whether the row has a name cell at all.
func (v RowView) HasName() bool {
	return v.Len() > colName
}

// Complete reports whether every positional column is present.
func (v RowView) Complete() bool {
	return v.Len() >= minColumns
}

// Name returns the country name. Linked names use the anchor text.
func (v RowView) Name() string {
	cell := v.cells.Eq(colName)
	if link := cell.Find("a").First(); link.Length() > 0 {
		return strings.TrimSpace(link.Text())
	}
	return strings.TrimSpace(cell.Text())
}

// TotalCases returns the cumulative case count text.
func (v RowView) TotalCases() string { return v.text(colTotalCases) }

// NewCases returns today's new case count text.
func (v RowView) NewCases() string { return v.text(colNewCases) }

// TotalDeaths returns the cumulative death count text.
func (v RowView) TotalDeaths() string { return v.text(colTotalDeaths) }

// NewDeaths returns today's new death count text.
func (v RowView) NewDeaths() string { return v.text(colNewDeaths) }

func (v RowView) text(i int) string {
	return strings.TrimSpace(v.cells.Eq(i).Text())
}

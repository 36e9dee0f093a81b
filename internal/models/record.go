// Package models defines data structures and domain types.
package models

// Record is one country's statistics snapshot as shown on the source page.
// Values are kept as display strings and may contain thousands separators,
// a leading "+", or be empty.
type Record struct {
	Country     string
	TotalCases  string
	NewCases    string
	TotalDeaths string
	NewDeaths   string
}

// Cells returns the record in display column order.
func (r Record) Cells() []string {
	return []string{r.Country, r.TotalCases, r.NewCases, r.TotalDeaths, r.NewDeaths}
}

// RecordSet is an ordered sequence of records. Once ranked, the order is the
// display order.
type RecordSet []Record

// Countries returns the canonical names in set order.
func (rs RecordSet) Countries() []string {
	names := make([]string, len(rs))
	for i, r := range rs {
		names[i] = r.Country
	}
	return names
}

// RenderedTable is a complete text grid: borders, header and data rows.
type RenderedTable struct {
	Lines []string
	// Rows is the number of data records in the grid.
	Rows int
	// Width is the display width of every grid line.
	Width int
}

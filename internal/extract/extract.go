// Package extract reads country rows out of the statistics page.
package extract

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"

	"github.com/j-veylop/covid-tracker/internal/logger"
	"github.com/j-veylop/covid-tracker/internal/models"
)

// Extract parses an HTML document and returns the rows for targets in
// document order.
func Extract(r io.Reader, targets []string) (models.RecordSet, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return ExtractDocument(doc, targets)
}

// ExtractDocument returns the records whose name is in targets. The first
// tbody of the document is the statistics table; a document without one is
// a structural mismatch. No targets or no matches is a valid, empty result.
func ExtractDocument(doc *goquery.Document, targets []string) (models.RecordSet, error) {
	tbody := doc.Find("tbody").First()
	if tbody.Length() == 0 {
		return nil, fmt.Errorf("%w: statistics table body not found", models.ErrStructuralMismatch)
	}
	if len(targets) == 0 {
		return models.RecordSet{}, nil
	}

	want := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		want[t] = struct{}{}
	}

	records := models.RecordSet{}
	seen := make(map[string]int)
	var skipped int

	var rowErr error
	tbody.ChildrenFiltered("tr").EachWithBreak(func(i int, tr *goquery.Selection) bool {
		row := NewRowView(tr)
		if !row.Eligible() {
			skipped++
			return true
		}
		if !row.HasName() {
			rowErr = fmt.Errorf("%w: row %d has no name cell", models.ErrStructuralMismatch, i)
			return false
		}

		name := row.Name()
		if _, ok := want[name]; !ok {
			return true
		}
		if !row.Complete() {
			rowErr = fmt.Errorf("%w: row for %q has %d cells, need %d",
				models.ErrStructuralMismatch, name, row.Len(), minColumns)
			return false
		}
		if first, dup := seen[name]; dup {
			logger.Warn("duplicate country row ignored", "country", name, "row", i, "first", first)
			return true
		}
		seen[name] = i

		records = append(records, models.Record{
			Country:     name,
			TotalCases:  row.TotalCases(),
			NewCases:    row.NewCases(),
			TotalDeaths: row.TotalDeaths(),
			NewDeaths:   row.NewDeaths(),
		})
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	logger.Debug("rows extracted", "matched", len(records), "targets", len(targets), "hidden", skipped)
	return records, nil
}

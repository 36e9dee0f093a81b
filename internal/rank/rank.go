// Package rank orders extracted records by total cases.
package rank

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/j-veylop/covid-tracker/internal/models"
)

// ParseCount parses a display count such as "1,234,567".
func ParseCount(s string) (int64, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	n, err := strconv.ParseInt(clean, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", models.ErrMalformedNumber, s)
	}
	return n, nil
}

// Rank returns a copy of records sorted by total cases, highest first.
// Records with equal totals keep their relative order.
func Rank(records models.RecordSet) (models.RecordSet, error) {
	type keyed struct {
		rec   models.Record
		total int64
	}

	items := make([]keyed, len(records))
	for i, r := range records {
		total, err := ParseCount(r.TotalCases)
		if err != nil {
			return nil, fmt.Errorf("total cases for %s: %w", r.Country, err)
		}
		items[i] = keyed{rec: r, total: total}
	}

	slices.SortStableFunc(items, func(a, b keyed) int {
		return cmp.Compare(b.total, a.total)
	})

	out := make(models.RecordSet, len(items))
	for i, it := range items {
		out[i] = it.rec
	}
	return out, nil
}

package models

// LineKind tells the output writer how a report line should be styled.
type LineKind int

const (
	// LineBlank is an empty spacer line.
	LineBlank LineKind = iota
	// LineTitle is the report heading.
	LineTitle
	// LineTimestamp is one of the generation time lines.
	LineTimestamp
	// LineTable is a border, header or data row of the grid.
	LineTable
	// LineNote is a footnote line.
	LineNote
	// LineAdvisory is shown instead of the table when nothing matched.
	LineAdvisory
)

// String returns the kind name used in debug logs.
func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineTitle:
		return "title"
	case LineTimestamp:
		return "timestamp"
	case LineTable:
		return "table"
	case LineNote:
		return "note"
	case LineAdvisory:
		return "advisory"
	default:
		return "unknown"
	}
}

// Line is a single print-ready report line.
type Line struct {
	Text string
	Kind LineKind
}

// Report is the composed, padded output of one run.
type Report struct {
	Lines []Line
	// LeftPad is the prefix width applied to table and note lines.
	LeftPad int
}

// Texts returns the raw text of every line.
func (r *Report) Texts() []string {
	out := make([]string, len(r.Lines))
	for i, l := range r.Lines {
		out[i] = l.Text
	}
	return out
}

// Empty reports whether the report is the no-match advisory.
func (r *Report) Empty() bool {
	for _, l := range r.Lines {
		if l.Kind == LineTable {
			return false
		}
	}
	return true
}

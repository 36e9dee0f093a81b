// Package output prints composed reports. It is the only place that writes
// report text.
package output

import (
	"fmt"
	"io"

	"github.com/j-veylop/covid-tracker/internal/models"
	"github.com/j-veylop/covid-tracker/internal/ui/styles"
)

// Writer prints reports line by line.
type Writer struct {
	out    io.Writer
	styles styles.Styles
}

// NewWriter creates a writer for out. Styling follows mode and, in auto
// mode, the capabilities of out.
func NewWriter(out io.Writer, mode styles.ColorMode) *Writer {
	return &Writer{
		out:    out,
		styles: styles.New(styles.NewRenderer(out, mode)),
	}
}

// Write prints every line of r followed by a newline.
func (w *Writer) Write(r *models.Report) error {
	for _, line := range r.Lines {
		text := line.Text
		if style, ok := w.styles.For(line.Kind); ok && text != "" {
			text = style.Render(text)
		}
		if _, err := fmt.Fprintln(w.out, text); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}

package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j-veylop/covid-tracker/internal/models"
	"github.com/j-veylop/covid-tracker/internal/ui/styles"
)

var sampleReport = &models.Report{Lines: []models.Line{
	{Kind: models.LineBlank},
	{Text: "   Title   ", Kind: models.LineTitle},
	{Text: "Mar 15, 2020", Kind: models.LineTimestamp},
	{Text: "  ╒══╕", Kind: models.LineTable},
	{Text: "  Note:", Kind: models.LineNote},
	{Kind: models.LineBlank},
}}

func TestWriter_PlainForNonTerminal(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewWriter(&buf, styles.ColorAuto).Write(sampleReport))

	want := strings.Join(sampleReport.Texts(), "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestWriter_ColorNever(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewWriter(&buf, styles.ColorNever).Write(sampleReport))

	assert.NotContains(t, buf.String(), "\x1b[")
	assert.Equal(t, len(sampleReport.Lines), strings.Count(buf.String(), "\n"))
}

func TestWriter_ColorAlways(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewWriter(&buf, styles.ColorAlways).Write(sampleReport))

	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "Title")
	assert.Equal(t, len(sampleReport.Lines), strings.Count(out, "\n"))
	assert.True(t, strings.HasPrefix(out, "\n"), "blank lines stay unstyled")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestWriter_PropagatesErrors(t *testing.T) {
	err := NewWriter(failingWriter{}, styles.ColorNever).Write(sampleReport)
	assert.Error(t, err)
}

// Package services runs the fetch, extract, rank, render and compose
// pipeline for one report.
package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/j-veylop/covid-tracker/internal/extract"
	"github.com/j-veylop/covid-tracker/internal/logger"
	"github.com/j-veylop/covid-tracker/internal/models"
	"github.com/j-veylop/covid-tracker/internal/rank"
	"github.com/j-veylop/covid-tracker/internal/render"
	"github.com/j-veylop/covid-tracker/internal/report"
)

// Tracker produces a report from a statistics document.
type Tracker struct {
	fetcher    Fetcher
	headers    []string
	alignments []render.Alignment
	now        func() time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithColumns overrides the header labels and their alignment.
func WithColumns(headers []string, alignments []render.Alignment) Option {
	return func(t *Tracker) {
		t.headers = headers
		t.alignments = alignments
	}
}

// NewTracker creates a tracker that reads documents through fetcher.
func NewTracker(fetcher Fetcher, opts ...Option) *Tracker {
	t := &Tracker{
		fetcher:    fetcher,
		headers:    render.DefaultHeaders,
		alignments: render.DefaultAlignments,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Run fetches source and builds the report for targets. The whole document
// is read before extraction starts.
func (t *Tracker) Run(ctx context.Context, source string, targets []string, width int) (*models.Report, error) {
	start := time.Now()
	body, err := t.fetcher.Fetch(ctx, source)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := body.Close(); err != nil {
			logger.Error("failed to close document", "error", err)
		}
	}()
	logger.Debug("fetch complete", "source", source, "elapsed", time.Since(start))

	return t.Process(body, targets, width)
}

// Process runs the pure part of the pipeline over an already retrieved
// document.
func (t *Tracker) Process(doc io.Reader, targets []string, width int) (*models.Report, error) {
	records, err := extract.Extract(doc, targets)
	if err != nil {
		return nil, fmt.Errorf("failed to extract rows: %w", err)
	}

	ranked, err := rank.Rank(records)
	if err != nil {
		return nil, fmt.Errorf("failed to rank rows: %w", err)
	}
	logger.Debug("rows ranked", "order", ranked.Countries())

	table, err := render.Render(ranked, t.headers, t.alignments)
	if err != nil {
		return nil, fmt.Errorf("failed to render table: %w", err)
	}

	now := t.now()
	rep := report.Compose(table, now, now.In(report.ReferenceZone), width)
	logger.Debug("report composed", "lines", len(rep.Lines), "leftPad", rep.LeftPad, "width", width)
	return &rep, nil
}

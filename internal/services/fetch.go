package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/j-veylop/covid-tracker/internal/logger"
	"github.com/j-veylop/covid-tracker/internal/models"
)

// DefaultMaxDocumentSize bounds how much of a response body is accepted.
const DefaultMaxDocumentSize = 16 << 20

// Fetcher retrieves the raw statistics document.
type Fetcher interface {
	Fetch(ctx context.Context, source string) (io.ReadCloser, error)
}

// HTTPFetcher performs a single GET per call.
type HTTPFetcher struct {
	Client    *http.Client
	UserAgent string
	// MaxBytes caps the document size; zero means DefaultMaxDocumentSize.
	MaxBytes int64
}

// NewHTTPFetcher creates a fetcher whose requests give up after timeout.
func NewHTTPFetcher(timeout time.Duration, userAgent string) *HTTPFetcher {
	return &HTTPFetcher{
		Client:    &http.Client{Timeout: timeout},
		UserAgent: userAgent,
	}
}

// Fetch downloads source and returns the complete document. Any network
// failure, non-200 status or oversized document is returned wrapped in
// models.ErrTransport.
func (f *HTTPFetcher) Fetch(ctx context.Context, source string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", models.ErrTransport, err)
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}
	req.Header.Set("Accept", "text/html")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %w", models.ErrTransport, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Error("failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: GET %s returned status %d: %s",
			models.ErrTransport, source, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	limit := f.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxDocumentSize
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", models.ErrTransport, source, err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: document from %s exceeds %d bytes", models.ErrTransport, source, limit)
	}

	logger.Debug("document fetched", "url", source, "status", resp.StatusCode, "bytes", len(data))
	return io.NopCloser(bytes.NewReader(data)), nil
}

// FileFetcher reads a saved copy of the page from disk.
type FileFetcher struct{}

// Fetch opens the file at source. A "file://" prefix is accepted.
func (FileFetcher) Fetch(_ context.Context, source string) (io.ReadCloser, error) {
	path := strings.TrimPrefix(source, "file://")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrTransport, err)
	}
	return f, nil
}

// SourceFetcher routes http(s) sources to HTTP and everything else to the
// file system.
type SourceFetcher struct {
	HTTP Fetcher
	File Fetcher
}

// NewSourceFetcher builds the default router.
func NewSourceFetcher(timeout time.Duration, userAgent string) *SourceFetcher {
	return &SourceFetcher{
		HTTP: NewHTTPFetcher(timeout, userAgent),
		File: FileFetcher{},
	}
}

// Fetch dispatches on the scheme of source.
func (s *SourceFetcher) Fetch(ctx context.Context, source string) (io.ReadCloser, error) {
	if isRemote(source) {
		return s.HTTP.Fetch(ctx, source)
	}
	return s.File.Fetch(ctx, source)
}

func isRemote(source string) bool {
	u, err := url.Parse(source)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

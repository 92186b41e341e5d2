// Package csvsource loads the sensor CSV resource from disk or over HTTP
// and parses it into raw rows for normalization.
package csvsource

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Nancy240/Forest-monitoring-data/internal/domain"
)

// Source fetches and parses the CSV resource into raw rows.
type Source interface {
	Fetch(ctx context.Context) ([]domain.RawRow, error)
}

// New picks a source implementation from the location string: http(s) URLs
// get an HTTPSource, anything else is treated as a filesystem path.
func New(location string, timeout time.Duration, logger *slog.Logger) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTPSource(location, timeout, logger)
	}
	return NewFileSource(location, logger)
}

// FileSource reads the CSV from a local path.
type FileSource struct {
	path   string
	logger *slog.Logger
}

// NewFileSource creates a source backed by a file on disk.
func NewFileSource(path string, logger *slog.Logger) *FileSource {
	return &FileSource{path: path, logger: logger}
}

func (s *FileSource) Fetch(_ context.Context) ([]domain.RawRow, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read csv file %s: %w", s.path, err)
	}

	rows, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse csv file %s: %w", s.path, err)
	}

	s.logger.Debug("csv file fetched", "path", s.path, "rows", len(rows))
	return rows, nil
}

// HTTPSource fetches the CSV from a URL.
type HTTPSource struct {
	url    string
	client *resty.Client
	logger *slog.Logger
}

// NewHTTPSource creates a source backed by an HTTP(S) URL.
func NewHTTPSource(url string, timeout time.Duration, logger *slog.Logger) *HTTPSource {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(250 * time.Millisecond)

	return &HTTPSource{url: url, client: client, logger: logger}
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]domain.RawRow, error) {
	resp, err := s.client.R().SetContext(ctx).Get(s.url)
	if err != nil {
		return nil, fmt.Errorf("fetch csv %s: %w", s.url, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch csv %s: unexpected status %d", s.url, resp.StatusCode())
	}

	rows, err := Parse(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("parse csv %s: %w", s.url, err)
	}

	s.logger.Debug("csv url fetched", "url", s.url, "rows", len(rows))
	return rows, nil
}

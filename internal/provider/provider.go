// Package provider reads the park dataset from its external source. A
// provider is read-only and is called at most once per directory session.
package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"parkgrip/internal/domain"
)

// Provider fetches the full list of parks
type Provider interface {
	FetchParks(ctx context.Context) ([]domain.Park, error)
}

// Options configure how a source is fetched and decoded
type Options struct {
	RecordsPath string
	Timeout     time.Duration
	Logger      *zap.Logger
	Client      *http.Client
}

// maxBodyBytes caps what we are willing to read from a source
const maxBodyBytes = 8 << 20

// New returns an HTTP provider for http(s) sources and a file provider otherwise
func New(source string, opts Options) Provider {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if !IsFileSource(source) {
		return NewHTTPProvider(source, opts)
	}
	return NewFileProvider(source, opts)
}

// IsFileSource reports whether source names a local file rather than a URL
func IsFileSource(source string) bool {
	return !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://")
}

// HTTPProvider performs a single GET against a URL
type HTTPProvider struct {
	url    string
	opts   Options
	client *http.Client
}

// NewHTTPProvider creates an HTTP-backed provider
func NewHTTPProvider(url string, opts Options) *HTTPProvider {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	client := opts.Client
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPProvider{url: url, opts: opts, client: client}
}

// FetchParks implements Provider
func (p *HTTPProvider) FetchParks(ctx context.Context) ([]domain.Park, error) {
	if p.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.opts.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", p.url, err)
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9")

	start := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", p.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch %s: unexpected status %s", p.url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", p.url, err)
	}

	format := FormatFor(p.url)
	if ct := resp.Header.Get("Content-Type"); strings.Contains(ct, "yaml") {
		format = FormatYAML
	}

	parks, dropped, err := Decode(body, format, p.opts.RecordsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", p.url, err)
	}

	p.opts.Logger.Info("fetched parks",
		zap.String("url", p.url),
		zap.Int("parks", len(parks)),
		zap.Int("dropped", dropped),
		zap.Duration("took", time.Since(start)))
	return parks, nil
}

// FileProvider reads a dataset from the local filesystem
type FileProvider struct {
	path string
	opts Options
}

// NewFileProvider creates a file-backed provider
func NewFileProvider(path string, opts Options) *FileProvider {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &FileProvider{path: path, opts: opts}
}

// FetchParks implements Provider
func (p *FileProvider) FetchParks(ctx context.Context) ([]domain.Park, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", p.path, err)
	}

	parks, dropped, err := Decode(data, FormatFor(p.path), p.opts.RecordsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", p.path, err)
	}

	p.opts.Logger.Info("read parks",
		zap.String("path", p.path),
		zap.Int("parks", len(parks)),
		zap.Int("dropped", dropped))
	return parks, nil
}

// Func adapts a plain function to Provider
type Func func(ctx context.Context) ([]domain.Park, error)

// FetchParks implements Provider
func (f Func) FetchParks(ctx context.Context) ([]domain.Park, error) {
	return f(ctx)
}

// Package http provides HTTP implementations of pdffetch.Fetcher and
// pdffetch.Prober sharing one connection pool.
package http

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Default timeouts for document downloads and header-only probes.
const (
	DefaultFetchTimeout = 30 * time.Second
	DefaultProbeTimeout = 10 * time.Second
)

// DefaultUserAgent identifies requests as a desktop browser; some document
// hosts refuse clients that do not.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// NewClient returns an HTTP client whose transport keeps idle connections
// for reuse. The client is safe for concurrent use and carries no timeout
// of its own; fetchers bound each request individually.
func NewClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 16
	return &http.Client{Transport: transport}
}

// options holds configuration shared by Fetcher and Prober.
type options struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	logger    *slog.Logger
}

// Option configures a Fetcher or Prober.
type Option func(*options)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithClient sets the HTTP client, typically one created by NewClient and
// shared between a Fetcher and a Prober.
func WithClient(c *http.Client) Option {
	return func(o *options) {
		o.client = c
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(o *options) {
		o.userAgent = ua
	}
}

// WithLogger sets the logger for advisory warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(timeout time.Duration, opts []Option) options {
	o := options{
		timeout:   timeout,
		userAgent: DefaultUserAgent,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.client == nil {
		o.client = NewClient()
	}
	return o
}

// LooksLikePDF reports whether a declared content type or the URL path
// suggests a PDF document.
func LooksLikePDF(contentType, rawURL string) bool {
	if strings.Contains(strings.ToLower(contentType), "pdf") {
		return true
	}
	if strings.HasSuffix(strings.ToLower(rawURL), ".pdf") {
		return true
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return strings.HasSuffix(strings.ToLower(u.Path), ".pdf")
}

package http

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fwojciec/pdffetch"
)

// Ensure Prober implements pdffetch.Prober at compile time.
var _ pdffetch.Prober = (*Prober)(nil)

// Prober reads document headers with a HEAD request.
type Prober struct {
	options
}

// NewProber creates a new Prober. The timeout defaults to
// DefaultProbeTimeout.
func NewProber(opts ...Option) *Prober {
	return &Prober{options: newOptions(DefaultProbeTimeout, opts)}
}

// Probe returns the headers describing the document at rawURL.
// Failures are reported in the Error field, never as a Go error.
func (p *Prober) Probe(ctx context.Context, rawURL string) *pdffetch.MetadataProbe {
	if err := pdffetch.ValidateURL(rawURL); err != nil {
		return &pdffetch.MetadataProbe{Error: pdffetch.ErrorMessage(err), URL: rawURL}
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return &pdffetch.MetadataProbe{Error: err.Error(), URL: rawURL}
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return &pdffetch.MetadataProbe{Error: err.Error(), URL: rawURL}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &pdffetch.MetadataProbe{Error: fmt.Sprintf("HTTP %d for %s", resp.StatusCode, rawURL), URL: rawURL}
	}

	contentLength := resp.Header.Get("Content-Length")
	if contentLength == "" && resp.ContentLength >= 0 {
		contentLength = strconv.FormatInt(resp.ContentLength, 10)
	}

	return &pdffetch.MetadataProbe{
		ContentType:   resp.Header.Get("Content-Type"),
		ContentLength: contentLength,
		LastModified:  resp.Header.Get("Last-Modified"),
		StatusCode:    resp.StatusCode,
		URL:           rawURL,
	}
}

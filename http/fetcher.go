package http

import (
	"context"
	"io"
	"net/http"

	"github.com/fwojciec/pdffetch"
)

// Ensure Fetcher implements pdffetch.Fetcher at compile time.
var _ pdffetch.Fetcher = (*Fetcher)(nil)

// Fetcher downloads documents with a single GET request per call.
// It does not retry.
type Fetcher struct {
	options
}

// NewFetcher creates a new Fetcher. The timeout defaults to
// DefaultFetchTimeout.
func NewFetcher(opts ...Option) *Fetcher {
	return &Fetcher{options: newOptions(DefaultFetchTimeout, opts)}
}

// Fetch downloads the document at rawURL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*pdffetch.RawDocument, error) {
	if err := pdffetch.ValidateURL(rawURL); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, pdffetch.Errorf(pdffetch.EINVALID, "invalid request for %s: %v", rawURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/pdf,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, pdffetch.Errorf(pdffetch.ENETWORK, "error downloading %s: %v", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, pdffetch.Errorf(pdffetch.ENETWORK, "HTTP %d for %s", resp.StatusCode, rawURL)
	}

	contentType := resp.Header.Get("Content-Type")
	if !LooksLikePDF(contentType, rawURL) {
		f.logger.Warn("URL might not be a PDF", "url", rawURL, "content_type", contentType)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, pdffetch.Errorf(pdffetch.ENETWORK, "error reading body of %s: %v", rawURL, err)
	}

	return &pdffetch.RawDocument{Data: body, ContentType: contentType}, nil
}

package pdffetch

import (
	"context"
	"net/url"
)

// RawDocument is the undecoded body of a fetched document.
// It is created by a Fetcher and consumed by an Extractor; neither keeps it.
type RawDocument struct {
	Data        []byte
	ContentType string
}

// Fetcher retrieves raw document bytes from URLs.
type Fetcher interface {
	// Fetch validates the URL and downloads the document body.
	// Returns EINVALID for malformed URLs without touching the network,
	// and ENETWORK for transport failures, timeouts and non-2xx responses.
	Fetch(ctx context.Context, url string) (*RawDocument, error)
}

// MetadataProbe describes a remote document without downloading its body.
// Either Error is set, or the header fields are.
type MetadataProbe struct {
	ContentType   string `json:"content_type,omitempty"`
	ContentLength string `json:"content_length,omitempty"`
	LastModified  string `json:"last_modified,omitempty"`
	StatusCode    int    `json:"status_code,omitempty"`
	URL           string `json:"url"`
	Error         string `json:"error,omitempty"`
}

// Prober looks up document metadata with a header-only request.
type Prober interface {
	// Probe never fails; transport problems are reported in MetadataProbe.Error.
	Probe(ctx context.Context, url string) *MetadataProbe
}

// ValidateURL returns EINVALID unless rawURL is an absolute URI with both
// a scheme and a host.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return Errorf(EINVALID, "URL required")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return Errorf(EINVALID, "invalid URL format: %s", rawURL)
	}
	if u.Scheme == "" || u.Host == "" {
		return Errorf(EINVALID, "invalid URL format: %s", rawURL)
	}
	return nil
}

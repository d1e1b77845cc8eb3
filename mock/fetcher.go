package mock

import (
	"context"

	"github.com/fwojciec/pdffetch"
)

var (
	_ pdffetch.Fetcher = (*Fetcher)(nil)
	_ pdffetch.Prober  = (*Prober)(nil)
)

// Fetcher is a mock implementation of pdffetch.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*pdffetch.RawDocument, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*pdffetch.RawDocument, error) {
	return f.FetchFn(ctx, url)
}

// Prober is a mock implementation of pdffetch.Prober.
type Prober struct {
	ProbeFn func(ctx context.Context, url string) *pdffetch.MetadataProbe
}

func (p *Prober) Probe(ctx context.Context, url string) *pdffetch.MetadataProbe {
	return p.ProbeFn(ctx, url)
}

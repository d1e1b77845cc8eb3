package mock

import (
	"context"

	"github.com/fwojciec/pdffetch"
)

var _ pdffetch.Processor = (*Processor)(nil)

// Processor is a mock implementation of pdffetch.Processor.
type Processor struct {
	ProcessFn func(ctx context.Context, url string, method string) *pdffetch.Result
}

func (p *Processor) Process(ctx context.Context, url string, method string) *pdffetch.Result {
	return p.ProcessFn(ctx, url, method)
}

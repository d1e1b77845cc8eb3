package mock

import "github.com/fwojciec/pdffetch"

var (
	_ pdffetch.Extractor         = (*Extractor)(nil)
	_ pdffetch.ExtractorRegistry = (*ExtractorRegistry)(nil)
	_ pdffetch.PageSource        = (*PageSource)(nil)
)

// Extractor is a mock implementation of pdffetch.Extractor.
type Extractor struct {
	ExtractFn func(data []byte) (*pdffetch.ExtractionResult, error)
}

func (e *Extractor) Extract(data []byte) (*pdffetch.ExtractionResult, error) {
	return e.ExtractFn(data)
}

// ExtractorRegistry is a mock implementation of pdffetch.ExtractorRegistry.
type ExtractorRegistry struct {
	GetFn      func(strategy pdffetch.Strategy) pdffetch.Extractor
	RegisterFn func(strategy pdffetch.Strategy, extractor pdffetch.Extractor)
	ListFn     func() []pdffetch.Strategy
}

func (r *ExtractorRegistry) Get(strategy pdffetch.Strategy) pdffetch.Extractor {
	return r.GetFn(strategy)
}

func (r *ExtractorRegistry) Register(strategy pdffetch.Strategy, extractor pdffetch.Extractor) {
	r.RegisterFn(strategy, extractor)
}

func (r *ExtractorRegistry) List() []pdffetch.Strategy {
	return r.ListFn()
}

// PageSource is a mock implementation of pdffetch.PageSource.
type PageSource struct {
	NumPageFn  func() int
	PageTextFn func(n int) (string, error)
}

func (s *PageSource) NumPage() int {
	return s.NumPageFn()
}

func (s *PageSource) PageText(n int) (string, error) {
	return s.PageTextFn(n)
}

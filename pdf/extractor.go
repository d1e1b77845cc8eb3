// Package pdf implements pdffetch.Extractor on top of github.com/ledongthuc/pdf.
package pdf

import (
	"bytes"
	"log/slog"

	"github.com/fwojciec/pdffetch"
	"github.com/ledongthuc/pdf"
)

// Ensure Extractor implements pdffetch.Extractor at compile time.
var _ pdffetch.Extractor = (*Extractor)(nil)

// Extractor extracts page-delimited text from PDF bytes using one strategy.
// It holds no per-document state and is safe for concurrent use.
type Extractor struct {
	strategy pdffetch.Strategy
	pageText pageTextFunc
	logger   *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger used for per-page warnings.
// Defaults to a logger that discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// NewExtractor creates an Extractor for the given strategy.
// Unknown strategies get the default layout-aware algorithm.
func NewExtractor(strategy pdffetch.Strategy, opts ...Option) *Extractor {
	strategy, _ = pdffetch.ParseStrategy(string(strategy))
	e := &Extractor{
		strategy: strategy,
		logger:   slog.New(slog.DiscardHandler),
	}
	switch strategy {
	case pdffetch.StrategyFastLenient:
		e.pageText = plainText
	default:
		e.pageText = layoutText
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Strategy returns the extraction strategy this Extractor applies.
func (e *Extractor) Strategy() pdffetch.Strategy {
	return e.strategy
}

// Extract opens data as a PDF and collects the text of every page.
// Documents that cannot be opened yield an empty result and EMALFORMED;
// reporting them is left to the caller.
func (e *Extractor) Extract(data []byte) (*pdffetch.ExtractionResult, error) {
	doc, err := open(data, e.pageText)
	if err != nil {
		return &pdffetch.ExtractionResult{}, err
	}

	e.logger.Info("processing PDF", "pages", doc.NumPage(), "strategy", e.strategy)

	return pdffetch.CollectPages(doc, func(page int, err error) {
		e.logger.Warn("skipping page", "page", page, "strategy", e.strategy, "err", err)
	}), nil
}

// pageTextFunc extracts the text of one page.
type pageTextFunc func(p pdf.Page) (string, error)

// document adapts a pdf.Reader to pdffetch.PageSource.
type document struct {
	reader   *pdf.Reader
	numPage  int
	pageText pageTextFunc
}

// open parses data, converting both errors and panics from the PDF reader
// into EMALFORMED.
func open(data []byte, pageText pageTextFunc) (doc *document, err error) {
	if len(data) == 0 {
		return nil, pdffetch.Errorf(pdffetch.EMALFORMED, "empty document")
	}

	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, pdffetch.Errorf(pdffetch.EMALFORMED, "corrupt PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, pdffetch.Errorf(pdffetch.EMALFORMED, "corrupt PDF: %v", err)
	}

	return &document{
		reader:   reader,
		numPage:  reader.NumPage(),
		pageText: pageText,
	}, nil
}

func (d *document) NumPage() int {
	return d.numPage
}

// PageText returns the text of page n. Pages missing from the page tree
// read as empty.
func (d *document) PageText(n int) (string, error) {
	p := d.reader.Page(n)
	if p.V.IsNull() {
		return "", nil
	}
	return d.pageText(p)
}

// Package pipeline turns a URL into a pdffetch.Result by chaining a
// Fetcher and an Extractor, and exposes the agent-facing tool functions.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/pdffetch"
	"github.com/google/uuid"
)

// Ensure Processor implements pdffetch.Processor at compile time.
var _ pdffetch.Processor = (*Processor)(nil)

// Processor downloads a document and extracts its text.
// It keeps no state between calls and is safe for concurrent use as long
// as its dependencies are.
type Processor struct {
	Fetcher    pdffetch.Fetcher
	Extractors pdffetch.ExtractorRegistry
	Logger     *slog.Logger
}

// Process runs Validate → Fetch → Extract → Evaluate for one URL.
// An unknown method falls back to pdffetch.DefaultStrategy.
func (p *Processor) Process(ctx context.Context, rawURL string, method string) (result *pdffetch.Result) {
	strategy, ok := pdffetch.ParseStrategy(method)
	logger := p.logger().With("request_id", uuid.NewString())
	if !ok {
		logger.Warn("invalid extraction method, using default", "method", method, "default", strategy)
	}

	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprintf("Unexpected error processing PDF: %v", r)
			logger.Error(msg, "url", rawURL)
			result = pdffetch.NewFailure(rawURL, strategy, msg)
		}
	}()

	logger.Info("processing PDF", "url", rawURL, "method", strategy)

	doc, err := p.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		logger.Error("download PDF", "url", rawURL, "code", pdffetch.ErrorCode(err), "err", pdffetch.ErrorMessage(err))
		return pdffetch.NewFailure(rawURL, strategy, pdffetch.ErrMsgDownloadFailed)
	}

	extractor := p.extractor(strategy)
	if extractor == nil {
		msg := fmt.Sprintf("Unexpected error processing PDF: no extractor registered for %s", strategy)
		logger.Error(msg, "url", rawURL)
		return pdffetch.NewFailure(rawURL, strategy, msg)
	}

	extracted, err := extractor.Extract(doc.Data)
	if err != nil {
		// A document that cannot be opened is reported as producing no text.
		logger.Warn("extract text", "url", rawURL, "code", pdffetch.ErrorCode(err), "err", pdffetch.ErrorMessage(err))
	}
	if extracted == nil || strings.TrimSpace(extracted.Text) == "" {
		logger.Error(pdffetch.ErrMsgNoText, "url", rawURL, "code", pdffetch.EEMPTY)
		return pdffetch.NewFailure(rawURL, strategy, pdffetch.ErrMsgNoText)
	}

	length := utf8.RuneCountInString(extracted.Text)
	logger.Info("processed PDF", "url", rawURL, "pages", extracted.PagesProcessed, "characters", length)

	return &pdffetch.Result{
		Success: true,
		Text:    extracted.Text,
		Metadata: pdffetch.Metadata{
			URL:            rawURL,
			Method:         strategy,
			PagesProcessed: extracted.PagesProcessed,
			ContentLength:  length,
		},
	}
}

// extractor returns the extractor for strategy, falling back to the
// default strategy's extractor.
func (p *Processor) extractor(strategy pdffetch.Strategy) pdffetch.Extractor {
	if e := p.Extractors.Get(strategy); e != nil {
		return e
	}
	return p.Extractors.Get(pdffetch.DefaultStrategy)
}

func (p *Processor) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}

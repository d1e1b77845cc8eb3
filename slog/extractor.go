package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pdffetch"
)

// Ensure LoggingExtractor implements pdffetch.Extractor.
var _ pdffetch.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next     pdffetch.Extractor
	strategy pdffetch.Strategy
	logger   *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor. The strategy is only
// used to label log lines.
func NewLoggingExtractor(next pdffetch.Extractor, strategy pdffetch.Strategy, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, strategy: strategy, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the result size.
func (e *LoggingExtractor) Extract(data []byte) (result *pdffetch.ExtractionResult, err error) {
	defer func(begin time.Time) {
		var pages, chars int
		if result != nil {
			pages = result.PagesProcessed
			chars = len(result.Text)
		}
		e.logger.Info("extract",
			"strategy", e.strategy,
			"bytes", len(data),
			"pages", pages,
			"text_bytes", chars,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(data)
}

// WrapRegistry re-registers every extractor in r behind a LoggingExtractor.
func WrapRegistry(r pdffetch.ExtractorRegistry, logger *slog.Logger) {
	for _, strategy := range r.List() {
		r.Register(strategy, NewLoggingExtractor(r.Get(strategy), strategy, logger))
	}
}

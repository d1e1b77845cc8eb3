package pdffetch

import (
	"fmt"
	"regexp"
	"strings"
)

// Strategy names a text extraction algorithm.
type Strategy string

// Strategy constants.
const (
	// StrategyLayoutAware reconstructs text row by row from glyph positions.
	// It reads multi-column and tabular pages in visual order.
	StrategyLayoutAware Strategy = "layoutAware"

	// StrategyFastLenient emits text in content-stream order.
	StrategyFastLenient Strategy = "fastLenient"
)

// DefaultStrategy is used whenever a caller does not name a known strategy.
const DefaultStrategy = StrategyLayoutAware

// ParseStrategy maps a method name to a Strategy. Unknown names map to
// DefaultStrategy with ok set to false; they are never an error.
func ParseStrategy(method string) (strategy Strategy, ok bool) {
	switch Strategy(method) {
	case StrategyLayoutAware, StrategyFastLenient:
		return Strategy(method), true
	}
	return DefaultStrategy, false
}

// ExtractionResult holds page-delimited text extracted from a document.
type ExtractionResult struct {
	// Text is the concatenation of page blocks, each starting with a page marker.
	Text string

	// PagesProcessed counts the page markers in Text.
	PagesProcessed int
}

// Extractor converts raw document bytes into page-ordered plain text.
type Extractor interface {
	// Extract always returns a non-nil result. A document that cannot be
	// opened yields an empty result together with an EMALFORMED error.
	// Zero pages with text is not an error.
	Extract(data []byte) (*ExtractionResult, error)
}

// ExtractorRegistry maps strategies to extractors.
type ExtractorRegistry interface {
	// Get returns the extractor for a strategy, or nil if none is registered.
	Get(strategy Strategy) Extractor
	Register(strategy Strategy, extractor Extractor)
	List() []Strategy
}

// PageSource exposes the pages of an opened document.
type PageSource interface {
	NumPage() int

	// PageText returns the text of the 1-based page n.
	PageText(n int) (string, error)
}

// PageSkipFunc is called for every page whose text could not be read.
type PageSkipFunc func(page int, err error)

// PageMarker returns the delimiter that opens the text of the 1-based page n.
func PageMarker(n int) string {
	return fmt.Sprintf("--- Page %d ---", n)
}

// pageBlockRe matches a marker framed the way CollectPages frames it: a
// blank line before it (or the start of text) and a blank line after it.
var pageBlockRe = regexp.MustCompile(`(?:^|\n)\n--- Page \d+ ---\n\n`)

// CountPageMarkers counts the page blocks in text produced by CollectPages.
// A marker-like line inside page text only counts when it is surrounded by
// blank lines.
func CountPageMarkers(text string) int {
	return len(pageBlockRe.FindAllStringIndex(text, -1))
}

// CollectPages walks src in page order and builds an ExtractionResult.
// Pages that fail (including by panicking) are reported to skip and left
// out; pages without visible text are left out silently.
func CollectPages(src PageSource, skip PageSkipFunc) *ExtractionResult {
	var parts []string
	processed := 0

	total := src.NumPage()
	for n := 1; n <= total; n++ {
		text, err := pageText(src, n)
		if err != nil {
			if skip != nil {
				skip(n, err)
			}
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		parts = append(parts, "\n"+PageMarker(n)+"\n", text)
		processed++
	}

	return &ExtractionResult{
		Text:           strings.Join(parts, "\n"),
		PagesProcessed: processed,
	}
}

// pageText reads one page, converting a panic into an error.
func pageText(src PageSource, n int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("page %d: %v", n, r)
		}
	}()
	return src.PageText(n)
}

package pdffetch

import "context"

// Failure messages carried in Result.Error.
const (
	ErrMsgDownloadFailed = "Failed to download PDF"
	ErrMsgNoText         = "No text could be extracted from PDF"
)

// Metadata describes how a Result was produced.
type Metadata struct {
	URL            string   `json:"url"`
	Method         Strategy `json:"method"`
	PagesProcessed int      `json:"pages_processed"`
	ContentLength  int      `json:"content_length"`
}

// Result is the envelope returned for every processing request.
// A successful result has non-empty Text and no Error; a failed result
// has empty Text and a non-empty Error.
type Result struct {
	Success  bool     `json:"success"`
	Text     string   `json:"text"`
	Error    string   `json:"error,omitempty"`
	Metadata Metadata `json:"metadata"`
}

// NewFailure returns a failed Result with zeroed counters.
func NewFailure(url string, method Strategy, msg string) *Result {
	return &Result{
		Error: msg,
		Metadata: Metadata{
			URL:    url,
			Method: method,
		},
	}
}

// Processor downloads a document and extracts its text.
type Processor interface {
	// Process never returns nil. Failures are reported in Result.Error.
	Process(ctx context.Context, url string, method string) *Result
}

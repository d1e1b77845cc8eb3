// Package slog provides logging decorators for pdffetch services.
package slog

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pdffetch"
)

// Ensure LoggingFetcher implements pdffetch.Fetcher.
var _ pdffetch.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   pdffetch.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next pdffetch.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the download size, checksum and duration, and delegates to
// the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (doc *pdffetch.RawDocument, err error) {
	defer func(begin time.Time) {
		var size int
		var checksum, contentType string
		if doc != nil {
			size = len(doc.Data)
			checksum = strconv.FormatUint(xxhash.Sum64(doc.Data), 16)
			contentType = doc.ContentType
		}
		f.logger.Info("fetch",
			"url", url,
			"bytes", size,
			"content_type", contentType,
			"xxhash", checksum,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

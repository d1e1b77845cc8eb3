package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pdffetch"
)

// Ensure LoggingProber implements pdffetch.Prober.
var _ pdffetch.Prober = (*LoggingProber)(nil)

// LoggingProber wraps a Prober with logging.
type LoggingProber struct {
	next   pdffetch.Prober
	logger *slog.Logger
}

// NewLoggingProber creates a new LoggingProber.
func NewLoggingProber(next pdffetch.Prober, logger *slog.Logger) *LoggingProber {
	return &LoggingProber{next: next, logger: logger}
}

// Probe delegates to the wrapped prober and logs the outcome.
func (p *LoggingProber) Probe(ctx context.Context, url string) (probe *pdffetch.MetadataProbe) {
	defer func(begin time.Time) {
		if probe == nil {
			return
		}
		p.logger.Info("probe",
			"url", url,
			"status", probe.StatusCode,
			"content_type", probe.ContentType,
			"duration", time.Since(begin),
			"err", probe.Error,
		)
	}(time.Now())
	return p.next.Probe(ctx, url)
}

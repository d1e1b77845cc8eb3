// Package prometheus instruments pdffetch services with Prometheus metrics.
package prometheus

import (
	"context"
	"time"

	"github.com/fwojciec/pdffetch"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pdffetch"

// Outcome label values.
const (
	OutcomeSuccess        = "success"
	OutcomeDownloadFailed = "download_failed"
	OutcomeNoText         = "no_text"
	OutcomeError          = "error"
)

// Ensure Processor implements pdffetch.Processor.
var _ pdffetch.Processor = (*Processor)(nil)

// Processor wraps a pdffetch.Processor and records one observation per call.
type Processor struct {
	next pdffetch.Processor

	processed *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	pages     prometheus.Histogram
}

// NewProcessor creates a Processor and registers its collectors on reg.
func NewProcessor(next pdffetch.Processor, reg prometheus.Registerer) *Processor {
	p := &Processor{
		next: next,
		processed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "process_total",
			Help:      "Total PDF processing requests by method and outcome",
		}, []string{"method", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "process_duration_seconds",
			Help:      "PDF download and extraction duration",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"method"}),
		pages: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pages_processed",
			Help:      "Pages that produced text per successful request",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
	}

	reg.MustRegister(p.processed, p.duration, p.pages)

	return p
}

// Process delegates to the wrapped processor and records the outcome.
// Labels use the resolved strategy, so unknown method strings do not
// create new series.
func (p *Processor) Process(ctx context.Context, url string, method string) *pdffetch.Result {
	begin := time.Now()
	result := p.next.Process(ctx, url, method)

	label := string(result.Metadata.Method)
	p.duration.WithLabelValues(label).Observe(time.Since(begin).Seconds())
	p.processed.WithLabelValues(label, outcome(result)).Inc()
	if result.Success {
		p.pages.Observe(float64(result.Metadata.PagesProcessed))
	}

	return result
}

func outcome(r *pdffetch.Result) string {
	switch {
	case r.Success:
		return OutcomeSuccess
	case r.Error == pdffetch.ErrMsgDownloadFailed:
		return OutcomeDownloadFailed
	case r.Error == pdffetch.ErrMsgNoText:
		return OutcomeNoText
	default:
		return OutcomeError
	}
}

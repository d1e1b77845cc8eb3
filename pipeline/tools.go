package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/pdffetch"
)

// Tools is the function-call boundary offered to agents.
// Neither method panics or returns a Go error.
type Tools struct {
	Processor pdffetch.Processor
	Prober    pdffetch.Prober
	Logger    *slog.Logger
}

// DownloadAndParse processes the PDF at url and returns the formatted
// report, or a single "Failed to process PDF: ..." line.
func (t *Tools) DownloadAndParse(ctx context.Context, url string, method string) (report string) {
	logger := t.logger()

	defer func() {
		if r := recover(); r != nil {
			report = fmt.Sprintf("Unexpected error in download_and_parse_pdf: %v", r)
			logger.Error(report, "url", url)
		}
	}()

	result := t.Processor.Process(ctx, url, method)
	report = pdffetch.FormatReport(result)
	if !result.Success {
		logger.Error(report, "url", url)
	}
	return report
}

// Metadata looks up document headers without downloading the body.
func (t *Tools) Metadata(ctx context.Context, url string) (probe *pdffetch.MetadataProbe) {
	defer func() {
		if r := recover(); r != nil {
			probe = &pdffetch.MetadataProbe{Error: fmt.Sprint(r), URL: url}
		}
	}()
	return t.Prober.Probe(ctx, url)
}

func (t *Tools) logger() *slog.Logger {
	if t.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return t.Logger
}

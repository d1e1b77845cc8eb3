package pdffetch

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	reportTitle        = "=== PDF Processing Results ==="
	reportContentTitle = "=== Text Content ==="
	failurePrefix      = "Failed to process PDF: "
)

// ReportHeader holds the fields listed at the top of a formatted report.
type ReportHeader struct {
	URL            string
	PagesProcessed int
	ContentLength  int
	Method         Strategy
}

// FormatReport renders a Result for human or LLM consumption.
// Successful results get a header block followed by the extracted text.
// Failed results collapse to a single diagnostic line.
func FormatReport(r *Result) string {
	if !r.Success {
		return failurePrefix + r.Error
	}

	var b strings.Builder
	b.WriteString("\n" + reportTitle + "\n")
	fmt.Fprintf(&b, "Source URL: %s\n", r.Metadata.URL)
	fmt.Fprintf(&b, "Pages Processed: %d\n", r.Metadata.PagesProcessed)
	fmt.Fprintf(&b, "Content Length: %d characters\n", r.Metadata.ContentLength)
	fmt.Fprintf(&b, "Extraction Method: %s\n", r.Metadata.Method)
	b.WriteString(reportContentTitle + "\n\n")
	b.WriteString(r.Text)
	return b.String()
}

// ParseReport reads the header block of a report produced by FormatReport.
// Returns EINVALID for failure lines and for text that is not a report.
func ParseReport(report string) (*ReportHeader, error) {
	if strings.HasPrefix(report, failurePrefix) {
		return nil, Errorf(EINVALID, "report describes a failure: %s", strings.TrimPrefix(report, failurePrefix))
	}

	head, _, found := strings.Cut(report, reportContentTitle)
	if !found || !strings.Contains(head, reportTitle) {
		return nil, Errorf(EINVALID, "not a processing report")
	}

	var h ReportHeader
	seen := 0
	for _, line := range strings.Split(head, "\n") {
		key, value, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		switch key {
		case "Source URL":
			h.URL = value
		case "Pages Processed":
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, Errorf(EINVALID, "invalid page count %q", value)
			}
			h.PagesProcessed = n
		case "Content Length":
			n, err := strconv.Atoi(strings.TrimSuffix(value, " characters"))
			if err != nil {
				return nil, Errorf(EINVALID, "invalid content length %q", value)
			}
			h.ContentLength = n
		case "Extraction Method":
			h.Method = Strategy(value)
		default:
			continue
		}
		seen++
	}
	if seen != 4 {
		return nil, Errorf(EINVALID, "incomplete report header")
	}
	return &h, nil
}

package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/pdffetch"
	"github.com/fwojciec/pdffetch/mock"
	"github.com/fwojciec/pdffetch/pdf"
	pdfslog "github.com/fwojciec/pdffetch/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs strategy and page count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(data []byte) (*pdffetch.ExtractionResult, error) {
				return &pdffetch.ExtractionResult{Text: "\n--- Page 1 ---\n\nhi", PagesProcessed: 1}, nil
			},
		}

		result, err := pdfslog.NewLoggingExtractor(inner, pdffetch.StrategyFastLenient, logger).Extract([]byte("abc"))

		require.NoError(t, err)
		assert.Equal(t, 1, result.PagesProcessed)
		output := buf.String()
		assert.Contains(t, output, "msg=extract")
		assert.Contains(t, output, "strategy=fastLenient")
		assert.Contains(t, output, "bytes=3")
		assert.Contains(t, output, "pages=1")
	})

	t.Run("logs malformed document error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(data []byte) (*pdffetch.ExtractionResult, error) {
				return &pdffetch.ExtractionResult{}, pdffetch.Errorf(pdffetch.EMALFORMED, "corrupt PDF")
			},
		}

		_, err := pdfslog.NewLoggingExtractor(inner, pdffetch.StrategyLayoutAware, logger).Extract(nil)

		assert.Equal(t, pdffetch.EMALFORMED, pdffetch.ErrorCode(err))
		assert.Contains(t, buf.String(), "corrupt PDF")
	})
}

func TestWrapRegistry(t *testing.T) {
	t.Parallel()

	registry := pdf.NewDefaultRegistry()

	pdfslog.WrapRegistry(registry, slog.New(slog.DiscardHandler))

	for _, strategy := range registry.List() {
		_, ok := registry.Get(strategy).(*pdfslog.LoggingExtractor)
		assert.True(t, ok, "strategy %s", strategy)
	}
	assert.Len(t, registry.List(), 2)
}

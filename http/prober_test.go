package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/pdffetch"
	pdfhttp "github.com/fwojciec/pdffetch/http"
	"github.com/stretchr/testify/assert"
)

var _ pdffetch.Prober = (*pdfhttp.Prober)(nil)

func TestProber_Probe(t *testing.T) {
	t.Parallel()

	t.Run("returns headers without downloading body", func(t *testing.T) {
		t.Parallel()

		method := make(chan string, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			method <- r.Method
			w.Header().Set("Content-Type", "application/pdf")
			w.Header().Set("Content-Length", "1234")
			w.Header().Set("Last-Modified", "Wed, 21 Oct 2015 07:28:00 GMT")
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		probe := pdfhttp.NewProber().Probe(context.Background(), server.URL+"/doc.pdf")

		assert.Equal(t, http.MethodHead, <-method)
		assert.Equal(t, &pdffetch.MetadataProbe{
			ContentType:   "application/pdf",
			ContentLength: "1234",
			LastModified:  "Wed, 21 Oct 2015 07:28:00 GMT",
			StatusCode:    http.StatusOK,
			URL:           server.URL + "/doc.pdf",
		}, probe)
	})

	t.Run("sends overridden user agent", func(t *testing.T) {
		t.Parallel()

		gotUA := make(chan string, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA <- r.Header.Get("User-Agent")
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		probe := pdfhttp.NewProber(pdfhttp.WithUserAgent("pdffetch-test/1.0")).Probe(context.Background(), server.URL)

		assert.Empty(t, probe.Error)
		assert.Equal(t, "pdffetch-test/1.0", <-gotUA)
	})

	t.Run("reports non-2xx status as error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		probe := pdfhttp.NewProber().Probe(context.Background(), server.URL)

		assert.Contains(t, probe.Error, "403")
		assert.Equal(t, server.URL, probe.URL)
		assert.Zero(t, probe.StatusCode)
	})

	t.Run("reports timeout as error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
		}))
		defer server.Close()

		probe := pdfhttp.NewProber(pdfhttp.WithTimeout(10*time.Millisecond)).Probe(context.Background(), server.URL)

		assert.NotEmpty(t, probe.Error)
		assert.Equal(t, server.URL, probe.URL)
	})

	t.Run("reports invalid URL as error", func(t *testing.T) {
		t.Parallel()

		probe := pdfhttp.NewProber().Probe(context.Background(), "not a url")

		assert.NotEmpty(t, probe.Error)
		assert.Equal(t, "not a url", probe.URL)
	})
}

package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pdffetch"
	main "github.com/fwojciec/pdffetch/cmd/pdffetch"
	"github.com/fwojciec/pdffetch/internal/pdftest"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func servePDF(t *testing.T, data []byte) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(data)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	for _, cmd := range []string{"parse", "meta", "serve"} {
		assert.Contains(t, stdout.String(), cmd, "Help should mention %s command", cmd)
	}
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "pdffetch")
	assert.Contains(t, stdout.String(), "Usage:")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_ParseRequiresURL(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"parse"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_Parse(t *testing.T) {
	t.Parallel()

	t.Run("prints report", func(t *testing.T) {
		t.Parallel()

		srv := servePDF(t, pdftest.Build("Hello from page one", "Page two here"))

		m := main.NewMain()
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"parse", srv.URL + "/doc.pdf"}, &stdout, &stderr)

		require.NoError(t, err)
		header, err := pdffetch.ParseReport(stdout.String())
		require.NoError(t, err)
		assert.Equal(t, 2, header.PagesProcessed)
		assert.Equal(t, pdffetch.StrategyLayoutAware, header.Method)
		assert.Contains(t, stdout.String(), "Hello from page one")
		assert.Empty(t, stderr.String())
	})

	t.Run("prints JSON envelope", func(t *testing.T) {
		t.Parallel()

		srv := servePDF(t, pdftest.Build("Only page"))

		m := main.NewMain()
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"parse", "--json", "--method", "fastLenient", srv.URL}, &stdout, &stderr)

		require.NoError(t, err)
		var result pdffetch.Result
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))
		assert.True(t, result.Success)
		assert.Equal(t, pdffetch.StrategyFastLenient, result.Metadata.Method)
		assert.Equal(t, 1, result.Metadata.PagesProcessed)
		assert.Contains(t, result.Text, "Only page")
	})

	t.Run("fails on download error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		t.Cleanup(srv.Close)

		m := main.NewMain()
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"parse", srv.URL}, &stdout, &stderr)

		require.Error(t, err)
		assert.Contains(t, stdout.String(), "Failed to process PDF: "+pdffetch.ErrMsgDownloadFailed)
	})

	t.Run("verbose logs to stderr", func(t *testing.T) {
		t.Parallel()

		srv := servePDF(t, pdftest.Build("Logged"))

		m := main.NewMain()
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"--verbose", "parse", srv.URL}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "msg=fetch")
		assert.Contains(t, stderr.String(), "request_id=")
	})
}

func TestMain_Run_Meta(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Last-Modified", "Wed, 01 Jan 2025 00:00:00 GMT")
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"meta", srv.URL}, &stdout, &stderr)

	require.NoError(t, err)
	var probe pdffetch.MetadataProbe
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &probe))
	assert.Equal(t, 200, probe.StatusCode)
	assert.Equal(t, "application/pdf", probe.ContentType)
	assert.Equal(t, "Wed, 01 Jan 2025 00:00:00 GMT", probe.LastModified)
	assert.Empty(t, probe.Error)
}

func TestMain_Run_Serve(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		args []string
	}{
		{name: "subcommand only", args: []string{"serve"}},
		{name: "verbose flag before subcommand", args: []string{"--verbose", "serve"}},
		{name: "timeout flag before subcommand", args: []string{"-t", "10s", "serve"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv := servePDF(t, pdftest.Build("Served over MCP"))

			clientTransport, serverTransport := mcp.NewInMemoryTransports()

			m := main.NewMain()
			m.Transport = serverTransport

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			done := make(chan error, 1)
			go func() {
				var stdout, stderr bytes.Buffer
				done <- m.Run(ctx, tc.args, &stdout, &stderr)
			}()

			client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
			session, err := client.Connect(ctx, clientTransport, nil)
			require.NoError(t, err)

			res, err := session.CallTool(ctx, &mcp.CallToolParams{
				Name:      "download_and_parse_pdf",
				Arguments: map[string]any{"url": srv.URL},
			})
			require.NoError(t, err)
			require.Len(t, res.Content, 1)
			text, ok := res.Content[0].(*mcp.TextContent)
			require.True(t, ok)
			assert.Contains(t, text.Text, "Served over MCP")

			// Requests made through serve are counted.
			count, err := testutil.GatherAndCount(m.Registry, "pdffetch_process_total")
			require.NoError(t, err)
			assert.Equal(t, 1, count)

			require.NoError(t, session.Close())

			select {
			case <-done:
			case <-time.After(5 * time.Second):
				t.Fatal("serve did not return after client disconnected")
			}
		})
	}
}

func TestMain_Run_ParseDoesNotRegisterMetrics(t *testing.T) {
	t.Parallel()

	srv := servePDF(t, pdftest.Build("Not counted"))

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--verbose", "parse", srv.URL}, &stdout, &stderr)

	require.NoError(t, err)
	count, err := testutil.GatherAndCount(m.Registry)
	require.NoError(t, err)
	assert.Zero(t, count)
}

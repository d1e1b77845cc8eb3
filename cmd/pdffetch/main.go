package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	pdfhttp "github.com/fwojciec/pdffetch/http"
	pdfmcp "github.com/fwojciec/pdffetch/mcp"
	"github.com/fwojciec/pdffetch/pdf"
	"github.com/fwojciec/pdffetch/pipeline"
	pdfprom "github.com/fwojciec/pdffetch/prometheus"
	pdfslog "github.com/fwojciec/pdffetch/slog"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
)

// version is set at build time.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Transport used by the serve command. Set before calling Run().
	Transport mcp.Transport

	// Registry collects metrics from the serve command.
	Registry *prometheus.Registry
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Transport: &mcp.StdioTransport{},
		Registry:  prometheus.NewRegistry(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pdffetch"),
		kong.Description("Download PDF documents and extract their text"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pdffetch --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// One connection pool shared by every request.
	client := pdfhttp.NewClient()

	fetcher := pdfslog.NewLoggingFetcher(
		pdfhttp.NewFetcher(
			pdfhttp.WithClient(client),
			pdfhttp.WithTimeout(cli.Timeout),
			pdfhttp.WithLogger(logger),
		),
		logger,
	)
	prober := pdfslog.NewLoggingProber(
		pdfhttp.NewProber(pdfhttp.WithClient(client), pdfhttp.WithLogger(logger)),
		logger,
	)

	extractors := pdf.NewDefaultRegistry(pdf.WithLogger(logger))
	pdfslog.WrapRegistry(extractors, logger)

	deps.Processor = &pipeline.Processor{
		Fetcher:    fetcher,
		Extractors: extractors,
		Logger:     logger,
	}

	// Global flags may precede the subcommand.
	if kongCtx.Command() == "serve" {
		deps.Processor = pdfprom.NewProcessor(deps.Processor, m.Registry)
	}
	deps.Registry = m.Registry
	deps.Transport = m.Transport

	deps.Tools = &pipeline.Tools{
		Processor: deps.Processor,
		Prober:    prober,
		Logger:    logger,
	}
	deps.Server = pdfmcp.NewServer(deps.Tools, version)

	return kongCtx.Run(deps)
}

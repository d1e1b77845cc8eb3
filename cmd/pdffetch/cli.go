package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/pdffetch"
	pdfmcp "github.com/fwojciec/pdffetch/mcp"
	"github.com/fwojciec/pdffetch/pipeline"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Processor pdffetch.Processor
	Tools     *pipeline.Tools
	Server    *pdfmcp.Server
	Transport mcp.Transport
	Registry  *prometheus.Registry
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool          `short:"v" help:"Log progress to stderr"`
	Timeout time.Duration `short:"t" default:"30s" help:"Download timeout"`

	Parse ParseCmd `cmd:"" help:"Download a PDF and print its text"`
	Meta  MetaCmd  `cmd:"" help:"Show PDF headers without downloading the body"`
	Serve ServeCmd `cmd:"" help:"Serve the PDF tools over MCP on stdio"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	URL    string `arg:"" help:"PDF URL"`
	Method string `short:"m" default:"layoutAware" help:"Extraction method (layoutAware or fastLenient)"`
	JSON   bool   `help:"Print the result envelope as JSON"`
}

// MetaCmd is the "meta" subcommand.
type MetaCmd struct {
	URL string `arg:"" help:"PDF URL"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	MetricsAddr string `name:"metrics-addr" help:"Serve Prometheus metrics on this address (e.g. :9090)"`
}

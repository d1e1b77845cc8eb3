// Package mcp exposes the pdffetch tools to agents over the Model Context
// Protocol.
package mcp

import (
	"context"
	"encoding/json"

	"github.com/fwojciec/pdffetch"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool names as seen by agents.
const (
	ToolDownloadAndParse = "download_and_parse_pdf"
	ToolGetMetadata      = "get_pdf_metadata"
)

// Tools is the function-call boundary served by the MCP server.
// Implemented by pipeline.Tools.
type Tools interface {
	DownloadAndParse(ctx context.Context, url string, method string) string
	Metadata(ctx context.Context, url string) *pdffetch.MetadataProbe
}

// DownloadArgs are the arguments of download_and_parse_pdf.
type DownloadArgs struct {
	URL              string `json:"url" jsonschema:"The URL of the PDF to download and parse"`
	ExtractionMethod string `json:"extraction_method,omitempty" jsonschema:"Text extraction method: layoutAware (default) or fastLenient"`
}

// MetadataArgs are the arguments of get_pdf_metadata.
type MetadataArgs struct {
	URL string `json:"url" jsonschema:"The URL of the PDF to analyze"`
}

// Server serves Tools over MCP.
type Server struct {
	server *mcp.Server
	tools  Tools
}

// NewServer creates a Server with both tools registered.
func NewServer(tools Tools, version string) *Server {
	s := &Server{
		server: mcp.NewServer(&mcp.Implementation{Name: "pdffetch", Version: version}, nil),
		tools:  tools,
	}

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolDownloadAndParse,
		Description: "Download a PDF from a URL and extract all text content",
		Annotations: &mcp.ToolAnnotations{Title: "Download and parse PDF", ReadOnlyHint: true},
	}, s.downloadAndParse)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolGetMetadata,
		Description: "Get metadata about a PDF without downloading full content",
		Annotations: &mcp.ToolAnnotations{Title: "PDF metadata", ReadOnlyHint: true},
	}, s.getMetadata)

	return s
}

// Run serves a single session on transport until the client disconnects
// or ctx is cancelled.
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	return s.server.Run(ctx, transport)
}

// Connect starts a session on transport without blocking.
func (s *Server) Connect(ctx context.Context, transport mcp.Transport) (*mcp.ServerSession, error) {
	return s.server.Connect(ctx, transport, nil)
}

func (s *Server) downloadAndParse(ctx context.Context, req *mcp.CallToolRequest, args DownloadArgs) (*mcp.CallToolResult, any, error) {
	report := s.tools.DownloadAndParse(ctx, args.URL, args.ExtractionMethod)
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: report}},
	}, nil, nil
}

func (s *Server) getMetadata(ctx context.Context, req *mcp.CallToolRequest, args MetadataArgs) (*mcp.CallToolResult, pdffetch.MetadataProbe, error) {
	probe := s.tools.Metadata(ctx, args.URL)
	data, err := json.Marshal(probe)
	if err != nil {
		return nil, pdffetch.MetadataProbe{}, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, *probe, nil
}

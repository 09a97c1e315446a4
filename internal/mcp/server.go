package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/mhassouna/docuchat/internal/catalog"
	"github.com/mhassouna/docuchat/internal/chat"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes document chat tools.
type Server struct {
	svc    *chat.Service
	reader *catalog.Reader
	mcp    *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(svc *chat.Service, reader *catalog.Reader) *Server {
	s := &Server{
		svc:    svc,
		reader: reader,
	}

	s.mcp = server.NewMCPServer(
		"docuchat",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(askDocumentsTool, s.handleAskDocuments)
	s.mcp.AddTool(extractFiltersTool, s.handleExtractFilters)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}

// Package mcp exposes the prompt library and tutorials to AI agents over
// the Model Context Protocol.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/nanobanana-fans/nanobanana/internal/content"
	"github.com/nanobanana-fans/nanobanana/internal/engagement"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes catalog tools.
type Server struct {
	catalog *content.Catalog
	copies  *engagement.Store // nil when no database is configured
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server over catalog. copies may be nil, in
// which case copy_prompt does not record anything and popular_prompts is
// not registered.
func NewServer(catalog *content.Catalog, copies *engagement.Store) *Server {
	s := &Server{
		catalog: catalog,
		copies:  copies,
	}

	s.mcp = server.NewMCPServer(
		"nanobanana",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

func (s *Server) registerTools() {
	s.mcp.AddTool(searchPromptsTool, s.handleSearchPrompts)
	s.mcp.AddTool(getPromptTool, s.handleGetPrompt)
	s.mcp.AddTool(copyPromptTool, s.handleCopyPrompt)
	s.mcp.AddTool(listTutorialsTool, s.handleListTutorials)
	s.mcp.AddTool(getTutorialTool, s.handleGetTutorial)
	if s.copies != nil {
		s.mcp.AddTool(popularPromptsTool, s.handlePopularPrompts)
	}
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}

// Package mcpserver exposes the onboarding navigator as MCP tools over stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"onboardctl/internal/onboarding"
	"onboardctl/internal/settings"
	"onboardctl/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const subsystem = "MCPServer"

// Server serves one navigator and its settings source.
type Server struct {
	nav *onboarding.Navigator
	src settings.Source
	mcp *server.MCPServer
}

// StatusResult is the payload of the status tools.
type StatusResult struct {
	onboarding.Status
	Connected bool `json:"connected"`
	Loaded    bool `json:"loaded"`
	// Moved is set by tools that may change the step.
	Moved bool `json:"moved,omitempty"`
}

// New creates the MCP server and registers the onboarding tools.
func New(nav *onboarding.Navigator, src settings.Source, version string) *Server {
	s := &Server{nav: nav, src: src}
	s.mcp = server.NewMCPServer(
		"onboardctl",
		version,
		server.WithToolCapabilities(false),
	)
	s.mcp.AddTools(s.Tools()...)
	return s
}

// Tools returns the onboarding tools with their handlers.
func (s *Server) Tools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("onboarding_status",
				mcp.WithDescription("Show the current onboarding step, where back leads and whether the screen saves settings"),
			),
			Handler: s.HandleStatus,
		},
		{
			Tool: mcp.NewTool("onboarding_set_step",
				mcp.WithDescription("Move the onboarding wizard to a step"),
				mcp.WithString("step",
					mcp.Required(),
					mcp.Description("Step identifier, for example payment-methods"),
				),
				mcp.WithBoolean("force",
					mcp.Description("Accept identifiers outside the known steps"),
				),
			),
			Handler: s.HandleSetStep,
		},
		{
			Tool: mcp.NewTool("onboarding_back",
				mcp.WithDescription("Go back one step, if the current step allows it"),
			),
			Handler: s.HandleBack,
		},
		{
			Tool: mcp.NewTool("onboarding_check_connection",
				mcp.WithDescription("Reload settings and advance past the connect step once the Square account is connected"),
			),
			Handler: s.HandleCheckConnection,
		},
	}
}

// ServeStdio serves MCP over the given streams until ctx is done.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	logging.Info(subsystem, "serving onboarding tools over stdio")
	stdio := server.NewStdioServer(s.mcp)
	if err := stdio.Listen(ctx, in, out); err != nil && ctx.Err() == nil {
		return fmt.Errorf("mcp stdio server: %w", err)
	}
	return nil
}

// HandleStatus handles onboarding_status.
func (s *Server) HandleStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.result(false)
}

// HandleSetStep handles onboarding_set_step.
func (s *Server) HandleSetStep(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := request.RequireString("step")
	if err != nil {
		return mcp.NewToolResultError("step parameter is required"), nil
	}
	force, _ := request.GetArguments()["force"].(bool)

	step, err := onboarding.ParseStep(raw)
	if err != nil {
		if !force {
			return mcp.NewToolResultError(fmt.Sprintf("%v (pass force to accept it)", err)), nil
		}
		step = onboarding.Step(raw)
	}
	moved := s.nav.SetStep(step)
	logging.Info(subsystem, "set step to %s (moved=%t)", step, moved)
	return s.result(moved)
}

// HandleBack handles onboarding_back.
func (s *Server) HandleBack(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	_, moved := s.nav.Back()
	return s.result(moved)
}

// HandleCheckConnection handles onboarding_check_connection.
func (s *Server) HandleCheckConnection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.src.Prime(ctx); err != nil {
		logging.Warn(subsystem, "settings prime failed: %v", err)
		return mcp.NewToolResultError(fmt.Sprintf("Failed to load settings: %v", err)), nil
	}
	return s.result(s.nav.ObserveConnection(s.src.IsConnected()))
}

func (s *Server) result(moved bool) (*mcp.CallToolResult, error) {
	res := StatusResult{
		Status:    s.nav.Status(),
		Connected: s.src.IsConnected(),
		Loaded:    s.src.Loaded(),
		Moved:     moved,
	}
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format status: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package server

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/neurodock/neurodock/internal/registry"
)

// NewMCPServer exposes the tool registry over the Model Context Protocol.
// Every MCP invocation goes through registry.Invoke, the same entry point
// the HTTP tool-protocol surface uses.
func NewMCPServer(reg *registry.Registry, version string) *mcpserver.MCPServer {
	if version == "" {
		version = "dev"
	}

	srv := mcpserver.NewMCPServer(
		"NeuroDock",
		version,
		mcpserver.WithToolCapabilities(true),
	)

	for _, tool := range reg.Tools() {
		srv.AddTool(tool.Def, mcpToolHandler(reg, tool.Def.Name))
	}

	return srv
}

// mcpToolHandler adapts registry invocation to the mcp-go handler shape.
// Registry errors become tool-result errors rather than protocol errors,
// matching how MCP clients expect validation failures to surface.
func mcpToolHandler(reg *registry.Registry, name string) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := reg.Invoke(ctx, name, request.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		data, err := json.Marshal(result)
		if err != nil {
			return mcp.NewToolResultError("failed to encode result"), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	}
}

// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the casetools converters as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/casetools"
)

const serverInstructions = `casetools MCP server — converts strings between casing conventions.

Tools:
- convert_case: convert a value to camel, dot, or kebab case
- tokenize: split a string into its word tokens
- format_template: render a string through a Go text/template with case helpers

Conversion is ASCII-only: any character outside A-Z, a-z, 0-9 acts as a word
separator. Inputs must be strings; any other JSON type is rejected.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "casetools", Version: casetools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_case",
		Description: "Convert a string to a target casing convention. Cases: camel (lowerCamelCase with acronym and digit handling), dot (dot.case), kebab (kebab-case over whitespace-delimited words). Non-string values are rejected.",
	}, handleConvertCase)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "tokenize",
		Description: "Split a string into its word tokens. Strings containing separators are split on separator runs; strings of pure ASCII letters/digits are split at camelCase, acronym, and digit boundaries.",
	}, handleTokenize)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "format_template",
		Description: "Render a string through a Go text/template with case-conversion helpers (camel, dot, kebab, upper, lower, title, tokens, join, replace, trimPrefix, trimSuffix). The template receives .Input (trimmed) and .Tokens.",
	}, handleFormatTemplate)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}

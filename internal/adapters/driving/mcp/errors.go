// Package mcp provides an MCP (Model Context Protocol) server adapter
// for docsift. It lets AI assistants run document analyses and read
// stored reports.
package mcp

import "errors"

// Errors returned when required ports are not provided.
var (
	ErrMissingAnalyzer = errors.New("mcp: analyzer factory is required")
	ErrMissingSettings = errors.New("mcp: settings source is required")
	ErrMissingRegistry = errors.New("mcp: provider registry is required")
)

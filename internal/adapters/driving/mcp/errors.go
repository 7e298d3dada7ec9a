// Package mcp provides an MCP (Model Context Protocol) server adapter for Fracto.
// It lets AI assistants split text into chunks through a tool call.
package mcp

import "errors"

// ErrMissingSplitBuilder is returned when no split builder is provided.
var ErrMissingSplitBuilder = errors.New("mcp: split builder is required")

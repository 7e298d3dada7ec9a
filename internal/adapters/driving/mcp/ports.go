package mcp

import (
	"github.com/fracto-labs/fracto-cli/internal/core/domain"
	"github.com/fracto-labs/fracto-cli/internal/core/ports/driving"
)

// SplitBuilder constructs a split service for one request's settings.
// Each tool call may carry its own chunk size, overlap and language.
type SplitBuilder func(settings domain.SplitterSettings) (driving.SplitService, error)

// Ports aggregates the capabilities required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Split builds a split service per request.
	Split SplitBuilder

	// Settings provides persisted defaults. Optional; built-in defaults
	// are used when nil.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Split == nil {
		return ErrMissingSplitBuilder
	}
	// Settings is optional
	return nil
}

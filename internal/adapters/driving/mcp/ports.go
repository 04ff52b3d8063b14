package mcp

import (
	"github.com/custodia-labs/gravatar-fdw/internal/core/ports/driving"
)

// Ports aggregates the driving port dependencies of the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// NewScanner creates one scanner per lookup. Each scan exclusively
	// owns its scanner; the server never shares one across tool calls.
	NewScanner func() (driving.ProfileScanner, error)
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.NewScanner == nil {
		return ErrMissingScannerFactory
	}
	return nil
}

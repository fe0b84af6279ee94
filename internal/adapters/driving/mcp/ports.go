package mcp

import (
	"github.com/custodia-labs/slidedeck/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Deck owns the slides.
	Deck driving.DeckService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Deck == nil {
		return ErrMissingDeckService
	}
	return nil
}

// Package tui provides the interactive terminal editor and presenter for
// slidedeck. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"github.com/custodia-labs/slidedeck/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Deck owns the slides and the presentation state.
	Deck driving.DeckService

	// Settings provides the presenter theme and counter options. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(deck driving.DeckService, settings driving.SettingsService) *Ports {
	return &Ports{
		Deck:     deck,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Deck == nil {
		return ErrMissingDeckService
	}
	return nil
}

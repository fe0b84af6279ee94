package tui

import "errors"

// ErrMissingDeckService is returned when the deck service is not provided.
var ErrMissingDeckService = errors.New("tui: deck service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")

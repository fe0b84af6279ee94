// Package mcp provides an MCP (Model Context Protocol) server adapter for slidedeck.
// It lets AI assistants read and edit the deck.
package mcp

import "errors"

// ErrMissingDeckService is returned when the deck service is not provided.
var ErrMissingDeckService = errors.New("mcp: deck service is required")

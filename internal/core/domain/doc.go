// Package domain defines the core business entities for slidedeck.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Slide: One unit of presentation content (title, content or list)
//   - Deck: The ordered slide sequence and its JSON document form
//   - Session: The editing state owned by the deck controller
//   - AppSettings: User configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

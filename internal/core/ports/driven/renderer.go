package driven

import "github.com/custodia-labs/slidedeck/internal/core/domain"

// DeckRenderer produces a standalone rendition of a deck, such as an HTML page.
type DeckRenderer interface {
	// Render returns the rendered deck.
	Render(deck domain.Deck) ([]byte, error)

	// Extension returns the file extension of the output, including the dot.
	Extension() string
}

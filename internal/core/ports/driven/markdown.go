package driven

import "github.com/custodia-labs/slidedeck/internal/core/domain"

// MarkdownCodec converts between a deck and its flat markdown document.
type MarkdownCodec interface {
	// Serialize renders the deck as one markdown document.
	Serialize(deck domain.Deck) string

	// Parse reads a markdown document back into a deck. It never fails;
	// blocks it cannot interpret are dropped.
	Parse(doc string) domain.Deck
}

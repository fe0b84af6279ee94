// Package markdown converts between a deck and a flat markdown document.
//
// The document is one block per slide, blocks separated by a "---" rule on
// its own line. A block is a level-1 heading followed by either a level-2
// subtitle (title slide) or body text and "- " bullets (content and list
// slides). Parsing is heuristic and never fails; it round-trips the
// documents produced by Serialize for single-line subtitles,
// single-paragraph content and list slides with at least one point.
package markdown

import (
	"github.com/custodia-labs/slidedeck/internal/core/domain"
	"github.com/custodia-labs/slidedeck/internal/core/ports/driven"
)

// Ensure Codec implements the interface.
var _ driven.MarkdownCodec = (*Codec)(nil)

// Codec is the markdown implementation of driven.MarkdownCodec.
type Codec struct{}

// New creates a new markdown codec.
func New() *Codec {
	return &Codec{}
}

// Serialize renders the deck as one markdown document.
func (c *Codec) Serialize(deck domain.Deck) string {
	return Serialize(deck)
}

// Parse reads a markdown document back into a deck.
func (c *Codec) Parse(doc string) domain.Deck {
	return Parse(doc)
}

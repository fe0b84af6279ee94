package driving

import (
	"context"

	"github.com/custodia-labs/slidedeck/internal/core/domain"
)

// DeckService owns the editing session: the slide sequence, the current
// slide and the presentation flag. Every mutation is persisted.
type DeckService interface {
	// Load restores the persisted deck, falling back to the default deck
	// when nothing is stored or the stored value cannot be parsed.
	Load(ctx context.Context) error

	// Slides returns a copy of the deck.
	Slides() domain.Deck

	// Slide returns a copy of the slide at index.
	Slide(index int) (domain.Slide, error)

	// Len returns the number of slides.
	Len() int

	// Add appends the default slide of the given type and returns its index.
	Add(ctx context.Context, t domain.SlideType) (int, error)

	// Update applies a form edit to the slide at index.
	Update(ctx context.Context, index int, edit domain.SlideEdit) error

	// Replace swaps the slide at index.
	Replace(ctx context.Context, index int, slide domain.Slide) error

	// Delete removes the slide at index; later slides shift down.
	Delete(ctx context.Context, index int) error

	// Markdown renders the deck as a markdown document.
	Markdown() string

	// CommitMarkdown parses doc and replaces the whole deck with the result.
	// The current slide is kept when it still exists.
	CommitMarkdown(ctx context.Context, doc string) error

	// Export writes the deck as a presentation document to path, or to the
	// configured export file name when path is empty. Returns the path written.
	Export(ctx context.Context, path string) (string, error)

	// Import replaces the deck with the document at path. On failure the
	// deck is unchanged and the error wraps domain.ErrInvalidDocument or
	// the underlying I/O error.
	Import(ctx context.Context, path string) error

	// Render writes a standalone rendition of the deck to path, or to
	// "presentation" plus the renderer's extension when path is empty.
	// Returns the path written.
	Render(ctx context.Context, path string) (string, error)

	// Current returns the index of the displayed slide.
	Current() int

	// Next advances one slide, clamped to the last slide.
	Next() int

	// Prev retreats one slide, clamped to the first slide.
	Prev() int

	// GoTo moves to index, clamped to the deck.
	GoTo(index int) int

	// StartPresenting enters presentation mode.
	StartPresenting()

	// StopPresenting leaves presentation mode.
	StopPresenting()

	// Presenting reports whether presentation mode is active.
	Presenting() bool
}

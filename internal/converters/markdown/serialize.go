package markdown

import (
	"strings"

	"github.com/custodia-labs/slidedeck/internal/core/domain"
)

const (
	// Separator joins slide blocks in a serialized document.
	Separator = "\n\n---\n\n"

	headingMarker    = "# "
	subheadingMarker = "## "
	bulletMarker     = "- "
)

// Serialize renders every slide as a block and joins the blocks with Separator.
// Subtitle line breaks are written as-is.
func Serialize(deck domain.Deck) string {
	blocks := make([]string, 0, len(deck))
	for _, s := range deck {
		blocks = append(blocks, SerializeSlide(s))
	}
	return strings.Join(blocks, Separator)
}

// SerializeSlide renders a single slide block.
func SerializeSlide(s domain.Slide) string {
	var b strings.Builder

	switch v := s.(type) {
	case domain.TitleSlide:
		b.WriteString(headingMarker + v.Title + "\n")
		b.WriteString(subheadingMarker + v.Subtitle)

	case domain.ListSlide:
		b.WriteString(headingMarker + v.Title)
		if len(v.Points) > 0 {
			b.WriteString("\n\n")
			writeBullets(&b, v.Points)
		}

	case domain.ContentSlide:
		b.WriteString(headingMarker + v.Title + "\n\n")
		b.WriteString(v.Content)
		if len(v.Points) > 0 {
			b.WriteString("\n\n")
			writeBullets(&b, v.Points)
		}
	}

	return b.String()
}

func writeBullets(b *strings.Builder, points []string) {
	for i, p := range points {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(bulletMarker + p)
	}
}

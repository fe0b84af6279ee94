package markdown

import (
	"strings"

	"github.com/custodia-labs/slidedeck/internal/core/domain"
)

// blockSeparator is what Parse splits on. It is looser than Separator so
// hand-written documents without blank lines around the rule still split.
const blockSeparator = "\n---\n"

// Parse reads a markdown document into a deck. Empty blocks are dropped, so
// an empty or separator-only document yields an empty deck.
func Parse(doc string) domain.Deck {
	doc = strings.ReplaceAll(doc, "\r\n", "\n")

	deck := domain.Deck{}
	for _, block := range strings.Split(doc, blockSeparator) {
		if s, ok := ParseBlock(block); ok {
			deck = append(deck, s)
		}
	}
	return deck
}

// ParseBlock interprets one slide block. It reports false for blocks
// without any text.
//
// Two leading heading lines ("# " then "## ") always make a title slide,
// whatever follows. Otherwise the first line is the title, the lines up to
// the first "- " bullet are the content, and the remaining lines are points.
// No content but bullets makes a list slide.
func ParseBlock(block string) (domain.Slide, bool) {
	lines := nonEmptyLines(block)
	if len(lines) == 0 {
		return nil, false
	}

	if len(lines) > 1 &&
		hasMarker(lines[0], headingMarker) &&
		hasMarker(lines[1], subheadingMarker) {
		return domain.TitleSlide{
			Title:    trimMarker(lines[0], headingMarker),
			Subtitle: trimMarker(lines[1], subheadingMarker),
		}, true
	}

	title := trimMarker(lines[0], headingMarker)

	bulletStart := -1
	for i := 1; i < len(lines); i++ {
		if hasMarker(lines[i], bulletMarker) {
			bulletStart = i
			break
		}
	}

	if bulletStart < 0 {
		return domain.ContentSlide{
			Title:   title,
			Content: strings.Join(lines[1:], " "),
			Points:  []string{},
		}, true
	}

	content := strings.Join(lines[1:bulletStart], " ")
	points := make([]string, 0, len(lines)-bulletStart)
	for _, line := range lines[bulletStart:] {
		points = append(points, stripBullets(line))
	}

	if content == "" {
		return domain.ListSlide{Title: title, Points: points}, true
	}
	return domain.ContentSlide{Title: title, Content: content, Points: points}, true
}

// nonEmptyLines splits a block into trimmed lines, dropping blank ones.
func nonEmptyLines(block string) []string {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// hasMarker reports whether a trimmed line starts with marker. A line that
// is only the marker, like "##" from an empty "## " subtitle, counts.
func hasMarker(line, marker string) bool {
	return strings.HasPrefix(line, marker) || line == strings.TrimSpace(marker)
}

// trimMarker returns the text after marker, or the line itself when it
// does not start with one.
func trimMarker(line, marker string) string {
	if line == strings.TrimSpace(marker) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(line, marker))
}

// stripBullets removes every leading bullet marker, so "- - x" becomes "x".
func stripBullets(line string) string {
	for hasMarker(line, bulletMarker) {
		line = strings.TrimLeft(trimMarker(line, bulletMarker), " \t")
	}
	return line
}

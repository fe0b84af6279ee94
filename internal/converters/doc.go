// Package converters contains the text representations of a deck.
// Each sub-package implements driven.MarkdownCodec or a similar port.
package converters

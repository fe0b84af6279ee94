// Package inline renders inline markdown (emphasis, code, links) inside
// slide text as styled terminal output.
package inline

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/custodia-labs/slidedeck/internal/adapters/driving/tui/styles"
)

// Renderer styles inline markdown. Block syntax is not recognised, so a
// leading "#", ">" or "1." is kept as text.
type Renderer struct {
	styles *styles.Styles
	parser parser.Parser
}

// New creates a renderer using s.
func New(s *styles.Styles) *Renderer {
	if s == nil {
		s = styles.DefaultStyles()
	}

	inlineParsers := append(parser.DefaultInlineParsers(),
		util.Prioritized(extension.NewStrikethroughParser(), 500),
		util.Prioritized(extension.NewLinkifyParser(), 999),
	)

	return &Renderer{
		styles: s,
		parser: parser.NewParser(
			parser.WithBlockParsers(util.Prioritized(parser.NewParagraphParser(), 1000)),
			parser.WithInlineParsers(inlineParsers...),
			parser.WithParagraphTransformers(parser.DefaultParagraphTransformers()...),
		),
	}
}

// Render returns src with its inline markdown styled. Paragraphs are
// separated by a blank line.
func (r *Renderer) Render(src string) string {
	if strings.TrimSpace(src) == "" {
		return ""
	}

	source := []byte(src)
	doc := r.parser.Parse(text.NewReader(source))

	var paragraphs []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		var b strings.Builder
		r.renderChildren(&b, n, source)
		paragraphs = append(paragraphs, b.String())
	}
	return strings.Join(paragraphs, "\n\n")
}

func (r *Renderer) renderChildren(b *strings.Builder, n ast.Node, source []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		r.renderNode(b, c, source)
	}
}

func (r *Renderer) renderNode(b *strings.Builder, n ast.Node, source []byte) {
	switch node := n.(type) {
	case *ast.Text:
		b.Write(node.Segment.Value(source))
		switch {
		case node.HardLineBreak():
			b.WriteString("\n")
		case node.SoftLineBreak():
			b.WriteString(" ")
		}

	case *ast.String:
		b.Write(node.Value)

	case *ast.Emphasis:
		style := r.styles.Emphasis
		if node.Level >= 2 {
			style = r.styles.Strong
		}
		b.WriteString(style.Render(r.childText(node, source)))

	case *ast.CodeSpan:
		b.WriteString(r.styles.Code.Render(r.childText(node, source)))

	case *east.Strikethrough:
		b.WriteString(lipgloss.NewStyle().Strikethrough(true).Render(r.childText(node, source)))

	case *ast.Link:
		label := r.childText(node, source)
		b.WriteString(r.styles.Link.Render(label))
		if dest := string(node.Destination); dest != "" && dest != label {
			b.WriteString(r.styles.Muted.Render(" (" + dest + ")"))
		}

	case *ast.AutoLink:
		b.WriteString(r.styles.Link.Render(string(node.Label(source))))

	case *ast.RawHTML:
		for i := 0; i < node.Segments.Len(); i++ {
			seg := node.Segments.At(i)
			b.Write(seg.Value(source))
		}

	default:
		r.renderChildren(b, n, source)
	}
}

func (r *Renderer) childText(n ast.Node, source []byte) string {
	var b strings.Builder
	r.renderChildren(&b, n, source)
	return b.String()
}

// Plain returns src with inline markdown markers removed.
func Plain(src string) string {
	source := []byte(src)
	doc := New(styles.NewStyles(styles.MonoTheme())).parser.Parse(text.NewReader(source))

	var buf bytes.Buffer
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if n.Kind() == ast.KindParagraph && n.NextSibling() != nil {
				buf.WriteString("\n\n")
			}
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Text:
			buf.Write(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				buf.WriteString(" ")
			}
		case *ast.String:
			buf.Write(node.Value)
		case *ast.AutoLink:
			buf.Write(node.Label(source))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

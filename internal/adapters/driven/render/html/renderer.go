// Package html renders a deck as a single self-contained HTML page.
//
// Slide text goes through goldmark so the inline emphasis and links that
// authors write in titles, content and bullet points are rendered. Raw HTML
// in slide text is not passed through.
package html

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/custodia-labs/slidedeck/internal/core/domain"
	"github.com/custodia-labs/slidedeck/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.DeckRenderer = (*Renderer)(nil)

// Renderer is the HTML implementation of driven.DeckRenderer.
type Renderer struct {
	md    goldmark.Markdown
	page  *template.Template
	title string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTitle sets the document title. Defaults to the first slide's heading.
func WithTitle(title string) Option {
	return func(r *Renderer) { r.title = title }
}

// New creates an HTML renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
		),
		page: template.Must(template.New("deck").Parse(pageTemplate)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Extension returns ".html".
func (r *Renderer) Extension() string {
	return ".html"
}

type slideView struct {
	Kind     string
	Number   int
	Title    template.HTML
	Subtitle []template.HTML
	Content  template.HTML
	Points   []template.HTML
}

type pageView struct {
	Title  string
	Total  int
	Slides []slideView
}

// Render returns the deck as an HTML page.
func (r *Renderer) Render(deck domain.Deck) ([]byte, error) {
	view := pageView{Title: r.title, Total: len(deck)}
	if view.Title == "" && len(deck) > 0 {
		view.Title = deck[0].Heading()
	}
	if view.Title == "" {
		view.Title = "Presentation"
	}

	for i, s := range deck {
		sv, err := r.slideView(s)
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
		sv.Number = i + 1
		view.Slides = append(view.Slides, sv)
	}

	var buf bytes.Buffer
	if err := r.page.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("executing page template: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) slideView(s domain.Slide) (slideView, error) {
	title, err := r.inline(s.Heading())
	if err != nil {
		return slideView{}, err
	}
	sv := slideView{Kind: s.Type().String(), Title: title}

	switch v := s.(type) {
	case domain.TitleSlide:
		for _, line := range strings.Split(v.Subtitle, "\n") {
			h, err := r.inline(line)
			if err != nil {
				return slideView{}, err
			}
			sv.Subtitle = append(sv.Subtitle, h)
		}

	case domain.ContentSlide:
		if sv.Content, err = r.block(v.Content); err != nil {
			return slideView{}, err
		}
		if sv.Points, err = r.points(v.Points); err != nil {
			return slideView{}, err
		}

	case domain.ListSlide:
		if sv.Points, err = r.points(v.Points); err != nil {
			return slideView{}, err
		}

	default:
		return slideView{}, fmt.Errorf("%w: %T", domain.ErrUnsupportedType, s)
	}
	return sv, nil
}

func (r *Renderer) points(points []string) ([]template.HTML, error) {
	out := make([]template.HTML, 0, len(points))
	for _, p := range points {
		h, err := r.inline(p)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}

// block converts markdown to HTML.
func (r *Renderer) block(text string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	return template.HTML(buf.String()), nil //nolint:gosec // goldmark output with raw HTML disabled
}

// inline converts a single line and unwraps the paragraph goldmark puts
// around it.
func (r *Renderer) inline(text string) (template.HTML, error) {
	h, err := r.block(text)
	if err != nil {
		return "", err
	}
	s := strings.TrimSpace(string(h))
	if strings.HasPrefix(s, "<p>") && strings.HasSuffix(s, "</p>") && strings.Count(s, "<p>") == 1 {
		s = strings.TrimSuffix(strings.TrimPrefix(s, "<p>"), "</p>")
	}
	return template.HTML(s), nil //nolint:gosec // goldmark output with raw HTML disabled
}

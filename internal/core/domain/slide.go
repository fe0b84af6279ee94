package domain

import (
	"fmt"
	"strings"
)

// SlideType discriminates the slide variants.
type SlideType string

// Available slide types.
const (
	// SlideTypeTitle is a heading with a (possibly multi-line) subtitle.
	SlideTypeTitle SlideType = "title"

	// SlideTypeContent is a heading, a paragraph and optional bullet points.
	SlideTypeContent SlideType = "content"

	// SlideTypeList is a heading followed by bullet points.
	SlideTypeList SlideType = "list"
)

// IsValid returns true if the slide type is recognised.
func (t SlideType) IsValid() bool {
	switch t {
	case SlideTypeTitle, SlideTypeContent, SlideTypeList:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t SlideType) String() string {
	return string(t)
}

// Description returns a human-readable description of the slide type.
func (t SlideType) Description() string {
	switch t {
	case SlideTypeTitle:
		return "Title slide"
	case SlideTypeContent:
		return "Content slide"
	case SlideTypeList:
		return "Bullet list slide"
	default:
		return "Unknown"
	}
}

// ParseSlideType converts user input into a SlideType.
func ParseSlideType(s string) (SlideType, error) {
	t := SlideType(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("%w: slide type %q", ErrUnsupportedType, s)
	}
	return t, nil
}

// AllSlideTypes returns every slide type in menu order.
func AllSlideTypes() []SlideType {
	return []SlideType{SlideTypeTitle, SlideTypeContent, SlideTypeList}
}

// Slide is one unit of presentation content.
// The set of implementations is closed: TitleSlide, ContentSlide and ListSlide.
// Consumers switch on the concrete type.
type Slide interface {
	// Type returns the variant discriminator.
	Type() SlideType

	// Heading returns the slide title.
	Heading() string

	slide()
}

// TitleSlide opens a presentation or a section.
type TitleSlide struct {
	// Title is the main heading.
	Title string

	// Subtitle may contain embedded line breaks, rendered as separate lines.
	// It is not a bullet list.
	Subtitle string
}

// ContentSlide carries a paragraph and optional bullet points.
type ContentSlide struct {
	// Title is the slide heading.
	Title string

	// Content is free-form paragraph text with optional inline markdown.
	Content string

	// Points are the bullet items in display order.
	Points []string
}

// ListSlide carries only bullet points.
type ListSlide struct {
	// Title is the slide heading.
	Title string

	// Points are the bullet items in display order.
	Points []string
}

// Type implements Slide.
func (TitleSlide) Type() SlideType { return SlideTypeTitle }

// Type implements Slide.
func (ContentSlide) Type() SlideType { return SlideTypeContent }

// Type implements Slide.
func (ListSlide) Type() SlideType { return SlideTypeList }

// Heading implements Slide.
func (s TitleSlide) Heading() string { return s.Title }

// Heading implements Slide.
func (s ContentSlide) Heading() string { return s.Title }

// Heading implements Slide.
func (s ListSlide) Heading() string { return s.Title }

func (TitleSlide) slide()   {}
func (ContentSlide) slide() {}
func (ListSlide) slide()    {}

// NewSlide returns the placeholder slide created by an "add" action.
func NewSlide(t SlideType) (Slide, error) {
	switch t {
	case SlideTypeTitle:
		return TitleSlide{Title: "New Title Slide", Subtitle: "Subtitle"}, nil
	case SlideTypeContent:
		return ContentSlide{
			Title:   "New Slide",
			Content: "Content",
			Points:  []string{"Point 1", "Point 2"},
		}, nil
	case SlideTypeList:
		return ListSlide{
			Title:  "New List Slide",
			Points: []string{"Point 1", "Point 2"},
		}, nil
	default:
		return nil, fmt.Errorf("%w: slide type %q", ErrUnsupportedType, t)
	}
}

// DefaultDeck returns the deck shown when nothing has been saved yet.
func DefaultDeck() Deck {
	return Deck{
		TitleSlide{
			Title:    "Sample Title Slide",
			Subtitle: "With a subtitle\nMultiple lines possible",
		},
		ContentSlide{
			Title:   "Content Slide Example",
			Content: "This is the main content area where you can explain your key points.",
			Points: []string{
				"First bullet point",
				"Second bullet point",
				"Third bullet point",
			},
		},
	}
}

// PointsOf returns the bullet points of a slide, or an empty slice for
// variants without points.
func PointsOf(s Slide) []string {
	switch v := s.(type) {
	case ContentSlide:
		if v.Points != nil {
			return v.Points
		}
	case ListSlide:
		if v.Points != nil {
			return v.Points
		}
	}
	return []string{}
}

// SplitPoints turns a one-point-per-line text into bullet points.
// Blank lines are dropped.
func SplitPoints(text string) []string {
	points := []string{}
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		points = append(points, line)
	}
	return points
}

// CloneSlide returns a copy that shares no backing arrays with s.
func CloneSlide(s Slide) Slide {
	switch v := s.(type) {
	case ContentSlide:
		v.Points = clonePoints(v.Points)
		return v
	case ListSlide:
		v.Points = clonePoints(v.Points)
		return v
	default:
		return s
	}
}

func clonePoints(points []string) []string {
	out := make([]string, len(points))
	copy(out, points)
	return out
}

// SlideEdit is a form edit of individual fields. Nil fields are unchanged.
type SlideEdit struct {
	Title    *string
	Subtitle *string
	Content  *string
	Points   *[]string
}

// IsEmpty reports whether the edit changes nothing.
func (e SlideEdit) IsEmpty() bool {
	return e.Title == nil && e.Subtitle == nil && e.Content == nil && e.Points == nil
}

// Apply returns s with the edit applied. Editing a field the variant does
// not have is ErrInvalidInput.
func (e SlideEdit) Apply(s Slide) (Slide, error) {
	switch v := s.(type) {
	case TitleSlide:
		if e.Content != nil || e.Points != nil {
			return nil, fmt.Errorf("%w: title slides have no content or points", ErrInvalidInput)
		}
		if e.Title != nil {
			v.Title = *e.Title
		}
		if e.Subtitle != nil {
			v.Subtitle = *e.Subtitle
		}
		return v, nil

	case ContentSlide:
		if e.Subtitle != nil {
			return nil, fmt.Errorf("%w: content slides have no subtitle", ErrInvalidInput)
		}
		if e.Title != nil {
			v.Title = *e.Title
		}
		if e.Content != nil {
			v.Content = *e.Content
		}
		if e.Points != nil {
			v.Points = clonePoints(*e.Points)
		}
		return v, nil

	case ListSlide:
		if e.Subtitle != nil || e.Content != nil {
			return nil, fmt.Errorf("%w: list slides have no subtitle or content", ErrInvalidInput)
		}
		if e.Title != nil {
			v.Title = *e.Title
		}
		if e.Points != nil {
			v.Points = clonePoints(*e.Points)
		}
		return v, nil

	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, s)
	}
}

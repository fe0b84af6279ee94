package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Deck is an ordered slide sequence. Order is presentation order and a
// slide's identity is its position.
type Deck []Slide

// Clone returns a deep copy of the deck.
func (d Deck) Clone() Deck {
	out := make(Deck, len(d))
	for i, s := range d {
		out[i] = CloneSlide(s)
	}
	return out
}

type titleSlideJSON struct {
	Type     SlideType `json:"type"`
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
}

type contentSlideJSON struct {
	Type    SlideType `json:"type"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Points  []string  `json:"points"`
}

type listSlideJSON struct {
	Type   SlideType `json:"type"`
	Title  string    `json:"title"`
	Points []string  `json:"points"`
}

// slideJSON is the permissive decoding shape shared by every variant.
type slideJSON struct {
	Type     string   `json:"type"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Content  string   `json:"content"`
	Points   []string `json:"points"`
}

// MarshalJSON implements json.Marshaler.
func (s TitleSlide) MarshalJSON() ([]byte, error) {
	return json.Marshal(titleSlideJSON{Type: SlideTypeTitle, Title: s.Title, Subtitle: s.Subtitle})
}

// MarshalJSON implements json.Marshaler.
func (s ContentSlide) MarshalJSON() ([]byte, error) {
	return json.Marshal(contentSlideJSON{
		Type:    SlideTypeContent,
		Title:   s.Title,
		Content: s.Content,
		Points:  PointsOf(s),
	})
}

// MarshalJSON implements json.Marshaler.
func (s ListSlide) MarshalJSON() ([]byte, error) {
	return json.Marshal(listSlideJSON{Type: SlideTypeList, Title: s.Title, Points: PointsOf(s)})
}

// UnmarshalJSON implements json.Unmarshaler.
// Decoding is permissive: "title" and "list" select their variants and any
// other or missing type is a content slide. Missing points decode as empty.
func (d *Deck) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return fmt.Errorf("%w: expected a JSON array of slides", ErrInvalidDocument)
	}

	var raw []slideJSON
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	deck := make(Deck, 0, len(raw))
	for _, r := range raw {
		points := r.Points
		if points == nil {
			points = []string{}
		}

		switch SlideType(r.Type) {
		case SlideTypeTitle:
			deck = append(deck, TitleSlide{Title: r.Title, Subtitle: r.Subtitle})
		case SlideTypeList:
			deck = append(deck, ListSlide{Title: r.Title, Points: points})
		default:
			deck = append(deck, ContentSlide{Title: r.Title, Content: r.Content, Points: points})
		}
	}

	*d = deck
	return nil
}

// EncodeDocument renders the deck as a presentation document: a JSON array
// pretty-printed with two-space indentation.
func EncodeDocument(d Deck) ([]byte, error) {
	if d == nil {
		d = Deck{}
	}
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding presentation: %w", err)
	}
	return data, nil
}

// DecodeDocument parses a presentation document. Errors wrap ErrInvalidDocument.
func DecodeDocument(data []byte) (Deck, error) {
	var d Deck
	if err := json.Unmarshal(data, &d); err != nil {
		if errors.Is(err, ErrInvalidDocument) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return d, nil
}

package domain

import "fmt"

// Session is the editing state of one running application: the deck, the
// slide currently shown and the presentation flag. It has a single owner,
// the deck controller, and is never shared between actors.
type Session struct {
	// Slides is the deck being edited.
	Slides Deck

	// Current is the index of the displayed slide, clamped to the deck.
	Current int

	// Presenting is true while the deck is shown full-screen.
	Presenting bool
}

// NewSession creates a session positioned on the first slide.
func NewSession(d Deck) *Session {
	if d == nil {
		d = Deck{}
	}
	return &Session{Slides: d}
}

// Len returns the number of slides.
func (s *Session) Len() int {
	return len(s.Slides)
}

// LastIndex returns the highest valid index, or 0 for an empty deck.
func (s *Session) LastIndex() int {
	if len(s.Slides) == 0 {
		return 0
	}
	return len(s.Slides) - 1
}

// Clamp keeps Current within [0, LastIndex()].
func (s *Session) Clamp() {
	if s.Current > s.LastIndex() {
		s.Current = s.LastIndex()
	}
	if s.Current < 0 {
		s.Current = 0
	}
}

// GoTo moves to index i, clamped, and returns the new index.
func (s *Session) GoTo(i int) int {
	s.Current = i
	s.Clamp()
	return s.Current
}

// Next advances one slide unless already on the last one.
func (s *Session) Next() int {
	return s.GoTo(s.Current + 1)
}

// Prev retreats one slide unless already on the first one.
func (s *Session) Prev() int {
	return s.GoTo(s.Current - 1)
}

// Append adds a slide at the end and returns its index.
func (s *Session) Append(slide Slide) int {
	s.Slides = append(s.Slides, slide)
	return len(s.Slides) - 1
}

// Replace swaps the slide at index i.
func (s *Session) Replace(i int, slide Slide) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.Slides[i] = slide
	return nil
}

// Delete removes the slide at index i. Later slides shift down by one and
// Current is clamped to the shorter deck.
func (s *Session) Delete(i int) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.Slides = append(s.Slides[:i:i], s.Slides[i+1:]...)
	s.Clamp()
	return nil
}

// ReplaceAll swaps the whole deck and returns to the first slide.
func (s *Session) ReplaceAll(d Deck) {
	if d == nil {
		d = Deck{}
	}
	s.Slides = d
	s.Current = 0
}

func (s *Session) checkIndex(i int) error {
	if i < 0 || i >= len(s.Slides) {
		return fmt.Errorf("%w: slide %d (deck has %d)", ErrNotFound, i+1, len(s.Slides))
	}
	return nil
}

// Package deck provides the slide list view for the TUI.
package deck

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/slidedeck/internal/adapters/driving/tui/components/inline"
	"github.com/custodia-labs/slidedeck/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/slidedeck/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/slidedeck/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/slidedeck/internal/core/domain"
	"github.com/custodia-labs/slidedeck/internal/core/ports/driving"
)

const previewWidth = 48

// View lists the slides and offers the add, delete, edit and present actions.
type View struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	deckService driving.DeckService
	ctx         context.Context

	slides   domain.Deck
	selected int
	err      error

	width  int
	height int
	ready  bool
}

// NewView creates a new deck view.
func NewView(s *styles.Styles, km *keymap.KeyMap, deckService driving.DeckService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:      s,
		keymap:      km,
		deckService: deckService,
		ctx:         context.Background(),
		width:       80,
		height:      24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	v.Refresh(-1)
	return nil
}

// Refresh reloads the slides from the service. A selection of -1 keeps the
// current selection, clamped to the deck.
func (v *View) Refresh(selected int) {
	if v.deckService == nil {
		return
	}
	v.slides = v.deckService.Slides()
	if selected >= 0 {
		v.selected = selected
	}
	if v.selected >= len(v.slides) {
		v.selected = len(v.slides) - 1
	}
	if v.selected < 0 {
		v.selected = 0
	}
}

// Update handles messages for the deck view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case messages.DeckChanged:
		v.err = msg.Err
		v.Refresh(msg.Selected)
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
		return v, nil

	case key.Matches(msg, v.keymap.Down):
		if v.selected < len(v.slides)-1 {
			v.selected++
		}
		return v, nil

	case key.Matches(msg, v.keymap.AddTitle):
		return v, v.add(domain.SlideTypeTitle)

	case key.Matches(msg, v.keymap.AddContent):
		return v, v.add(domain.SlideTypeContent)

	case key.Matches(msg, v.keymap.AddList):
		return v, v.add(domain.SlideTypeList)

	case key.Matches(msg, v.keymap.Delete):
		if len(v.slides) == 0 {
			return v, nil
		}
		return v, v.remove(v.selected)

	case key.Matches(msg, v.keymap.Edit):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewEditor}
		}

	case key.Matches(msg, v.keymap.Present):
		index := v.selected
		return v, func() tea.Msg {
			return messages.PresentRequested{Index: index}
		}

	case key.Matches(msg, v.keymap.Help):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewHelp}
		}

	case key.Matches(msg, v.keymap.Quit):
		return v, tea.Quit
	}

	return v, nil
}

// add returns a command that appends a slide of type t.
func (v *View) add(t domain.SlideType) tea.Cmd {
	return func() tea.Msg {
		if v.deckService == nil {
			return messages.DeckChanged{Selected: -1, Err: fmt.Errorf("deck service not available")}
		}
		index, err := v.deckService.Add(v.ctx, t)
		if err != nil {
			return messages.DeckChanged{Selected: -1, Err: err}
		}
		return messages.DeckChanged{Selected: index}
	}
}

// remove returns a command that deletes the slide at index.
func (v *View) remove(index int) tea.Cmd {
	return func() tea.Msg {
		if v.deckService == nil {
			return messages.DeckChanged{Selected: -1, Err: fmt.Errorf("deck service not available")}
		}
		return messages.DeckChanged{Selected: -1, Err: v.deckService.Delete(v.ctx, index)}
	}
}

// View renders the slide list.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Slides"))
	b.WriteString("\n\n")

	if len(v.slides) == 0 {
		b.WriteString(v.styles.Muted.Render("No slides yet. Press t, c or b to add one."))
		b.WriteString("\n")
	}

	for i, s := range v.slides {
		cursor := "  "
		title := s.Heading()
		if title == "" {
			title = "(untitled)"
		}
		line := fmt.Sprintf("%2d. %-8s %s", i+1, s.Type(), title)
		if i == v.selected {
			cursor = "> "
			line = v.styles.Selected.Render(line)
		} else {
			line = v.styles.Normal.Render(line)
		}
		b.WriteString(cursor + line)
		if preview := Preview(s); preview != "" {
			b.WriteString("  " + v.styles.Muted.Render(preview))
		}
		b.WriteString("\n")
	}

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %v", v.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render(
		"[t/c/b] Add title/content/list  [d] Delete  [e] Edit markdown  [p] Present  [q] Quit"))

	return b.String()
}

// Preview returns a one-line summary of the slide body.
func Preview(s domain.Slide) string {
	var body string
	switch sl := s.(type) {
	case domain.TitleSlide:
		body = strings.ReplaceAll(sl.Subtitle, "\n", " / ")
	case domain.ContentSlide:
		body = inline.Plain(sl.Content)
	case domain.ListSlide:
		body = fmt.Sprintf("%d points", len(sl.Points))
	}

	runes := []rune(strings.TrimSpace(body))
	if len(runes) > previewWidth {
		return string(runes[:previewWidth-1]) + "…"
	}
	return string(runes)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the selected slide index.
func (v *View) Selected() int {
	return v.selected
}

// Slides returns the slides currently shown.
func (v *View) Slides() domain.Deck {
	return v.slides
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

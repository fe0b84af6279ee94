// Package presenter provides the full-screen presentation view for the TUI.
package presenter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/slidedeck/internal/adapters/driving/tui/components/inline"
	"github.com/custodia-labs/slidedeck/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/slidedeck/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/slidedeck/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/slidedeck/internal/core/domain"
	"github.com/custodia-labs/slidedeck/internal/core/ports/driving"
)

const (
	bulletMarker = "•"
	maxBodyWidth = 72
)

// View shows the current slide of the deck service full-screen.
type View struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	inline      *inline.Renderer
	deckService driving.DeckService

	showCounter bool

	width  int
	height int
	ready  bool
}

// NewView creates a new presenter view.
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
		inline:      inline.New(s),
		deckService: deckService,
		showCounter: true,
		width:       80,
		height:      24,
	}
}

// SetShowCounter toggles the "n / total" footer.
func (v *View) SetShowCounter(show bool) {
	v.showCounter = show
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the presenter view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if v.deckService == nil {
			return v, nil
		}
		switch {
		case key.Matches(msg, v.keymap.Back):
			v.deckService.StopPresenting()
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewDeck}
			}
		case key.Matches(msg, v.keymap.Next):
			v.deckService.Next()
		case key.Matches(msg, v.keymap.Prev):
			v.deckService.Prev()
		case key.Matches(msg, v.keymap.First):
			v.deckService.GoTo(0)
		case key.Matches(msg, v.keymap.Last):
			v.deckService.GoTo(v.deckService.Len() - 1)
		}
	}

	return v, nil
}

// View renders the current slide.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	body := v.styles.Muted.Render("No slides to present. Press esc to go back.")
	footer := ""

	if v.deckService != nil && v.deckService.Len() > 0 {
		current := v.deckService.Current()
		total := v.deckService.Len()
		if slide, err := v.deckService.Slide(current); err == nil {
			body = v.RenderSlide(slide)
		}
		if v.showCounter {
			footer = v.styles.Counter.Render(fmt.Sprintf("%d / %d", current+1, total))
		}
	}

	height := v.height
	if footer != "" {
		height--
	}

	page := lipgloss.Place(v.width, height, lipgloss.Center, lipgloss.Center, body)
	if footer == "" {
		return page
	}
	return page + "\n" + lipgloss.PlaceHorizontal(v.width, lipgloss.Right, footer)
}

// RenderSlide renders one slide without positioning it on the screen.
func (v *View) RenderSlide(s domain.Slide) string {
	width := v.bodyWidth()

	switch sl := s.(type) {
	case domain.TitleSlide:
		lines := []string{v.styles.SlideTitle.Render(sl.Title)}
		for _, line := range strings.Split(sl.Subtitle, "\n") {
			lines = append(lines, v.styles.SlideSubtitle.Render(line))
		}
		return lipgloss.JoinVertical(lipgloss.Center, lines...)

	case domain.ContentSlide:
		parts := []string{v.styles.SlideTitle.Render(sl.Title)}
		if strings.TrimSpace(sl.Content) != "" {
			parts = append(parts, v.styles.ContentPanel.Width(width).Render(v.inline.Render(sl.Content)))
		}
		if len(sl.Points) > 0 {
			parts = append(parts, v.renderPoints(sl.Points, width))
		}
		return lipgloss.JoinVertical(lipgloss.Left, parts...)

	case domain.ListSlide:
		parts := []string{v.styles.SlideTitle.Render(sl.Title)}
		if len(sl.Points) > 0 {
			parts = append(parts, v.renderPoints(sl.Points, width))
		}
		return lipgloss.JoinVertical(lipgloss.Left, parts...)

	default:
		return v.styles.Error.Render(fmt.Sprintf("unsupported slide %T", s))
	}
}

func (v *View) renderPoints(points []string, width int) string {
	marker := v.styles.Bullet.Render(bulletMarker) + " "
	textWidth := width - lipgloss.Width(marker)
	if textWidth < 10 {
		textWidth = 10
	}

	rows := make([]string, 0, len(points))
	for _, p := range points {
		text := lipgloss.NewStyle().Width(textWidth).Render(v.inline.Render(p))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, marker, text))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (v *View) bodyWidth() int {
	width := v.width - 8
	if width > maxBodyWidth {
		width = maxBodyWidth
	}
	if width < 20 {
		width = 20
	}
	return width
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

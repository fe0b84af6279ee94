// Package editor provides the markdown editor view for the TUI.
package editor

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/slidedeck/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/slidedeck/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/slidedeck/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/slidedeck/internal/core/ports/driving"
)

// reservedRows is the space taken by the header and footer.
const reservedRows = 6

// View edits the whole deck as one markdown document. Nothing reaches the
// deck until the document is committed.
type View struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	deckService driving.DeckService
	ctx         context.Context

	textarea textarea.Model
	original string
	err      error

	width  int
	height int
	ready  bool
}

// NewView creates a new editor view.
func NewView(s *styles.Styles, km *keymap.KeyMap, deckService driving.DeckService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	ta := textarea.New()
	ta.Placeholder = "# Title\n## Subtitle\n\n---\n\n# Slide\n\nContent\n\n- Point"
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.MaxHeight = 0

	return &View{
		styles:      s,
		keymap:      km,
		deckService: deckService,
		ctx:         context.Background(),
		textarea:    ta,
		width:       80,
		height:      24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the current deck as markdown and focuses the editor.
func (v *View) Init() tea.Cmd {
	v.Reset()
	return textarea.Blink
}

// Reset discards any edits and reloads the document from the deck.
func (v *View) Reset() {
	v.err = nil
	v.original = ""
	if v.deckService != nil {
		v.original = v.deckService.Markdown()
	}
	v.textarea.SetValue(v.original)
	v.textarea.Focus()
	v.resize()
}

// Update handles messages for the editor view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.MarkdownCommitted:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.original = v.textarea.Value()
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewDeck}
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keymap.Commit):
			return v, v.commit()
		case key.Matches(msg, v.keymap.Back):
			v.textarea.Blur()
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewDeck}
			}
		}
	}

	var cmd tea.Cmd
	v.textarea, cmd = v.textarea.Update(msg)
	return v, cmd
}

// commit returns a command that applies the edited document to the deck.
func (v *View) commit() tea.Cmd {
	doc := v.textarea.Value()
	return func() tea.Msg {
		if v.deckService == nil {
			return messages.MarkdownCommitted{Err: fmt.Errorf("deck service not available")}
		}
		return messages.MarkdownCommitted{Err: v.deckService.CommitMarkdown(v.ctx, doc)}
	}
}

// View renders the editor.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	header := "Markdown"
	if v.Dirty() {
		header += " (modified)"
	}
	b.WriteString(v.styles.Title.Render(header))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Slides are separated by a line containing only ---"))
	b.WriteString("\n\n")

	b.WriteString(v.textarea.View())
	b.WriteString("\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %v", v.err)))
		b.WriteString("\n")
	}

	b.WriteString(v.styles.Help.Render("[ctrl+s] Apply to slides  [esc] Discard changes"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.resize()
}

func (v *View) resize() {
	v.textarea.SetWidth(v.width)
	rows := v.height - reservedRows
	if rows < 3 {
		rows = 3
	}
	v.textarea.SetHeight(rows)
}

// Value returns the document being edited.
func (v *View) Value() string {
	return v.textarea.Value()
}

// SetValue replaces the document being edited.
func (v *View) SetValue(doc string) {
	v.textarea.SetValue(doc)
}

// Dirty reports whether the document differs from the deck.
func (v *View) Dirty() bool {
	return v.textarea.Value() != v.original
}

// Err returns the last commit error.
func (v *View) Err() error {
	return v.err
}

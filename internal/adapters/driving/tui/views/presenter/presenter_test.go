package presenter

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/slidedeck/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/slidedeck/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/slidedeck/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/slidedeck/internal/converters/markdown"
	"github.com/custodia-labs/slidedeck/internal/core/domain"
	"github.com/custodia-labs/slidedeck/internal/core/services"
)

func newTestView(t *testing.T) (*View, *services.DeckService) {
	t.Helper()
	svc := services.NewDeckService(memory.NewStateStore(), nil, markdown.New(), nil)
	v := NewView(styles.NewStyles(styles.MonoTheme()), nil, svc)
	v.SetDimensions(100, 30)
	svc.StartPresenting()
	return v, svc
}

func TestNewView_Defaults(t *testing.T) {
	v := NewView(nil, nil, nil)

	require.NotNil(t, v)
	assert.True(t, v.showCounter)
	assert.Nil(t, v.Init())
	assert.Equal(t, "Initialising...", v.View())
}

func TestView_NextPrevClamped(t *testing.T) {
	v, svc := newTestView(t)

	v.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, svc.Current())

	v.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, 1, svc.Current())

	v.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, svc.Current())

	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")})
	assert.Equal(t, 0, svc.Current())

	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	assert.Equal(t, 1, svc.Current())
}

func TestView_FirstLast(t *testing.T) {
	v, svc := newTestView(t)
	_, err := svc.Add(context.Background(), domain.SlideTypeList)
	require.NoError(t, err)

	v.Update(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 2, svc.Current())

	v.Update(tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 0, svc.Current())
}

func TestView_EscapeStopsPresenting(t *testing.T) {
	v, svc := newTestView(t)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewDeck}, cmd())
	assert.False(t, svc.Presenting())
}

func TestView_RendersTitleSlide(t *testing.T) {
	v, _ := newTestView(t)

	view := v.View()

	assert.Contains(t, view, "Sample Title Slide")
	assert.Contains(t, view, "With a subtitle")
	assert.Contains(t, view, "Multiple lines possible")
	assert.Contains(t, view, "1 / 2")
}

func TestView_RendersContentSlide(t *testing.T) {
	v, svc := newTestView(t)
	svc.Next()

	view := v.View()

	assert.Contains(t, view, "Content Slide Example")
	assert.Contains(t, view, "This is the main content area")
	assert.Contains(t, view, "• First bullet point")
	assert.Contains(t, view, "• Third bullet point")
	assert.Contains(t, view, "2 / 2")
}

func TestView_HidesCounter(t *testing.T) {
	v, _ := newTestView(t)
	v.SetShowCounter(false)

	assert.NotContains(t, v.View(), "1 / 2")
}

func TestView_EmptyDeck(t *testing.T) {
	v, svc := newTestView(t)
	require.NoError(t, svc.CommitMarkdown(context.Background(), ""))

	view := v.View()

	assert.Contains(t, view, "No slides to present")
	assert.NotContains(t, view, "/ 0")
}

func TestRenderSlide_ListWithInlineMarkdown(t *testing.T) {
	v, _ := newTestView(t)

	out := v.RenderSlide(domain.ListSlide{
		Title:  "Agenda",
		Points: []string{"an *important* point", "read [docs](https://example.com)"},
	})

	assert.Contains(t, out, "Agenda")
	assert.Contains(t, out, "important point")
	assert.NotContains(t, out, "*important*")
	assert.Contains(t, out, "(https://example.com)")
	assert.Equal(t, 2, strings.Count(out, "•"))
}

func TestRenderSlide_ContentWithoutPoints(t *testing.T) {
	v, _ := newTestView(t)

	out := v.RenderSlide(domain.ContentSlide{Title: "Only text", Content: "body", Points: []string{}})

	assert.Contains(t, out, "Only text")
	assert.Contains(t, out, "body")
	assert.NotContains(t, out, "•")
}

package status

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/slidedeck/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/slidedeck/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 0, bar.SlideCount())
	assert.Equal(t, 80, bar.Width())
}

func TestNewBar_NilStyles(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestStatusBar_InitAndUpdate(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Nil(t, bar.Init())

	updated, cmd := bar.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, bar, updated)
	assert.Nil(t, cmd)
}

func TestStatusBar_View_SlideCount(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetSlideCount(1)
	assert.Contains(t, bar.View(), "1 slide")

	bar.SetSlideCount(3)
	assert.Contains(t, bar.View(), "3 slides")
}

func TestStatusBar_View_Error(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)

	assert.Contains(t, bar.View(), "Error")

	bar.SetMessage("disk full")
	assert.Contains(t, bar.View(), "Error: disk full")
}

func TestStatusBar_View_Saved(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateSaved)

	assert.Contains(t, bar.View(), "Saved")

	bar.SetMessage("Markdown applied")
	assert.Contains(t, bar.View(), "Markdown applied")
}

func TestStatusBar_View_EditingHints(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)
	bar.SetState(StateEditing)

	view := bar.View()

	assert.Contains(t, view, "Editing markdown")
	assert.Contains(t, view, "ctrl+s: save")
}

func TestStatusBar_View_ShortHints(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)

	view := bar.View()

	assert.Contains(t, view, "q: quit")
	assert.Contains(t, view, "?: help")
}

func TestStatusBar_View_FitsOneLine(t *testing.T) {
	for _, state := range []State{StateReady, StateEditing, StateSaved, StateError} {
		for _, width := range []int{60, 80, 120} {
			bar := NewBar(nil, nil)
			bar.SetSlideCount(12)
			bar.SetState(state)
			bar.SetMessage("done")
			bar.SetWidth(width)

			view := bar.View()

			assert.NotContains(t, view, "\n", "state %v width %d", state, width)
			assert.Equal(t, width, lipgloss.Width(view), "state %v width %d", state, width)
			hint := "?: help"
			if state == StateEditing {
				hint = "ctrl+s"
			}
			assert.Contains(t, view, hint)
		}
	}
}

func TestStatusBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("oops")
	bar.SetSlideCount(4)

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Empty(t, bar.Message())
	assert.Equal(t, 4, bar.SlideCount())
}

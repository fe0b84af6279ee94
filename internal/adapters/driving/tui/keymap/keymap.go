// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back leaves the editor or the presenter.
	Back key.Binding

	// Up moves the selection up in the slide list.
	Up key.Binding

	// Down moves the selection down in the slide list.
	Down key.Binding

	// AddTitle appends a title slide.
	AddTitle key.Binding

	// AddContent appends a content slide.
	AddContent key.Binding

	// AddList appends a bullet list slide.
	AddList key.Binding

	// Delete removes the selected slide.
	Delete key.Binding

	// Edit opens the markdown editor.
	Edit key.Binding

	// Present starts the presentation at the selected slide.
	Present key.Binding

	// Commit applies the edited markdown to the deck.
	Commit key.Binding

	// Next advances one slide.
	Next key.Binding

	// Prev retreats one slide.
	Prev key.Binding

	// First jumps to the first slide.
	First key.Binding

	// Last jumps to the last slide.
	Last key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		AddTitle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "add title"),
		),
		AddContent: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "add content"),
		),
		AddList: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "add list"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit markdown"),
		),
		Present: key.NewBinding(
			key.WithKeys("p", "enter"),
			key.WithHelp("p", "present"),
		),
		Commit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", " "),
			key.WithHelp("→/l", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Help}
}

// DeckHelp returns keybindings for the slide list.
func (k *KeyMap) DeckHelp() []key.Binding {
	return []key.Binding{k.AddTitle, k.AddContent, k.AddList, k.Delete, k.Edit, k.Present, k.Quit}
}

// EditorHelp returns keybindings for the markdown editor.
func (k *KeyMap) EditorHelp() []key.Binding {
	return []key.Binding{k.Commit, k.Back}
}

// PresenterHelp returns keybindings for the presenter.
func (k *KeyMap) PresenterHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Back}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Present},
		{k.AddTitle, k.AddContent, k.AddList, k.Delete},
		{k.Edit, k.Commit, k.Back},
		{k.Prev, k.Next, k.First, k.Last},
		{k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}

// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewDeck is the slide list with the add and delete actions.
	ViewDeck ViewType = iota
	// ViewEditor is the markdown editor.
	ViewEditor
	// ViewPresenter shows one slide full-screen.
	ViewPresenter
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewDeck:
		return "deck"
	case ViewEditor:
		return "editor"
	case ViewPresenter:
		return "presenter"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// DeckChanged signals that the deck was mutated and views should refresh.
type DeckChanged struct {
	// Selected is the slide to select afterwards, or -1 to keep the selection.
	Selected int
	Err      error
}

// MarkdownCommitted signals the editor's document was committed.
type MarkdownCommitted struct {
	Err error
}

// FileReloaded carries a change of a watched markdown file.
type FileReloaded struct {
	Path string
	Err  error
}

// PresentRequested asks the app to start presenting at a slide.
type PresentRequested struct {
	Index int
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

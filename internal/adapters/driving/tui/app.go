package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/slidedeck/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/slidedeck/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/slidedeck/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/slidedeck/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/slidedeck/internal/adapters/driving/tui/views/deck"
	"github.com/custodia-labs/slidedeck/internal/adapters/driving/tui/views/editor"
	"github.com/custodia-labs/slidedeck/internal/adapters/driving/tui/views/presenter"
	"github.com/custodia-labs/slidedeck/internal/watch"
)

// App is the main TUI application model.
// It implements tea.Model for the Bubbletea framework.
type App struct {
	// ports holds the injected driving port implementations.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the visual styling configuration.
	styles *styles.Styles

	keymap *keymap.KeyMap

	// Views
	deckView      *deck.View
	editorView    *editor.View
	presenterView *presenter.View
	statusBar     *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// events delivers reloads of a watched markdown file.
	events <-chan watch.Event

	// err holds the last error that occurred.
	err error

	// width and height track terminal dimensions.
	width  int
	height int

	// ready indicates the terminal size is known.
	ready bool
}

// Verify App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
// Returns an error if required ports are missing.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, err
	}

	theme := styles.DefaultTheme()
	showCounter := true
	if ports.Settings != nil {
		if settings, err := ports.Settings.Get(); err == nil {
			theme = styles.ThemeFor(settings.Presenter.Theme)
			showCounter = settings.Presenter.ShowCounter
		}
	}
	s := styles.NewStyles(theme)
	km := keymap.DefaultKeyMap()

	presenterView := presenter.NewView(s, km, ports.Deck)
	presenterView.SetShowCounter(showCounter)

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		keymap:        km,
		deckView:      deck.NewView(s, km, ports.Deck),
		editorView:    editor.NewView(s, km, ports.Deck),
		presenterView: presenterView,
		statusBar:     status.NewBar(s, km),
		currentView:   messages.ViewDeck,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.deckView.WithContext(ctx)
	a.editorView.WithContext(ctx)
	return a
}

// WithEvents makes the app commit every reload received on events.
func (a *App) WithEvents(events <-chan watch.Event) *App {
	a.events = events
	return a
}

// StartPresenting opens the app in the presenter at index.
func (a *App) StartPresenting(index int) *App {
	a.ports.Deck.GoTo(index)
	a.ports.Deck.StartPresenting()
	a.currentView = messages.ViewPresenter
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	a.statusBar.SetSlideCount(a.ports.Deck.Len())
	return tea.Batch(
		tea.SetWindowTitle("slidedeck"),
		a.deckView.Init(),
		a.waitForReload(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewDeck:
			a.deckView, cmd = a.deckView.Update(msg)
			return a, cmd

		case messages.ViewEditor:
			a.editorView, cmd = a.editorView.Update(msg)
			return a, cmd

		case messages.ViewPresenter:
			a.presenterView, cmd = a.presenterView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			if msg.Type == tea.KeyEsc || msg.String() == "?" {
				a.currentView = messages.ViewDeck
			}
			return a, nil
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewEditor:
			a.statusBar.SetState(status.StateEditing)
			return a, a.editorView.Init()
		case messages.ViewDeck:
			a.statusBar.Clear()
			a.refreshDeck(-1)
		case messages.ViewPresenter, messages.ViewHelp:
		}
		return a, nil

	case messages.PresentRequested:
		a.StartPresenting(msg.Index)
		return a, nil

	case messages.DeckChanged:
		a.deckView, cmd = a.deckView.Update(msg)
		a.statusBar.SetSlideCount(a.ports.Deck.Len())
		if msg.Err != nil {
			a.setError(msg.Err)
		} else {
			a.statusBar.Clear()
		}
		return a, cmd

	case messages.MarkdownCommitted:
		a.editorView, cmd = a.editorView.Update(msg)
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, cmd
		}
		a.refreshDeck(-1)
		a.statusBar.SetState(status.StateSaved)
		a.statusBar.SetMessage("Markdown applied")
		return a, cmd

	case messages.FileReloaded:
		if msg.Err != nil {
			a.setError(fmt.Errorf("reloading %s: %w", msg.Path, msg.Err))
		} else {
			a.refreshDeck(-1)
			a.statusBar.SetState(status.StateSaved)
			a.statusBar.SetMessage("Reloaded " + msg.Path)
		}
		return a, a.waitForReload()

	case messages.ErrorOccurred:
		a.setError(msg.Err)
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages, such as cursor blinks, to the active view
	if a.currentView == messages.ViewEditor {
		a.editorView, cmd = a.editorView.Update(msg)
	}
	return a, cmd
}

// waitForReload returns a command that blocks until the watched file
// changes and commits its content.
func (a *App) waitForReload() tea.Cmd {
	if a.events == nil {
		return nil
	}
	events := a.events
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		if ev.Err != nil {
			return messages.FileReloaded{Path: ev.Path, Err: ev.Err}
		}
		return messages.FileReloaded{
			Path: ev.Path,
			Err:  a.ports.Deck.CommitMarkdown(a.ctx, ev.Content),
		}
	}
}

func (a *App) refreshDeck(selected int) {
	a.deckView.Refresh(selected)
	a.statusBar.SetSlideCount(a.ports.Deck.Len())
}

func (a *App) setError(err error) {
	a.err = err
	a.statusBar.SetState(status.StateError)
	a.statusBar.SetMessage(err.Error())
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewPresenter:
		return a.presenterView.View()
	case messages.ViewEditor:
		return a.editorView.View() + "\n" + a.statusBar.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.deckView.View() + "\n" + a.statusBar.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Slides:
  j/k, ↑/↓    Select slide
  t / c / b   Add title / content / list slide
  d           Delete selected slide
  e           Edit all slides as markdown
  p, enter    Present from selected slide
  q           Quit

Markdown editor:
  ctrl+s      Apply to slides
  esc         Discard changes

Presenter:
  →, l, space Next slide
  ←, h        Previous slide
  home / end  First / last slide
  esc         Exit presentation

[esc] back`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.deckView.SetDimensions(width, height-1)
	a.editorView.SetDimensions(width, height-1)
	a.presenterView.SetDimensions(width, height)
	a.statusBar.SetWidth(width)
}

package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/slidedeck/internal/adapters/driving/tui"
)

var (
	tuiWatchFile string

	presentWatchFile string
	presentStart     int
)

// isTerminal reports whether stdout is an interactive terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// runProgram runs a TUI app to completion.
var runProgram = func(app *tui.App) error {
	return app.Run()
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive slide editor",
	Long: `Launch the interactive terminal editor.

Controls:
  ↑/k, ↓/j  - Select slide
  t, c, b   - Add title, content or list slide
  d         - Delete selected slide
  e         - Edit all slides as markdown (ctrl+s applies, esc discards)
  p, Enter  - Present from the selected slide
  ?         - Toggle help
  q         - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

var presentCmd = &cobra.Command{
	Use:   "present",
	Short: "Present the deck full-screen",
	Long: `Show the deck one slide at a time.

Controls:
  →, l, space  - Next slide
  ←, h         - Previous slide
  Home, End    - First, last slide
  Esc          - Leave the presentation

With --watch the deck is reloaded from a markdown file every time the
file is saved, so the presentation follows an editor in another window.`,
	Args: cobra.NoArgs,
	RunE: runPresent,
}

func init() {
	tuiCmd.Flags().StringVar(&tuiWatchFile, "watch", "", "reload the deck from this markdown file when it changes")

	presentCmd.Flags().StringVar(&presentWatchFile, "watch", "", "reload the deck from this markdown file when it changes")
	presentCmd.Flags().IntVar(&presentStart, "start", 1, "slide number to start at")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(presentCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	app, err := newApp(cmd, tuiWatchFile)
	if err != nil {
		return err
	}
	return runApp(app)
}

func runPresent(cmd *cobra.Command, _ []string) error {
	if presentStart < 1 {
		return fmt.Errorf("invalid --start %d: must be 1 or more", presentStart)
	}

	app, err := newApp(cmd, presentWatchFile)
	if err != nil {
		return err
	}
	app.StartPresenting(presentStart - 1)
	defer deckService.StopPresenting()

	return runApp(app)
}

// newApp builds the TUI app, wiring an optional markdown file watch.
func newApp(cmd *cobra.Command, watchFile string) (*tui.App, error) {
	if deckService == nil {
		return nil, errors.New("deck service not configured")
	}
	if !isTerminal() {
		return nil, errors.New("slidedeck needs an interactive terminal for this command")
	}

	app, err := tui.NewApp(tui.NewPorts(deckService, settingsService))
	if err != nil {
		return nil, fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if watchFile != "" {
		events, err := startWatch(cmd.Context(), watchFile)
		if err != nil {
			return nil, err
		}
		app.WithEvents(events)
	}

	return app, nil
}

func runApp(app *tui.App) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI error: %v", r)
		}
	}()

	if err := runProgram(app); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

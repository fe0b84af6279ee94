// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/slidedeck/internal/core/domain"
)

// Theme defines the colour palette and styling for the TUI.
type Theme struct {
	// Primary is the main accent colour, used for slide titles.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour, used for subtitles.
	Secondary lipgloss.Color

	// Highlight marks bullets and the selected slide.
	Highlight lipgloss.Color

	// Panel is the background of the content panel.
	Panel lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the green presenter palette.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#00B388"), // Green
		Secondary:  lipgloss.Color("#F4F5F5"), // Off white
		Highlight:  lipgloss.Color("#F2C75C"), // Yellow
		Panel:      lipgloss.Color("#00534C"), // Dark green
		Foreground: lipgloss.Color("#F4F5F5"),
		Muted:      lipgloss.Color("#6C7086"),
		Success:    lipgloss.Color("#A6E3A1"),
		Error:      lipgloss.Color("#F38BA8"),
		Border:     lipgloss.Color("#00B388"),
	}
}

// MonoTheme returns a theme that leaves colours to the terminal.
func MonoTheme() *Theme {
	return &Theme{}
}

// ThemeFor returns the theme for a presenter setting. Unknown names get the
// default theme.
func ThemeFor(name domain.PresenterTheme) *Theme {
	if name == domain.PresenterThemeMono {
		return MonoTheme()
	}
	return DefaultTheme()
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for the highlighted slide in the list.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Success style for success messages.
	Success lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style

	// Border style for bordered containers.
	Border lipgloss.Style

	// SlideTitle is the heading of a presented slide.
	SlideTitle lipgloss.Style

	// SlideSubtitle is a subtitle line of a title slide.
	SlideSubtitle lipgloss.Style

	// ContentPanel wraps the paragraph of a content slide.
	ContentPanel lipgloss.Style

	// Bullet is the marker in front of each point.
	Bullet lipgloss.Style

	// Counter is the "n / total" footer.
	Counter lipgloss.Style

	// Emphasis, Strong, Code and Link style inline markdown.
	Emphasis lipgloss.Style
	Strong   lipgloss.Style
	Code     lipgloss.Style
	Link     lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Highlight),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),

		SlideTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary).
			MarginBottom(1),

		SlideSubtitle: lipgloss.NewStyle().
			Foreground(theme.Secondary),

		ContentPanel: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Background(theme.Panel).
			Padding(1, 2).
			MarginBottom(1),

		Bullet: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Highlight),

		Counter: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Emphasis: lipgloss.NewStyle().Italic(true),
		Strong:   lipgloss.NewStyle().Bold(true),
		Code:     lipgloss.NewStyle().Foreground(theme.Highlight),
		Link: lipgloss.NewStyle().
			Underline(true).
			Foreground(theme.Primary),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Package cli provides the slidedeck command line interface.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/slidedeck/internal/core/ports/driving"
	"github.com/custodia-labs/slidedeck/internal/logger"
)

// version is set at build time with -ldflags.
var version = "dev"

// Services used by the commands. Set by SetServices or built by the
// service factory before a command runs.
var (
	deckService     driving.DeckService
	settingsService driving.SettingsService
)

// Global flags.
var (
	verbose bool
	homeDir string
)

// annotationSkipServices marks commands that run without services.
const annotationSkipServices = "skip-services"

// Services groups the driving ports the commands depend on.
type Services struct {
	Deck     driving.DeckService
	Settings driving.SettingsService
}

// ServiceFactory builds the services once flags are parsed. home is the
// value of --home and may be empty. The returned cleanup runs after the
// command finishes.
type ServiceFactory func(ctx context.Context, home string) (*Services, func(), error)

var (
	serviceFactory  ServiceFactory
	cleanupServices func()
)

var rootCmd = &cobra.Command{
	Use:   "slidedeck",
	Short: "Write slides, edit them as markdown and present them in the terminal",
	Long: `slidedeck keeps a deck of title, content and bullet list slides.

Slides can be edited one field at a time, or all at once as a markdown
document where slides are separated by a line containing only ---.
The deck is saved after every change, can be exported to and imported
from JSON, rendered to HTML, and presented full-screen in the terminal.`,
	SilenceUsage:      true,
	PersistentPreRunE: prepareServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show debug output")
	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "data directory (default $SLIDEDECK_HOME or ~/.slidedeck)")
}

// SetServices injects the services used by the commands.
func SetServices(deck driving.DeckService, settings driving.SettingsService) {
	deckService = deck
	settingsService = settings
}

// SetServiceFactory sets the function that builds the services on first use.
func SetServiceFactory(factory ServiceFactory) {
	serviceFactory = factory
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	defer func() {
		if cleanupServices != nil {
			cleanupServices()
			cleanupServices = nil
		}
	}()
	return rootCmd.ExecuteContext(ctx)
}

func prepareServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if cmd.Annotations[annotationSkipServices] == "true" {
		return nil
	}
	if deckService != nil || serviceFactory == nil {
		return nil
	}

	services, cleanup, err := serviceFactory(cmd.Context(), homeDir)
	if err != nil {
		return fmt.Errorf("failed to initialise: %w", err)
	}
	SetServices(services.Deck, services.Settings)
	cleanupServices = cleanup
	return nil
}

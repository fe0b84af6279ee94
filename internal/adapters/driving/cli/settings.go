package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/slidedeck/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change storage, export, presenter and watch settings.

Settings are stored in ~/.slidedeck/config.toml.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change a single setting",
	Long: `Change a single setting by its dotted key.

Keys:
  storage.backend          sqlite or memory (applies on next start)
  export.filename          default export file name
  presenter.show_counter   true or false
  presenter.theme          green or mono
  watch.interval_ms        minimum milliseconds between reloads
  telemetry.otlp_endpoint  OTLP/HTTP collector, empty to disable`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List settable keys",
	Args:  cobra.NoArgs,
	RunE:  runSettingsKeys,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Storage]")
	cmd.Printf("  Backend: %s\n", settings.Storage.Backend.Description())
	cmd.Println()

	cmd.Println("[Export]")
	cmd.Printf("  File name: %s\n", settings.Export.FileName)
	cmd.Println()

	cmd.Println("[Presenter]")
	cmd.Printf("  Show counter: %s\n", yesNo(settings.Presenter.ShowCounter))
	cmd.Printf("  Theme: %s\n", settings.Presenter.Theme)
	cmd.Println()

	cmd.Println("[Watch]")
	cmd.Printf("  Interval: %dms\n", settings.Watch.IntervalMS)
	cmd.Println()

	cmd.Println("[Telemetry]")
	if settings.Telemetry.OTLPEndpoint != "" {
		cmd.Printf("  OTLP endpoint: %s\n", settings.Telemetry.OTLPEndpoint)
	} else {
		cmd.Println("  OTLP endpoint: (disabled)")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key := strings.ToLower(strings.TrimSpace(args[0]))
	if err := settingsService.Set(key, args[1]); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return fmt.Errorf("%w\nRun 'slidedeck settings keys' to list valid keys", err)
		}
		return fmt.Errorf("failed to save setting: %w", err)
	}

	cmd.Printf("Set %s = %s\n", key, strings.TrimSpace(args[1]))
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	for _, key := range settingsService.Keys() {
		fmt.Fprintln(cmd.OutOrStdout(), key)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

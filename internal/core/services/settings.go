package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/slidedeck/internal/core/domain"
	"github.com/custodia-labs/slidedeck/internal/core/ports/driven"
	"github.com/custodia-labs/slidedeck/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyStorageBackend    = "storage.backend"
	KeyExportFileName    = "export.filename"
	KeyPresenterCounter  = "presenter.show_counter"
	KeyPresenterTheme    = "presenter.theme"
	KeyWatchIntervalMS   = "watch.interval_ms"
	KeyTelemetryEndpoint = "telemetry.otlp_endpoint"
)

var settingKeys = []string{
	KeyStorageBackend,
	KeyExportFileName,
	KeyPresenterCounter,
	KeyPresenterTheme,
	KeyWatchIntervalMS,
	KeyTelemetryEndpoint,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings. Missing or invalid values
// fall back to the defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Storage: domain.StorageSettings{
			Backend: s.getBackend(defaults.Storage.Backend),
		},
		Export: domain.ExportSettings{
			FileName: s.getString(KeyExportFileName, defaults.Export.FileName),
		},
		Presenter: domain.PresenterSettings{
			ShowCounter: s.getBool(KeyPresenterCounter, defaults.Presenter.ShowCounter),
			Theme:       s.getTheme(defaults.Presenter.Theme),
		},
		Watch: domain.WatchSettings{
			IntervalMS: s.getInt(KeyWatchIntervalMS, defaults.Watch.IntervalMS),
		},
		Telemetry: domain.TelemetrySettings{
			OTLPEndpoint: s.configStore.GetString(KeyTelemetryEndpoint),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if !settings.Storage.Backend.IsValid() {
		return fmt.Errorf("%w: storage backend %q", domain.ErrInvalidInput, settings.Storage.Backend)
	}
	if !settings.Presenter.Theme.IsValid() {
		return fmt.Errorf("%w: presenter theme %q", domain.ErrInvalidInput, settings.Presenter.Theme)
	}

	values := []struct {
		key   string
		value any
	}{
		{KeyStorageBackend, settings.Storage.Backend.String()},
		{KeyExportFileName, settings.Export.FileName},
		{KeyPresenterCounter, settings.Presenter.ShowCounter},
		{KeyPresenterTheme, settings.Presenter.Theme.String()},
		{KeyWatchIntervalMS, settings.Watch.IntervalMS},
		{KeyTelemetryEndpoint, settings.Telemetry.OTLPEndpoint},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	return nil
}

// Set validates and stores a single setting given as text.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)

	var typed any
	switch key {
	case KeyStorageBackend:
		backend := domain.StorageBackend(strings.ToLower(value))
		if !backend.IsValid() {
			return fmt.Errorf("%w: storage backend %q (want one of %s)",
				domain.ErrInvalidInput, value, joinBackends(domain.AllStorageBackends()))
		}
		typed = backend.String()

	case KeyExportFileName:
		if value == "" {
			return fmt.Errorf("%w: export file name cannot be empty", domain.ErrInvalidInput)
		}
		typed = value

	case KeyPresenterCounter:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		typed = b

	case KeyPresenterTheme:
		theme := domain.PresenterTheme(strings.ToLower(value))
		if !theme.IsValid() {
			return fmt.Errorf("%w: presenter theme %q (want one of %s)",
				domain.ErrInvalidInput, value, joinThemes(domain.AllPresenterThemes()))
		}
		typed = theme.String()

	case KeyWatchIntervalMS:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: %s must be a positive number of milliseconds", domain.ErrInvalidInput, key)
		}
		typed = n

	case KeyTelemetryEndpoint:
		typed = value

	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	if err := s.configStore.Set(key, typed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the settable keys in display order.
func (s *SettingsService) Keys() []string {
	out := make([]string, len(settingKeys))
	copy(out, settingKeys)
	return out
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getBackend(defaultVal domain.StorageBackend) domain.StorageBackend {
	backend := domain.StorageBackend(s.configStore.GetString(KeyStorageBackend))
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}

func (s *SettingsService) getTheme(defaultVal domain.PresenterTheme) domain.PresenterTheme {
	theme := domain.PresenterTheme(s.configStore.GetString(KeyPresenterTheme))
	if !theme.IsValid() {
		return defaultVal
	}
	return theme
}

func joinBackends(backends []domain.StorageBackend) string {
	names := make([]string, len(backends))
	for i, b := range backends {
		names[i] = b.String()
	}
	return strings.Join(names, ", ")
}

func joinThemes(themes []domain.PresenterTheme) string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}

package domain

const unknownDescription = "Unknown"

// StorageBackend selects where the session state is persisted.
type StorageBackend string

// Available storage backends.
const (
	// StorageBackendSQLite keeps state in ~/.slidedeck/data/state.db.
	StorageBackendSQLite StorageBackend = "sqlite"

	// StorageBackendMemory keeps state for the lifetime of the process only.
	StorageBackendMemory StorageBackend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageBackendSQLite, StorageBackendMemory:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b StorageBackend) Description() string {
	switch b {
	case StorageBackendSQLite:
		return "SQLite (persistent)"
	case StorageBackendMemory:
		return "Memory (discarded on exit)"
	default:
		return unknownDescription
	}
}

// PresenterTheme names a colour palette for the presenter.
type PresenterTheme string

// Available presenter themes.
const (
	// PresenterThemeGreen is the green and yellow house palette.
	PresenterThemeGreen PresenterTheme = "green"

	// PresenterThemeMono uses the terminal's default colours.
	PresenterThemeMono PresenterTheme = "mono"
)

// IsValid returns true if the theme is recognised.
func (t PresenterTheme) IsValid() bool {
	return t == PresenterThemeGreen || t == PresenterThemeMono
}

// String returns the string representation.
func (t PresenterTheme) String() string {
	return string(t)
}

// StorageSettings holds persistence configuration.
type StorageSettings struct {
	// Backend selects the state store.
	Backend StorageBackend
}

// ExportSettings holds export configuration.
type ExportSettings struct {
	// FileName is the default export target.
	FileName string
}

// PresenterSettings holds presentation mode configuration.
type PresenterSettings struct {
	// ShowCounter renders "n / total" in the footer.
	ShowCounter bool

	// Theme is the colour palette.
	Theme PresenterTheme
}

// WatchSettings holds markdown file watching configuration.
type WatchSettings struct {
	// IntervalMS is the minimum time between two reloads.
	IntervalMS int
}

// TelemetrySettings holds tracing configuration.
type TelemetrySettings struct {
	// OTLPEndpoint is the OTLP/HTTP collector address. Empty disables export.
	OTLPEndpoint string
}

// AppSettings holds all application settings.
type AppSettings struct {
	Storage   StorageSettings
	Export    ExportSettings
	Presenter PresenterSettings
	Watch     WatchSettings
	Telemetry TelemetrySettings
}

// DefaultExportFileName is the file written by export when none is given.
const DefaultExportFileName = "presentation.json"

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Storage: StorageSettings{
			Backend: StorageBackendSQLite,
		},
		Export: ExportSettings{
			FileName: DefaultExportFileName,
		},
		Presenter: PresenterSettings{
			ShowCounter: true,
			Theme:       PresenterThemeGreen,
		},
		Watch: WatchSettings{
			IntervalMS: 250,
		},
	}
}

// AllStorageBackends returns all available storage backends.
func AllStorageBackends() []StorageBackend {
	return []StorageBackend{StorageBackendSQLite, StorageBackendMemory}
}

// AllPresenterThemes returns all available presenter themes.
func AllPresenterThemes() []PresenterTheme {
	return []PresenterTheme{PresenterThemeGreen, PresenterThemeMono}
}

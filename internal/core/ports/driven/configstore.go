package driven

// ConfigStore holds the user's settings as dotted keys such as
// "presenter.theme". The settings service converts them to typed values.
type ConfigStore interface {
	// Get returns the raw value stored under key and whether it exists.
	Get(key string) (any, bool)

	// GetString returns the value under key, or "" when it is absent or not a string.
	GetString(key string) string

	// GetInt returns the value under key, or 0 when it is absent or not a number.
	GetInt(key string) int

	// GetBool returns the value under key, or false when it is absent or not a bool.
	GetBool(key string) bool

	// GetStringSlice returns the list under key, or nil.
	GetStringSlice(key string) []string

	// Set stores value under key and writes the store through.
	Set(key string, value any) error

	// Save writes the current values.
	Save() error

	// Load rereads the values, discarding unsaved changes.
	Load() error

	// Path describes where the values are kept.
	Path() string
}

package driven

// ConfigStore holds settings as flat dot-separated keys such as
// "history.limit". How they are laid out on disk is up to the adapter.
type ConfigStore interface {
	// Get returns the raw value for key and whether it is set.
	Get(key string) (any, bool)

	// GetString returns the value for key, or "" when unset or not a string.
	GetString(key string) string

	// GetInt returns the value for key, or 0 when unset or not a whole number.
	GetInt(key string) int

	// GetBool returns the value for key, or false when unset or not a bool.
	GetBool(key string) bool

	// Set stores value under key and persists it immediately.
	Set(key string, value any) error

	// Save writes every key to storage.
	Save() error

	// Load replaces the in-memory keys with what storage holds.
	Load() error

	// Path returns where the configuration lives.
	Path() string
}

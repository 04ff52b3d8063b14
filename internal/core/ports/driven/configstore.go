package driven

// ConfigStore provides access to application configuration.
// Configuration is resolved once per session, not per scan.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if not found or not a string.
	GetString(key string) string

	// Set stores a configuration value and persists it.
	Set(key string, value any) error

	// Delete removes a configuration value and persists the change.
	Delete(key string) error
}

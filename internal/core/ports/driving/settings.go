package driving

import "github.com/custodia-labs/gsearch/internal/core/domain"

// SettingsService manages client settings.
type SettingsService interface {
	// Get returns the effective settings: stored values over defaults,
	// with environment overrides applied. Invalid settings are an error.
	Get() (domain.Settings, error)

	// Keys lists the recognised configuration keys.
	Keys() []string

	// Value returns the stored value for key. The boolean is false when unset.
	Value(key string) (string, bool, error)

	// Set parses and persists a value for key.
	Set(key, raw string) error

	// SetAPIKey stores the API key.
	SetAPIKey(apiKey string) error

	// Path returns the location of the backing configuration.
	Path() string
}

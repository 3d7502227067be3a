package domain

import (
	"errors"
	"fmt"
	"time"
)

// BookBackend selects the backend serving Book Search.
type BookBackend string

// Available book backends.
const (
	// BookBackendAJAX uses the AJAX Search endpoint like every other kind.
	BookBackendAJAX BookBackend = "ajax"

	// BookBackendBooks uses the Books API v1.
	BookBackendBooks BookBackend = "books"
)

// IsValid returns true if the backend is recognised.
func (b BookBackend) IsValid() bool {
	return b == BookBackendAJAX || b == BookBackendBooks
}

// String returns the string representation.
func (b BookBackend) String() string {
	return string(b)
}

// HistoryDriver selects where search history is kept.
type HistoryDriver string

// Available history drivers.
const (
	HistoryDriverSQLite HistoryDriver = "sqlite"
	HistoryDriverMemory HistoryDriver = "memory"
)

// IsValid returns true if the driver is recognised.
func (d HistoryDriver) IsValid() bool {
	return d == HistoryDriverSQLite || d == HistoryDriverMemory
}

// Default endpoint settings.
const (
	DefaultBaseURL        = "https://ajax.googleapis.com/ajax/services/search"
	DefaultReferer        = "https://github.com/custodia-labs/gsearch"
	DefaultTimeoutSeconds = 30
)

// APISettings configures the remote endpoint.
type APISettings struct {
	// Key is the API key, optional for the AJAX endpoint.
	Key string

	// BaseURL is the AJAX Search service root.
	BaseURL string

	// Referer identifies the calling site, required by the AJAX endpoint.
	Referer string

	// Language is the host language (hl) for results and Accept-Language.
	Language string

	// UserIP is the end user's IP, forwarded for abuse detection.
	UserIP string

	// TimeoutSeconds bounds a single page request.
	TimeoutSeconds int
}

// Timeout returns the request timeout.
func (a APISettings) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// RateLimitSettings bounds the request rate to a backend.
type RateLimitSettings struct {
	RequestsPerSecond float64
	Burst             int
}

// BackendSettings selects backends per kind.
type BackendSettings struct {
	Book BookBackend
}

// HistorySettings configures search history.
type HistorySettings struct {
	Enabled bool
	Driver  HistoryDriver
}

// Settings holds the complete client configuration.
type Settings struct {
	API       APISettings
	Paging    PageCaps
	RateLimit RateLimitSettings
	Backend   BackendSettings
	History   HistorySettings
}

// DefaultSettings returns settings for the AJAX Search endpoint.
func DefaultSettings() Settings {
	return Settings{
		API: APISettings{
			BaseURL:        DefaultBaseURL,
			Referer:        DefaultReferer,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		Paging: DefaultPageCaps(),
		RateLimit: RateLimitSettings{
			RequestsPerSecond: 5.0,
			Burst:             10,
		},
		Backend: BackendSettings{
			Book: BookBackendAJAX,
		},
		History: HistorySettings{
			Enabled: true,
			Driver:  HistoryDriverSQLite,
		},
	}
}

// Validate checks that the settings are usable.
func (s Settings) Validate() error {
	if s.API.BaseURL == "" {
		return errors.Join(ErrInvalidArgument, errors.New("api.base_url is required"))
	}
	if s.API.TimeoutSeconds < 0 {
		return errors.Join(ErrInvalidArgument, errors.New("api.timeout_seconds must not be negative"))
	}
	if err := s.Paging.Validate(); err != nil {
		return fmt.Errorf("paging: %w", err)
	}
	if s.RateLimit.RequestsPerSecond <= 0 || s.RateLimit.Burst < 1 {
		return errors.Join(ErrInvalidArgument, errors.New("rate limit must be positive"))
	}
	if !s.Backend.Book.IsValid() {
		return errors.Join(ErrUnsupportedType, fmt.Errorf("book backend %q", s.Backend.Book))
	}
	if !s.History.Driver.IsValid() {
		return errors.Join(ErrUnsupportedType, fmt.Errorf("history driver %q", s.History.Driver))
	}
	return nil
}

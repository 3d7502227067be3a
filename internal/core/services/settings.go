package services

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/custodia-labs/gsearch/internal/core/domain"
	"github.com/custodia-labs/gsearch/internal/core/ports/driven"
	"github.com/custodia-labs/gsearch/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyAPIKey         = "api.key"
	keyAPIBaseURL     = "api.base_url"
	keyAPIReferer     = "api.referer"
	keyAPILanguage    = "api.language"
	keyAPIUserIP      = "api.user_ip"
	keyAPITimeout     = "api.timeout_seconds"
	keyPagingSmall    = "paging.small"
	keyPagingLarge    = "paging.large"
	keyPagingMaxStart = "paging.max_offset"
	keyRateRPS        = "ratelimit.requests_per_second"
	keyRateBurst      = "ratelimit.burst"
	keyBackendBook    = "backend.book"
	keyHistoryEnabled = "history.enabled"
	keyHistoryDriver  = "history.driver"
)

// Environment variables overriding the stored configuration.
//
//nolint:gosec // G101: These are variable names, not actual credentials.
const (
	EnvAPIKey      = "GSEARCH_API_KEY"
	EnvBaseURL     = "GSEARCH_BASE_URL"
	EnvBookBackend = "GSEARCH_BOOK_BACKEND"
)

type valueKind int

const (
	kindString valueKind = iota
	kindInt
	kindFloat
	kindBool
)

var settingKinds = map[string]valueKind{
	keyAPIKey:         kindString,
	keyAPIBaseURL:     kindString,
	keyAPIReferer:     kindString,
	keyAPILanguage:    kindString,
	keyAPIUserIP:      kindString,
	keyAPITimeout:     kindInt,
	keyPagingSmall:    kindInt,
	keyPagingLarge:    kindInt,
	keyPagingMaxStart: kindInt,
	keyRateRPS:        kindFloat,
	keyRateBurst:      kindInt,
	keyBackendBook:    kindString,
	keyHistoryEnabled: kindBool,
	keyHistoryDriver:  kindString,
}

// SettingsService builds client settings from the config store and the environment.
type SettingsService struct {
	configStore driven.ConfigStore
	lookupEnv   func(string) (string, bool)
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		lookupEnv:   os.LookupEnv,
	}
}

// Get returns the stored settings over the defaults, with environment overrides applied.
func (s *SettingsService) Get() (domain.Settings, error) {
	settings := domain.DefaultSettings()

	s.readString(keyAPIKey, &settings.API.Key)
	s.readString(keyAPIBaseURL, &settings.API.BaseURL)
	s.readString(keyAPIReferer, &settings.API.Referer)
	s.readString(keyAPILanguage, &settings.API.Language)
	s.readString(keyAPIUserIP, &settings.API.UserIP)
	s.readInt(keyAPITimeout, &settings.API.TimeoutSeconds)
	s.readInt(keyPagingSmall, &settings.Paging.Small)
	s.readInt(keyPagingLarge, &settings.Paging.Large)
	s.readInt(keyPagingMaxStart, &settings.Paging.MaxOffset)
	if _, ok := s.configStore.Get(keyRateRPS); ok {
		settings.RateLimit.RequestsPerSecond = s.configStore.GetFloat(keyRateRPS)
	}
	s.readInt(keyRateBurst, &settings.RateLimit.Burst)
	if v, ok := s.configStore.Get(keyBackendBook); ok {
		if str, isStr := v.(string); isStr {
			settings.Backend.Book = domain.BookBackend(str)
		}
	}
	if _, ok := s.configStore.Get(keyHistoryEnabled); ok {
		settings.History.Enabled = s.configStore.GetBool(keyHistoryEnabled)
	}
	if v, ok := s.configStore.Get(keyHistoryDriver); ok {
		if str, isStr := v.(string); isStr {
			settings.History.Driver = domain.HistoryDriver(str)
		}
	}

	if v, ok := s.lookupEnv(EnvAPIKey); ok && v != "" {
		settings.API.Key = v
	}
	if v, ok := s.lookupEnv(EnvBaseURL); ok && v != "" {
		settings.API.BaseURL = v
	}
	if v, ok := s.lookupEnv(EnvBookBackend); ok && v != "" {
		settings.Backend.Book = domain.BookBackend(v)
	}

	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("invalid settings: %w", err)
	}
	return settings, nil
}

// Keys lists the recognised configuration keys in sorted order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, 0, len(settingKinds))
	for k := range settingKinds {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Value returns the stored value for key formatted as text.
// The boolean is false when the key has never been set.
func (s *SettingsService) Value(key string) (string, bool, error) {
	if _, known := settingKinds[key]; !known {
		return "", false, unknownKey(key)
	}
	v, ok := s.configStore.Get(key)
	if !ok {
		return "", false, nil
	}
	return fmt.Sprint(v), true, nil
}

// Set parses raw according to the key's type and persists it.
func (s *SettingsService) Set(key, raw string) error {
	kind, known := settingKinds[key]
	if !known {
		return unknownKey(key)
	}
	raw = strings.TrimSpace(raw)

	var value any
	switch kind {
	case kindInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return errors.Join(domain.ErrInvalidArgument, fmt.Errorf("%s: %q is not an integer", key, raw))
		}
		if n < 0 {
			return errors.Join(domain.ErrInvalidArgument, fmt.Errorf("%s must not be negative", key))
		}
		value = n
	case kindFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || f <= 0 {
			return errors.Join(domain.ErrInvalidArgument, fmt.Errorf("%s: %q is not a positive number", key, raw))
		}
		value = f
	case kindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return errors.Join(domain.ErrInvalidArgument, fmt.Errorf("%s: %q is not a boolean", key, raw))
		}
		value = b
	default:
		if err := validateString(key, raw); err != nil {
			return err
		}
		value = raw
	}

	if err := s.configStore.Set(key, value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// SetAPIKey stores the API key.
func (s *SettingsService) SetAPIKey(apiKey string) error {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return errors.Join(domain.ErrInvalidArgument, errors.New("API key is empty"))
	}
	if err := s.configStore.Set(keyAPIKey, apiKey); err != nil {
		return fmt.Errorf("save api key: %w", err)
	}
	return nil
}

// Path returns the location of the backing configuration.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func (s *SettingsService) readString(key string, dst *string) {
	if v, ok := s.configStore.Get(key); ok {
		if str, isStr := v.(string); isStr {
			*dst = str
		}
	}
}

func (s *SettingsService) readInt(key string, dst *int) {
	if _, ok := s.configStore.Get(key); ok {
		*dst = s.configStore.GetInt(key)
	}
}

func validateString(key, raw string) error {
	switch key {
	case keyBackendBook:
		if !domain.BookBackend(raw).IsValid() {
			return errors.Join(domain.ErrUnsupportedType, fmt.Errorf("book backend %q", raw))
		}
	case keyHistoryDriver:
		if !domain.HistoryDriver(raw).IsValid() {
			return errors.Join(domain.ErrUnsupportedType, fmt.Errorf("history driver %q", raw))
		}
	case keyAPIBaseURL:
		if raw == "" {
			return errors.Join(domain.ErrInvalidArgument, errors.New("api.base_url is required"))
		}
	}
	return nil
}

func unknownKey(key string) error {
	return errors.Join(domain.ErrInvalidArgument, fmt.Errorf("unknown config key %q", key))
}

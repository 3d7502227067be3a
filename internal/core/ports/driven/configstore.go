package driven

// ConfigStore holds flat, dot-separated configuration keys such as
// "paging.large" or "backend.book".
//
// The typed getters return the zero value when a key is absent or holds
// a value of another type. GetInt truncates floats and GetFloat widens
// integers, since TOML decoding yields int64 or float64 depending on how
// the user wrote the number.
type ConfigStore interface {
	Get(key string) (any, bool)
	GetString(key string) string
	GetInt(key string) int
	GetFloat(key string) float64
	GetBool(key string) bool

	// Set stores value under key and persists the store.
	Set(key string, value any) error

	// Save writes the current values. Load replaces them with what is
	// stored; a store that does not exist yet loads as empty.
	Save() error
	Load() error

	// Path is where the values are persisted. In-memory stores return
	// ":memory:".
	Path() string
}

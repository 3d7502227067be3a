package domain

// SortOrder selects result ordering.
type SortOrder string

// Sort orders.
const (
	// SortByRelevance is the service default.
	SortByRelevance SortOrder = ""

	// SortByDate orders newest first.
	SortByDate SortOrder = "date"
)

// IsValid returns true if the order is recognised.
func (o SortOrder) IsValid() bool {
	return o == SortByRelevance || o == SortByDate
}

// SafeLevel is the safe search filtering level.
type SafeLevel string

// Safe search levels.
const (
	SafeDefault  SafeLevel = ""
	SafeActive   SafeLevel = "active"
	SafeModerate SafeLevel = "moderate"
	SafeOff      SafeLevel = "off"
)

// IsValid returns true if the level is recognised.
func (l SafeLevel) IsValid() bool {
	switch l {
	case SafeDefault, SafeActive, SafeModerate, SafeOff:
		return true
	default:
		return false
	}
}

// BookOptions filters Book Search.
type BookOptions struct {
	// FullViewOnly restricts results to full view books.
	FullViewOnly bool

	// Library restricts results to a user-defined library.
	Library string
}

// NewsOptions filters News Search.
type NewsOptions struct {
	// SortBy orders by relevance or date.
	SortBy SortOrder

	// Edition selects a regional edition (e.g. "uk").
	Edition string

	// Topic restricts to a topic code (e.g. "h" headlines, "t" sci/tech).
	Topic string

	// Location restricts to stories about a place.
	Location string
}

// VideoOptions filters Video Search.
type VideoOptions struct {
	// SortBy orders by relevance or date.
	SortBy SortOrder
}

// WebOptions filters Web Search.
type WebOptions struct {
	SafeSearch SafeLevel

	// Language restricts results to a language (e.g. "lang_en").
	Language string

	// Site restricts results to one site.
	Site string
}

// ImageOptions filters Image Search.
type ImageOptions struct {
	SafeSearch SafeLevel

	// Size is one of icon, small, medium, large, xlarge, xxlarge, huge.
	Size string

	// Color is one of mono, gray, color.
	Color string

	// Type is one of face, photo, clipart, lineart.
	Type string

	// FileType restricts by extension (jpg, png, gif, bmp).
	FileType string

	// Site restricts results to one site.
	Site string
}

// LocalOptions filters Local Search.
type LocalOptions struct {
	// Center is the "lat,lng" point results are biased towards.
	Center string

	// ResultType is one of blended, kmlonly, localonly.
	ResultType string
}

// PatentOptions filters Patent Search.
type PatentOptions struct {
	// SortBy orders by relevance or date.
	SortBy SortOrder

	// Status restricts to issued patents or filed applications.
	Status PatentStatus
}

package domain

import "strings"

// Kind identifies a search service.
type Kind string

// Available search kinds.
const (
	KindBook   Kind = "book"
	KindNews   Kind = "news"
	KindVideo  Kind = "video"
	KindWeb    Kind = "web"
	KindImage  Kind = "image"
	KindLocal  Kind = "local"
	KindPatent Kind = "patent"
)

// AllKinds returns every supported kind in display order.
func AllKinds() []Kind {
	return []Kind{KindWeb, KindNews, KindBook, KindVideo, KindImage, KindLocal, KindPatent}
}

// ParseKind parses a kind name case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", ErrUnsupportedType
	}
	return k, nil
}

// IsValid returns true if the kind is recognised.
func (k Kind) IsValid() bool {
	switch k {
	case KindBook, KindNews, KindVideo, KindWeb, KindImage, KindLocal, KindPatent:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k Kind) String() string {
	return string(k)
}

// Description returns a human-readable description of the kind.
func (k Kind) Description() string {
	switch k {
	case KindBook:
		return "Book Search"
	case KindNews:
		return "News Search"
	case KindVideo:
		return "Video Search"
	case KindWeb:
		return "Web Search"
	case KindImage:
		return "Image Search"
	case KindLocal:
		return "Local Search"
	case KindPatent:
		return "Patent Search"
	default:
		return "Unknown"
	}
}

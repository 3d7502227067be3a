package domain

import (
	"html"
	"regexp"
	"strings"
	"sync"
)

// plainText converts formatted wire text to plain text.
// It is a variable so tests can count invocations.
var plainText = StripMarkup

// FormattedText holds a wire string that may carry simple markup
// (<b>, <i>) and HTML entities. The plain form is decoded on first
// access and cached; copies share the cache.
type FormattedText struct {
	raw   string
	plain func() string
}

// NewFormattedText wraps a raw wire string.
func NewFormattedText(raw string) FormattedText {
	return FormattedText{
		raw:   raw,
		plain: sync.OnceValue(func() string { return plainText(raw) }),
	}
}

// Raw returns the text exactly as received.
func (t FormattedText) Raw() string {
	return t.raw
}

// Plain returns the text with markup removed and entities decoded.
func (t FormattedText) Plain() string {
	if t.plain == nil {
		return ""
	}
	return t.plain()
}

// IsEmpty reports whether no text was received.
func (t FormattedText) IsEmpty() bool {
	return t.raw == ""
}

// String returns the plain text.
func (t FormattedText) String() string {
	return t.Plain()
}

var (
	markupTags  = regexp.MustCompile(`<[^>]+>`)
	breakTags   = regexp.MustCompile(`(?i)<br\s*/?>`)
	multiSpaces = regexp.MustCompile(`\s+`)
)

// StripMarkup removes HTML tags, decodes entities and collapses whitespace.
func StripMarkup(s string) string {
	if s == "" {
		return ""
	}

	s = breakTags.ReplaceAllString(s, " ")
	s = markupTags.ReplaceAllString(s, "")

	// Entities are decoded after tag removal so escaped markup stays literal.
	s = html.UnescapeString(s)
	s = strings.ReplaceAll(s, "\u00a0", " ")

	return strings.TrimSpace(multiSpaces.ReplaceAllString(s, " "))
}

package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Item is the read-only view shared by every search result.
type Item interface {
	// Kind reports which search service produced the item.
	Kind() Kind

	// ID returns a stable identifier for the item.
	ID() string

	// Title returns the plain-text title.
	Title() string

	// URL returns the unescaped result URL.
	URL() string
}

// Compile-time checks.
var (
	_ Item = (*Book)(nil)
	_ Item = (*News)(nil)
	_ Item = (*Video)(nil)
	_ Item = (*Web)(nil)
	_ Item = (*Image)(nil)
	_ Item = (*Local)(nil)
	_ Item = (*Patent)(nil)
)

// ItemsOf converts a typed result slice to a slice of Item.
func ItemsOf[T Item](results []T) []Item {
	items := make([]Item, len(results))
	for i, r := range results {
		items[i] = r
	}
	return items
}

// Summary returns a one-line plain-text description of an item for listings.
func Summary(item Item) string {
	switch v := item.(type) {
	case *Book:
		parts := nonEmpty(v.Authors(), v.Publisher())
		if v.PublishedYear() > 0 {
			parts = append(parts, fmt.Sprint(v.PublishedYear()))
		}
		if v.PageCount() > 0 {
			parts = append(parts, fmt.Sprintf("%d pages", v.PageCount()))
		}
		return strings.Join(parts, " · ")
	case *News:
		parts := nonEmpty(v.Publisher(), v.Location())
		if !v.PublishedDate().IsZero() {
			parts = append(parts, v.PublishedDate().Format("2006-01-02"))
		}
		return strings.Join(parts, " · ")
	case *Video:
		parts := nonEmpty(v.Publisher(), v.Author())
		if v.Duration() > 0 {
			parts = append(parts, v.Duration().String())
		}
		return strings.Join(parts, " · ")
	case *Web:
		return v.Content()
	case *Image:
		if v.Width() > 0 && v.Height() > 0 {
			return fmt.Sprintf("%dx%d %s", v.Width(), v.Height(), v.VisibleURL())
		}
		return v.VisibleURL()
	case *Local:
		return v.Address()
	case *Patent:
		return strings.Join(nonEmpty(v.PatentNumber(), string(v.Status()), v.Assignee()), " · ")
	default:
		return ""
	}
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// decodeWire unmarshals one result payload, reporting failures as
// *DecodeError scoped to the result kind.
func decodeWire(kind Kind, data []byte, wire any) error {
	if err := json.Unmarshal(data, wire); err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			return fieldError(string(kind), de)
		}
		return &DecodeError{Field: string(kind), Err: err}
	}
	return nil
}

// preferNoFormatting picks the wire's unformatted variant when present.
func preferNoFormatting(formatted, noFormatting string) FormattedText {
	if noFormatting != "" {
		return NewFormattedText(noFormatting)
	}
	return NewFormattedText(formatted)
}

package domain

import "errors"

// ResultSize is the endpoint's per-call result tier.
type ResultSize string

// Available result tiers.
const (
	// ResultSizeSmall asks for a small page (4 results on the AJAX endpoint).
	ResultSizeSmall ResultSize = "small"

	// ResultSizeLarge asks for a large page (8 results on the AJAX endpoint).
	ResultSizeLarge ResultSize = "large"
)

// IsValid returns true if the tier is recognised.
func (s ResultSize) IsValid() bool {
	return s == ResultSizeSmall || s == ResultSizeLarge
}

// String returns the wire representation.
func (s ResultSize) String() string {
	return string(s)
}

// Default page caps of the AJAX Search endpoint.
const (
	DefaultSmallCap  = 4
	DefaultLargeCap  = 8
	DefaultMaxOffset = 56
)

// PageCaps describes how many results the endpoint returns per tier.
// The numbers belong to a deployment, so they are configuration.
type PageCaps struct {
	// Small is the result cap of a ResultSizeSmall page.
	Small int

	// Large is the result cap of a ResultSizeLarge page.
	Large int

	// MaxOffset is the largest start offset the endpoint accepts.
	// Zero means unlimited.
	MaxOffset int
}

// DefaultPageCaps returns the AJAX Search endpoint caps.
func DefaultPageCaps() PageCaps {
	return PageCaps{
		Small:     DefaultSmallCap,
		Large:     DefaultLargeCap,
		MaxOffset: DefaultMaxOffset,
	}
}

// Validate checks that the caps are usable.
func (c PageCaps) Validate() error {
	if c.Small < 1 {
		return errors.Join(ErrInvalidArgument, errors.New("small page cap must be at least 1"))
	}
	if c.Large < c.Small {
		return errors.Join(ErrInvalidArgument, errors.New("large page cap must not be below small page cap"))
	}
	if c.MaxOffset < 0 {
		return errors.Join(ErrInvalidArgument, errors.New("max offset must not be negative"))
	}
	return nil
}

// TierFor picks the tier for a page when remaining results are still needed.
func (c PageCaps) TierFor(remaining int) ResultSize {
	if remaining > c.Small {
		return ResultSizeLarge
	}
	return ResultSizeSmall
}

// Cap returns the result cap of the given tier.
func (c PageCaps) Cap(size ResultSize) int {
	if size == ResultSizeLarge {
		return c.Large
	}
	return c.Small
}

// PageRequest is what a backend needs to fetch one page.
type PageRequest struct {
	// Keyword is the search query.
	Keyword string

	// Offset is the index of the first result of the page.
	Offset int

	// Size is the requested result tier.
	Size ResultSize
}

// UnknownTotal marks an Envelope without a server estimate.
const UnknownTotal = -1

// Envelope is one decoded page of results.
type Envelope[T any] struct {
	// Items are the page results in server (relevance) order.
	Items []T

	// Offset is the index the page started at.
	Offset int

	// EstimatedTotal is the server's estimated result count,
	// UnknownTotal when it reported none.
	EstimatedTotal int

	// MoreResultsURL links to the full result listing, if provided.
	MoreResultsURL string
}

// HasEstimate reports whether the server sent a total estimate.
func (e Envelope[T]) HasEstimate() bool {
	return e.EstimatedTotal >= 0
}

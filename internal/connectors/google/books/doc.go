// Package books serves Book Search from the Google Books API v1.
//
// It is the replacement for the retired AJAX book endpoint and is selected
// with backend.book = "books". Pages map onto startIndex/maxResults; the
// page size of each tier comes from the configured page caps.
package books

// Package connectors holds the backends that fetch search result pages.
// Each backend implements one or more of the driven fetcher ports.
//
// The google subpackages serve Google's search services: ajax for the
// AJAX Search endpoint (every kind) and books for the Books API.
package connectors

// Package domain defines the core entities for gsearch.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Item: the read-only view every search result exposes
//   - Book, News, Video, Web, Image, Local, Patent: per-kind result models
//   - FormattedText: raw wire text with a lazily decoded plain-text form
//   - Envelope: one decoded page plus the server's cursor metadata
//   - ResultSize, PageCaps: the endpoint's per-call result tiers
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

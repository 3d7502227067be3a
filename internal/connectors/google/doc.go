// Package google provides shared infrastructure for the Google search backends.
//
// This package contains common utilities used by the ajax and books
// backends including:
//   - Service factories for creating Google API clients
//   - Error mapping from remote failures to domain transport errors (401, 403, 429)
//   - Rate limiting to respect Google API quotas
//
// # Usage
//
// Each backend creates its client through this package:
//
//	svc, err := google.NewBooksService(ctx, google.NewHTTPClient(settings.API.TimeoutSeconds))
//	limiter := google.NewRateLimiterWithConfig(google.ServiceBooks, google.RateLimitFromSettings(google.ServiceBooks, settings.RateLimit))
//
// The AJAX endpoint needs no credentials; an optional API key raises its quota.
package google

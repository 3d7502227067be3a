package google

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/gsearch/internal/core/domain"
)

// ServiceType identifies a Google search backend for rate limiting purposes.
type ServiceType string

const (
	// ServiceAJAX is the AJAX Search JSON endpoint.
	ServiceAJAX ServiceType = "ajax"
	// ServiceBooks is the Books API v1.
	ServiceBooks ServiceType = "books"
)

// RateLimitConfig holds rate limiting configuration for a service.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate limit.
	RequestsPerSecond float64
	// BurstSize is the maximum burst size.
	BurstSize int
}

// DefaultRateLimits provides conservative defaults for each backend.
var DefaultRateLimits = map[ServiceType]RateLimitConfig{
	ServiceAJAX:  {RequestsPerSecond: 5.0, BurstSize: 10},
	ServiceBooks: {RequestsPerSecond: 1.0, BurstSize: 5}, // 1000 requests/day on the free tier
}

// RateLimitFromSettings converts configured limits, falling back to the
// service default when unset.
func RateLimitFromSettings(service ServiceType, s domain.RateLimitSettings) RateLimitConfig {
	if s.RequestsPerSecond <= 0 || s.Burst < 1 {
		if cfg, ok := DefaultRateLimits[service]; ok {
			return cfg
		}
		return RateLimitConfig{RequestsPerSecond: 5.0, BurstSize: 10}
	}
	return RateLimitConfig{RequestsPerSecond: s.RequestsPerSecond, BurstSize: s.Burst}
}

// RateLimiter provides rate limiting for Google API requests.
// It uses a token bucket algorithm with optional backoff for 429 responses.
type RateLimiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	retryAt time.Time
	service ServiceType
}

// NewRateLimiter creates a new rate limiter for the specified service.
func NewRateLimiter(service ServiceType) *RateLimiter {
	return NewRateLimiterWithConfig(service, RateLimitFromSettings(service, domain.RateLimitSettings{}))
}

// NewRateLimiterWithConfig creates a rate limiter for service with custom
// configuration.
func NewRateLimiterWithConfig(service ServiceType, cfg RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
		service: service,
	}
}

// Service returns the service the limiter was created for.
func (r *RateLimiter) Service() ServiceType {
	return r.service
}

// Wait blocks until a request can be made without exceeding the rate limit.
// It also respects any backoff period set by RecordRateLimitError.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	retryAt := r.retryAt
	r.mu.Unlock()

	if time.Now().Before(retryAt) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(retryAt)):
		}
	}

	return r.limiter.Wait(ctx)
}

// RecordRateLimitError sets a backoff period after a 429 response.
// A non-positive retryAfterSeconds backs off for 60 seconds.
func (r *RateLimiter) RecordRateLimitError(retryAfterSeconds int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if retryAfterSeconds <= 0 {
		retryAfterSeconds = 60
	}

	r.retryAt = time.Now().Add(time.Duration(retryAfterSeconds) * time.Second)
}

// Allow checks if a request can be made immediately without blocking.
func (r *RateLimiter) Allow() bool {
	r.mu.Lock()
	retryAt := r.retryAt
	r.mu.Unlock()

	if time.Now().Before(retryAt) {
		return false
	}

	return r.limiter.Allow()
}

package google

import (
	"errors"
	"net/http"

	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/gsearch/internal/core/domain"
)

// IsUnauthorized returns true if the error indicates a rejected API key.
func IsUnauthorized(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized) || hasCode(err, http.StatusUnauthorized)
}

// IsForbidden returns true if the error indicates the key lacks access.
func IsForbidden(err error) bool {
	return errors.Is(err, domain.ErrForbidden) || hasCode(err, http.StatusForbidden)
}

// IsRateLimited returns true if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	return errors.Is(err, domain.ErrRateLimited) || hasCode(err, http.StatusTooManyRequests)
}

// KeyHint returns advice for an error caused by the API key, or "" when
// the key is not at fault.
func KeyHint(err error) string {
	switch {
	case IsUnauthorized(err):
		return "the API key was rejected; store a valid one with 'gsearch config set-key'"
	case IsForbidden(err):
		return "the API key may not call this service; enable the API for its project or lift its restrictions"
	default:
		return ""
	}
}

func hasCode(err error, code int) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == code
	}
	var terr *domain.TransportError
	if errors.As(err, &terr) {
		return terr.StatusCode == code
	}
	return false
}

// StatusError maps a remote status code to the matching domain sentinel.
// Codes without a dedicated sentinel return nil.
func StatusError(code int) error {
	switch code {
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusTooManyRequests:
		return domain.ErrRateLimited
	default:
		return nil
	}
}

// WrapError converts a Google API client error to a *domain.TransportError
// naming backend. Errors already classified by the domain pass through.
func WrapError(backend string, err error) error {
	if err == nil {
		return nil
	}

	var terr *domain.TransportError
	var derr *domain.DecodeError
	if errors.As(err, &terr) || errors.As(err, &derr) {
		return err
	}

	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return &domain.TransportError{Backend: backend, Err: err}
	}

	out := &domain.TransportError{
		Backend:    backend,
		StatusCode: gerr.Code,
		Details:    gerr.Message,
		Err:        err,
	}
	if sentinel := StatusError(gerr.Code); sentinel != nil {
		out.Err = errors.Join(sentinel, err)
	}
	return out
}

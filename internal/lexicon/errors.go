package lexicon

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoProviders is returned by a Chain that has no providers configured.
var ErrNoProviders = errors.New("no lexical providers configured")

// ErrNotFound indicates the provider has no entry for the word.
type ErrNotFound struct {
	Word string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("no entry for %q", e.Word)
}

// ErrRateLimit indicates the provider rejected the request with 429.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down, unreachable or
// answered with an unexpected status.
type ErrProviderUnavailable struct {
	Provider string
	Err      error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s unavailable: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s unavailable", e.Provider)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the provider answered with a body that
// could not be decoded into a Result.
type ErrInvalidResponse struct {
	Provider string
	Err      error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid %s response: %v", e.Provider, e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// APIError is returned by Chain.Lookup when every provider failed.
// Err is the last provider failure; Attempts holds every failure in
// priority order.
type APIError struct {
	Word      string
	Attribute Attribute
	Attempts  []error
	Err       error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("all %d lexical providers failed to resolve %s for %q: %v",
		len(e.Attempts), e.Attribute, e.Word, e.Err)
}

func (e *APIError) Unwrap() error { return e.Err }

// IsAPIError reports whether err is, or wraps, an APIError.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

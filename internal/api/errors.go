package api

import (
	"errors"
	"fmt"
	"time"
)

// Common API errors that can be checked with errors.Is.
var (
	// ErrUnauthorized indicates the application credentials are invalid.
	ErrUnauthorized = errors.New("invalid application credentials")
	// ErrRecipeNotFound indicates the requested recipe does not exist.
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrBadRequest indicates the backend rejected the request as malformed.
	ErrBadRequest = errors.New("malformed request")
	// ErrRateLimited indicates the rate limit has been exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// APIError represents an HTTP error from the Yummly API.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 400:
		return target == ErrBadRequest
	case 401, 403:
		return target == ErrUnauthorized
	case 404:
		return target == ErrRecipeNotFound
	case 409:
		return target == ErrRateLimited
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// NetworkError represents a network-level failure.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// TimeoutError reports that a request timed out on every configured attempt.
type TimeoutError struct {
	Operation string
	Timeout   time.Duration
	Attempts  int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s timed out after %d attempt(s) of %v", e.Operation, e.Attempts, e.Timeout)
}

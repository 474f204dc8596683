package yummly

import (
	"errors"
	"fmt"
	"time"

	"github.com/yummly/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingCredentials is returned when no application ID or key is provided.
	ErrMissingCredentials = errors.New("application credentials are required")

	// ErrEmptyRecipeID is returned when a recipe lookup is attempted with an empty id.
	ErrEmptyRecipeID = errors.New("recipe id is required")

	// ErrRecipeNotFound is returned when no recipe exists for the given id.
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrUnknownMetadata is returned for metadata kinds outside the recognized set.
	ErrUnknownMetadata = errors.New("unknown metadata kind")

	// ErrUnauthorized is returned when the application credentials are invalid.
	ErrUnauthorized = errors.New("invalid application credentials")

	// ErrBadRequest is returned when the backend rejects a request as malformed.
	ErrBadRequest = errors.New("malformed request")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// YummlyError is implemented by all SDK errors.
type YummlyError interface {
	error
	YummlyError() // marker method
}

// APIError represents a non-success HTTP response from the Yummly API.
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

// YummlyError implements the YummlyError interface.
func (e *APIError) YummlyError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 400:
		return target == ErrBadRequest
	case 401, 403:
		return target == ErrUnauthorized
	case 404:
		return target == ErrRecipeNotFound
	case 409, 429:
		// The backend signals rate limiting on both codes.
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

// YummlyError implements the YummlyError interface.
func (e *NetworkError) YummlyError() {}

// TimeoutError reports a request that timed out on the initial attempt and
// on every configured retry.
type TimeoutError struct {
	Operation string
	Timeout   time.Duration
	Attempts  int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s timed out after %d attempt(s) of %v", e.Operation, e.Attempts, e.Timeout)
}

// YummlyError implements the YummlyError interface.
func (e *TimeoutError) YummlyError() {}

// UnknownMetadataError reports a metadata kind outside the recognized set.
type UnknownMetadataError struct {
	Kind string
}

func (e *UnknownMetadataError) Error() string {
	return fmt.Sprintf("unknown metadata kind %q", e.Kind)
}

// Is implements errors.Is for sentinel error matching.
func (e *UnknownMetadataError) Is(target error) bool {
	return target == ErrUnknownMetadata
}

// YummlyError implements the YummlyError interface.
func (e *UnknownMetadataError) YummlyError() {}

// wrapError converts internal API errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
			URL:        apiErr.URL,
		}
	}

	var timeoutErr *api.TimeoutError
	if errors.As(err, &timeoutErr) {
		return &TimeoutError{
			Operation: timeoutErr.Operation,
			Timeout:   timeoutErr.Timeout,
			Attempts:  timeoutErr.Attempts,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err: netErr.Err,
			URL: netErr.URL,
		}
	}

	return err
}

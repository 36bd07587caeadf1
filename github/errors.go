package github

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrNotFound indicates the requested resource does not exist
	ErrNotFound = errors.New("resource not found")
	// ErrRateLimited indicates the API rate limit was exceeded
	ErrRateLimited = errors.New("rate limit exceeded, set an API token to raise the limit")
	// ErrUnauthorized indicates authentication failure
	ErrUnauthorized = errors.New("unauthorized: invalid API token")
	// ErrInvalidSort indicates a sort field outside the permitted set
	ErrInvalidSort = errors.New("invalid sort field")
)

// APIError represents a GitHub API error response that does not map to
// one of the sentinel errors above.
type APIError struct {
	StatusCode int
	Endpoint   string
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("github API error: status %d on %s: %s", e.StatusCode, e.Endpoint, e.Body)
}

// IsServerError checks if the error was caused by an upstream 5xx response
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}

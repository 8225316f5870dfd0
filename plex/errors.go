package plex

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrNoTVSections indicates the server has no show-type library sections
	ErrNoTVSections = errors.New("no TV sections found on the Plex server")
	// ErrTokenRequired indicates no token was supplied and none could be prompted
	ErrTokenRequired = errors.New("plex token is required")
)

// APIError represents a non-2xx response from the Plex server
type APIError struct {
	StatusCode int
	URL        string
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("plex API error: status %d from %s", e.StatusCode, e.URL)
}

// IsUnauthorized checks if the error indicates a bad or missing token
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsNotFound checks if the error indicates a missing resource, such as
// an unknown section key
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

package dim

import (
	"errors"
	"fmt"
)

// Common errors returned by the Dim client.
var (
	// ErrMissingURL indicates no server URL was supplied.
	ErrMissingURL = errors.New("dim server URL is required")
	// ErrMissingCredentials indicates a missing username or password.
	ErrMissingCredentials = errors.New("dim username and password are required")
	// ErrAuthFailed indicates the login endpoint rejected the credentials.
	ErrAuthFailed = errors.New("authentication with Dim failed")
	// ErrInvalidMediaType indicates a media type outside movie/tv.
	ErrInvalidMediaType = errors.New(`media type must be "movie" or "tv"`)
)

// APIError represents a non-success response from the Dim API. Clients only
// see it when strict errors are enabled; in the compatible mode non-success
// responses degrade to empty results.
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("dim API error: status %d: %s", e.StatusCode, e.Body)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

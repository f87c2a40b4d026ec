package delivery

import "fmt"

// APIError is a non-2xx response from the delivery provider. Status code
// and body are preserved for diagnosis.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

// Error returns the error message
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: provider returned %d: %s", e.Op, e.StatusCode, e.Body)
}

// AuthError means the stored credentials are no longer usable and the
// refresh attempt failed too. This is terminal: the agent has to
// re-authorize, callers must not retry.
type AuthError struct {
	ProfileID string
	Err       error
}

// Error returns the error message
func (e *AuthError) Error() string {
	return fmt.Sprintf("delivery auth expired for profile %s: %v", e.ProfileID, e.Err)
}

// Unwrap returns the underlying error
func (e *AuthError) Unwrap() error { return e.Err }

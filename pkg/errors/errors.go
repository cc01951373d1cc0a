package errors

import "fmt"

// HTTPError carries an HTTP status code alongside a user-facing message.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// StatusCode returns the HTTP status code for the error, or the fallback
// when the error is not an HTTPError.
func StatusCode(err error, fallback int) int {
	if httpErr, ok := err.(*HTTPError); ok {
		return httpErr.Code
	}
	return fallback
}

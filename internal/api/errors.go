package api

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx backend response. ErrorCode/Message come from
// the response envelope when the backend bothered to fill them.
type APIError struct {
	StatusCode int
	ErrorCode  int
	Message    string
	Method     string
	Path       string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: HTTP %d", e.Method, e.Path, e.StatusCode)
}

// IsNotFound reports whether err is a backend 404. Cascade re-runs hit
// this for children deleted by an earlier, partially-failed pass.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err is a backend 401.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

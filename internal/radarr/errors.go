package radarr

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the radarr package.
var (
	// ErrServerUnavailable is returned when the server cannot be reached.
	ErrServerUnavailable = errors.New("radarr unavailable")

	// ErrInvalidAPIKey is returned when the server rejects the API key.
	ErrInvalidAPIKey = errors.New("invalid api key")

	// ErrUnexpectedStatus is returned for any other non-2xx response.
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// StatusError describes a non-2xx response from the server.
type StatusError struct {
	Method     string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s movie: server returned %d %s", e.Method, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Unwrap lets errors.Is match ErrInvalidAPIKey for 401/403 and
// ErrUnexpectedStatus otherwise.
func (e *StatusError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden {
		return ErrInvalidAPIKey
	}
	return ErrUnexpectedStatus
}

package dashclient

import (
	"errors"
	"fmt"
)

// Sentinel kinds for client errors.
var (
	ErrRequest = errors.New("dashboard request failed")
	ErrDecode  = errors.New("dashboard response decode failed")
)

// APIError is a non-2xx response carrying the server's error body.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("dashboard api: status %d", e.Status)
	}
	return fmt.Sprintf("dashboard api: status %d: %s: %s", e.Status, e.Code, e.Message)
}

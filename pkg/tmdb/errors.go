package tmdb

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the requested entity doesn't exist in TMDB.
var ErrNotFound = errors.New("not found in catalog")

// APIError is a failed catalog call. HTTP-layer failures carry the upstream
// status code and message; transport failures carry only a generic message
// with the cause wrapped.
type APIError struct {
	StatusCode int    // 0 for transport errors
	Message    string
	cause      error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("tmdb: %s (status %d)", e.Message, e.StatusCode)
	}
	return "tmdb: " + e.Message
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// Is reports 404 responses as ErrNotFound so callers can use errors.Is.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == 404
}

// apiErrorBody is TMDB's error response payload.
type apiErrorBody struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}

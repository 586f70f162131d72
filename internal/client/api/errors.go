package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrSessionExpired marks a 401 response. The transport never reacts to
	// it by itself; the session manager owns the forced-logout policy.
	ErrSessionExpired = errors.New("session expired")

	// ErrUnavailable marks a request that produced no response at all
	// (connection refused, timeout, DNS failure).
	ErrUnavailable = errors.New("server unavailable")
)

// DefaultErrorMessage is used for any failure without a more specific mapping.
const DefaultErrorMessage = "An unexpected error occurred"

// Error is the normalized envelope for every rejected request.
//
// Status is the HTTP status of the failed response, or 500 when no response
// was received. Message is the user-facing text derived from Status. Detail
// carries the backend-supplied "error" field from the response body, when
// present, so forms can surface field-level hints. Err is the underlying
// transport failure, if any.
type Error struct {
	Status  int
	Message string
	Detail  string
	Err     error
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error %d: %s (%s)", e.Status, e.Message, e.Detail)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports sentinel matches so callers can use errors.Is without
// inspecting Status directly.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrSessionExpired:
		return e.Status == http.StatusUnauthorized
	case ErrUnavailable:
		return e.Err != nil
	}
	return false
}

// statusMessage maps an HTTP status to the user-facing envelope message.
// 400 is deliberately kept distinct from 401: a malformed request must not
// read as an expired session.
func statusMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Invalid request."
	case http.StatusUnauthorized:
		return "Session expired. Please login again."
	case http.StatusForbidden:
		return "Access denied. Insufficient permissions."
	case http.StatusNotFound:
		return "Resource not found."
	case http.StatusLocked:
		return "Invalid password."
	default:
		return DefaultErrorMessage
	}
}

// Package lock talks to the external keyless-entry provider that holds the
// authoritative access-code state for doors.
package lock

import (
	"fmt"
	"net/http"

	"keyless-sync/internal/pkg/errs"
)

// Failure taxonomy of the lock service. Callers match with errors.Is; the
// concrete StatusError/ParseError stays wrapped underneath for diagnostics.
var (
	// ErrConfiguration is raised before any network call when base URL or
	// api key are unset. Fatal, never retried.
	ErrConfiguration = errs.New("lock service configuration missing")

	// ErrBadRequest (400) points at a local payload-construction bug.
	ErrBadRequest = errs.New("lock service rejected request")

	// ErrPermission (403) means the api key was refused.
	ErrPermission = errs.New("lock service permission denied")

	// ErrNotFound (404) is an expected signal in most flows.
	ErrNotFound = errs.New("lock resource not found")

	// ErrConflict (409) means the remote already holds this id.
	ErrConflict = errs.New("lock resource already exists")

	// ErrUnexpectedResponse covers every other non-success status,
	// including 5xx after the retry budget is exhausted.
	ErrUnexpectedResponse = errs.New("unexpected lock service response")

	// ErrMalformedResponse marks a response body that failed parsing.
	ErrMalformedResponse = errs.New("malformed lock service response")

	// ErrNoReservations is raised locally when an aggregate create would
	// carry zero eligible validity windows.
	ErrNoReservations = errs.New("no reservations eligible for an access code")
)

// StatusError carries the remote status and body for diagnostics.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("lock service responded %d", e.Status)
	}
	return fmt.Sprintf("lock service responded %d: %s", e.Status, e.Body)
}

// statusError maps a non-success response onto the taxonomy.
func statusError(status int, body []byte) error {
	err := &StatusError{Status: status, Body: string(body)}
	switch status {
	case http.StatusBadRequest:
		return errs.Mark(err, ErrBadRequest)
	case http.StatusForbidden:
		return errs.Mark(err, ErrPermission)
	case http.StatusNotFound:
		return errs.Mark(err, ErrNotFound)
	case http.StatusConflict:
		return errs.Mark(err, ErrConflict)
	default:
		return errs.Mark(err, ErrUnexpectedResponse)
	}
}

// ParseError names the response field that failed validation.
type ParseError struct {
	Field  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed lock service response: field %q: %s", e.Field, e.Reason)
}

func parseErr(field, reason string) error {
	return errs.Mark(&ParseError{Field: field, Reason: reason}, ErrMalformedResponse)
}

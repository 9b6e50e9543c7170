// Sentinel errors shared by client layers. Callers should use errors.Is
// to match these values; the API client is the only place raw transport
// and HTTP outcomes are translated into them.
package common

import "errors"

var (
	// Request outcome taxonomy. Every remote call resolves to nil or to
	// exactly one of these.
	ErrNetwork      = errors.New("network failure")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation failed")
	ErrServer       = errors.New("server error")
	ErrUnknown      = errors.New("unknown error")

	// Session-level errors raised before any network call is attempted.
	ErrAuthInProgress   = errors.New("authentication already in progress")
	ErrEmptyCredentials = errors.New("email and password must not be empty")
)

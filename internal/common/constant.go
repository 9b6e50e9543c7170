// Package common contains shared constants and sentinel errors used across
// mailpilot components.
package common

const (
	// AuthHeaderName is the HTTP header carrying the access credential on
	// outbound requests.
	AuthHeaderName = "Authorization"

	// AuthScheme prefixes the credential in AuthHeaderName.
	AuthScheme = "Bearer"

	// RequestIDHeaderName carries a per-request correlation id.
	RequestIDHeaderName = "X-Request-Id"

	// CredentialKey is the well-known key the access credential is stored
	// under in the local metadata table.
	CredentialKey = "access_token"
)

package credentials

import "context"

// Repository is the credential store. Presence of a credential means the
// session is authenticated; absence means anonymous. No expiry is evaluated
// locally — a stale credential is only discovered when the server rejects it.
type Repository interface {
	// Get returns the stored credential, or an empty string if none is stored.
	Get(ctx context.Context) (string, error)

	// Set replaces the stored credential.
	Set(ctx context.Context, token string) error

	// Clear removes the stored credential. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}

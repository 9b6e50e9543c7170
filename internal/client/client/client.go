package client

import (
	"context"

	"github.com/pvukovic/mailpilot/internal/client/models"
)

// Client is the gateway to the backend API, one method per endpoint.
//
// Every method returns nil on success or an error matching exactly one of
// the common.Err* sentinels (use errors.Is). On common.ErrUnauthorized the
// gateway has already cleared the credential store, so the next route-guard
// check sends the user back to the public area. No method retries.
type Client interface {
	// Login exchanges account credentials for an access credential.
	// The returned token is not stored; that is the session's job.
	Login(ctx context.Context, email string, password []byte) (string, error)

	// Register creates a new account. A successful registration does not
	// authenticate the client.
	Register(ctx context.Context, email string, password []byte) error

	// GetAgentSettings fetches the AI agent configuration of the account.
	GetAgentSettings(ctx context.Context) (*models.AgentSettings, error)

	// SaveAgentSettings writes the agent configuration back. A non-nil file
	// switches the whole request to multipart encoding.
	SaveAgentSettings(ctx context.Context, settings models.AgentSettings, file *models.TrainingFile) error

	// FetchEmail asks the backend to fetch the latest email and returns its
	// raw content.
	FetchEmail(ctx context.Context) (string, error)

	// SummarizeEmail returns an AI-generated summary of the given content.
	SummarizeEmail(ctx context.Context, content string) (string, error)

	// SendEmail sends the summary out through the backend.
	SendEmail(ctx context.Context, summary string) error

	// Ping checks server liveness.
	Ping(ctx context.Context) error

	// Close releases underlying transport resources.
	Close() error
}

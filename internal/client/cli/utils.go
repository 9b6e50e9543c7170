package cli

import (
	"errors"

	"github.com/pvukovic/mailpilot/internal/client/panels"
	"github.com/pvukovic/mailpilot/internal/common"
)

// friendlyError turns a sentinel from the lower layers into a message fit
// for the terminal.
func friendlyError(err error) string {
	switch {
	case errors.Is(err, common.ErrUnauthorized):
		return "Not authorized. Please log in again."
	case errors.Is(err, common.ErrNetwork):
		return "Server unreachable. Check your connection and try again."
	case errors.Is(err, common.ErrValidation):
		return "The server rejected the request. Check your input."
	case errors.Is(err, common.ErrServer):
		return "The server ran into a problem. Try again later."
	case errors.Is(err, common.ErrAuthInProgress):
		return "Another login or registration is still running."
	case errors.Is(err, common.ErrEmptyCredentials):
		return "Email and password must not be empty."
	case errors.Is(err, panels.ErrNoContent):
		return "Nothing fetched yet. Run 'fetch' first."
	case errors.Is(err, panels.ErrNoSummary):
		return "No summary yet. Run 'summarize' first."
	default:
		return "Something went wrong: " + err.Error()
	}
}

// truncate shortens s for terminal display.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}

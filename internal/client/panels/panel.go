// Package panels implements the request-lifecycle state machines behind the
// dashboard views. Each panel owns one remote resource, drives its
// fetch/edit/save cycle through the API client, and exposes the lifecycle
// status so any front end can render it.
//
// Lifecycle: Unloaded → Loading → Loaded, or Loading → Error. A refresh
// from Loaded or Error re-enters Loading; a load issued while one is
// already in flight is a no-op. A failed refresh never blanks previously
// loaded data, and a failed save never discards local edits.
//
// Every request a panel issues carries a monotonic sequence number; a
// completion older than the newest issued request for that panel is
// discarded, so a stale response cannot overwrite fresher state.
package panels

import "errors"

// Status is the request-lifecycle state of a panel's resource.
type Status int

const (
	StatusUnloaded Status = iota
	StatusLoading
	StatusLoaded
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusUnloaded:
		return "unloaded"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

var (
	// ErrNoContent is returned when a pipeline step needs fetched email
	// content that is not there yet.
	ErrNoContent = errors.New("no email content fetched")

	// ErrNoSummary is returned when sending is attempted before a summary
	// has been generated.
	ErrNoSummary = errors.New("no summary generated")
)

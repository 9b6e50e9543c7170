// Package credentials persists the access credential of the current client.
// At most one credential is live at any time; it is stored under a single
// well-known key in the local metadata table and survives restarts.
package credentials

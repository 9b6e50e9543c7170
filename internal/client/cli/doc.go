// Package cli implements the interactive terminal shell of the mailpilot
// client. It is a thin presentation layer: every command handler prompts
// for input and delegates to the session service, the route guard, or a
// resource panel; no command talks to the network directly.
package cli

// Package config loads client configuration from (in increasing priority)
// built-in defaults, an optional JSON file, environment variables, and
// command-line flags.
package config

// Package migrations embeds the sqlite schema migrations applied by goose
// when the client database is opened.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

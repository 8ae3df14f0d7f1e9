// Package postgresmigrations embeds the Postgres schema migrations for the
// key-value store.
package postgresmigrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

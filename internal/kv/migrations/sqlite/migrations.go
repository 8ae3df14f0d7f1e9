// Package sqlitemigrations embeds the SQLite schema migrations for the
// key-value store.
package sqlitemigrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

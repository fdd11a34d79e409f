// Package migrations embeds the SQL schema migrations.
package migrations

import "embed"

// FS holds the *.up.sql files applied by the store.
//
//go:embed *.sql
var FS embed.FS

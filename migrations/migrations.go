// Package migrations embeds the SQL schema for the content backend. Table
// and column names are an external contract shared with the hosted store.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

package migrations

import "embed"

// FS contains the embedded MySQL schema migrations.
//
//go:embed *.sql
var FS embed.FS

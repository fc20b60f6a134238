package migrations

import "embed"

// FS holds the SQL migrations applied by golang-migrate through the iofs
// source.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the binary expects.
const Version = 1

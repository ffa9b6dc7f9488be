package migrations

import "embed"

// FS embeds the SQL migration files stored in this directory. The
// golang-migrate iofs driver reads them from here when the server applies
// migrations on startup.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version this build of the application expects.
const Version = 1

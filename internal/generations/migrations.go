package generations

import "embed"

// Migrations holds the golang-migrate scripts for the generations table. The
// SQL is portable across postgres and sqlite.
//
//go:embed migrations/*.sql
var Migrations embed.FS

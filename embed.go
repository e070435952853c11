package pelycan

import "embed"

// EmailFS holds the email templates shipped with the binary.
//
//go:embed templates/emails
var EmailFS embed.FS

// MigrationFS holds the SQL schema files applied by `pelycan migrate`.
//
//go:embed migrations/*.sql
var MigrationFS embed.FS

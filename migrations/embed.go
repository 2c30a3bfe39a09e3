// Package migrations holds the goose SQL migrations, embedded so the binary
// and the test helper apply the same files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Package migrations embute os scripts SQL aplicados pelo golang-migrate.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Package migrations embeds the SQL files applied by db.RunMigrations at startup.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS

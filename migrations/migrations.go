// Package migrations embeds the schema for every supported database engine.
package migrations

import "embed"

// FS holds one directory of numbered up/down SQL files per engine.
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

const (
	PostgresDir = "postgres"
	SQLiteDir   = "sqlite"
)

// Package assets embeds the SQL migrations of the datastores.
package assets

import "embed"

const (
	SQLiteMigrationDir   = "migrations/sqlite"
	PostgresMigrationDir = "migrations/postgres"
	MySQLMigrationDir    = "migrations/mysql"
)

//go:embed migrations/*
var EmbedMigrations embed.FS

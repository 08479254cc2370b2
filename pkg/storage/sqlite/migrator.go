package sqlite

import (
	"github.com/pressly/goose/v3"

	"github.com/typedb/typedb-sub018/assets"
	"github.com/typedb/typedb-sub018/pkg/logger"
	"github.com/typedb/typedb-sub018/pkg/storage"
	"github.com/typedb/typedb-sub018/pkg/storage/sqlcommon"
)

// NewMigrationProvider returns the goose migration provider of SQLite datastores.
func NewMigrationProvider(l logger.Logger) *sqlcommon.Migrator {
	return &sqlcommon.Migrator{
		Name:    "sqlite",
		Driver:  "sqlite",
		Dialect: goose.DialectSQLite3,
		Dir:     assets.SQLiteMigrationDir,
		PrepareURI: func(config storage.MigrationConfig) (string, error) {
			return PrepareDSN(config.URI)
		},
		Logger: l,
	}
}

package postgres

import (
	"github.com/pressly/goose/v3"

	"github.com/typedb/typedb-sub018/assets"
	"github.com/typedb/typedb-sub018/pkg/logger"
	"github.com/typedb/typedb-sub018/pkg/storage"
	"github.com/typedb/typedb-sub018/pkg/storage/sqlcommon"
)

// NewMigrationProvider returns the goose migration provider of PostgreSQL datastores.
func NewMigrationProvider(l logger.Logger) *sqlcommon.Migrator {
	return &sqlcommon.Migrator{
		Name:    "postgres",
		Driver:  "pgx",
		Dialect: goose.DialectPostgres,
		Dir:     assets.PostgresMigrationDir,
		PrepareURI: func(config storage.MigrationConfig) (string, error) {
			return withCredentials(config.URI, config.Username, config.Password)
		},
		Logger: l,
	}
}

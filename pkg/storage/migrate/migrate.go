// Package migrate runs the datastore schema migrations of every SQL engine.
package migrate

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/typedb/typedb-sub018/pkg/logger"
	"github.com/typedb/typedb-sub018/pkg/storage"
	"github.com/typedb/typedb-sub018/pkg/storage/mysql"
	"github.com/typedb/typedb-sub018/pkg/storage/postgres"
	"github.com/typedb/typedb-sub018/pkg/storage/sqlite"
)

// MigrationConfig contains the configuration needed for running migrations.
type MigrationConfig = storage.MigrationConfig

// NewRegistry returns a registry of the built-in SQL migration providers.
func NewRegistry(l logger.Logger) *storage.MigratorRegistry {
	return storage.NewMigratorRegistry(
		postgres.NewMigrationProvider(l),
		mysql.NewMigrationProvider(l),
		sqlite.NewMigrationProvider(l),
	)
}

// RunMigrationsWithRegistry migrates the datastore of cfg.Engine with the
// provider registered for it. The memory engine has nothing to migrate.
func RunMigrationsWithRegistry(ctx context.Context, registry *storage.MigratorRegistry, cfg MigrationConfig, l logger.Logger) error {
	if cfg.Engine == "memory" {
		l.Info("no migrations to run for `memory` datastore")
		return nil
	}

	provider, ok := registry.Provider(cfg.Engine)
	if !ok {
		return fmt.Errorf("no migration provider registered for engine '%s', expected one of %s",
			cfg.Engine, strings.Join(registry.Engines(), ", "))
	}

	l.Info("running migrations", zap.String("engine", cfg.Engine), zap.Uint("target_version", cfg.TargetVersion))
	return provider.RunMigrations(ctx, cfg)
}

// RunMigrations migrates the datastore of cfg with the built-in providers.
func RunMigrations(ctx context.Context, cfg MigrationConfig, l logger.Logger) error {
	return RunMigrationsWithRegistry(ctx, NewRegistry(l), cfg, l)
}

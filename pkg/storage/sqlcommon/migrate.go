package sqlcommon

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/cenkalti/backoff/v4"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/typedb/typedb-sub018/assets"
	"github.com/typedb/typedb-sub018/pkg/logger"
	"github.com/typedb/typedb-sub018/pkg/storage"
)

// Migrator runs the embedded goose migrations of one SQL dialect.
type Migrator struct {
	// Name is the datastore engine name.
	Name string
	// Driver is the database/sql driver name.
	Driver  string
	Dialect goose.Dialect
	// Dir is the migration directory within assets.EmbedMigrations.
	Dir string
	// PrepareURI rewrites the configured uri before it is opened.
	PrepareURI func(storage.MigrationConfig) (string, error)
	Logger     logger.Logger
}

func (m *Migrator) open(ctx context.Context, config storage.MigrationConfig) (*sql.DB, *goose.Provider, error) {
	uri := config.URI
	if m.PrepareURI != nil {
		var err error
		if uri, err = m.PrepareURI(config); err != nil {
			return nil, nil, err
		}
	}

	db, err := sql.Open(m.Driver, uri)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s connection: %w", m.Name, err)
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = config.Timeout
	err = backoff.Retry(func() error {
		return db.PingContext(ctx)
	}, backoff.WithContext(policy, ctx))
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("initialize %s connection: %w", m.Name, err)
	}

	migrations, err := fs.Sub(assets.EmbedMigrations, m.Dir)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	provider, err := goose.NewProvider(m.Dialect, db, migrations, goose.WithVerbose(config.Verbose))
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("create goose provider: %w", err)
	}
	return db, provider, nil
}

// RunMigrations see [storage.MigrationProvider].RunMigrations.
func (m *Migrator) RunMigrations(ctx context.Context, config storage.MigrationConfig) error {
	db, provider, err := m.open(ctx, config)
	if err != nil {
		return err
	}
	defer db.Close()

	log := m.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}

	current, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("get %s db version: %w", m.Name, err)
	}
	log.Info("current datastore revision", zap.String("engine", m.Name), zap.Int64("version", current))

	target := int64(config.TargetVersion)
	switch {
	case target == 0:
		_, err = provider.Up(ctx)
	case target < current:
		_, err = provider.DownTo(ctx, target)
	case target > current:
		_, err = provider.UpTo(ctx, target)
	default:
		log.Info("datastore already at target revision", zap.String("engine", m.Name))
		return nil
	}
	if err != nil {
		return fmt.Errorf("run %s migrations: %w", m.Name, err)
	}

	log.Info("migration done", zap.String("engine", m.Name))
	return nil
}

// CurrentVersion see [storage.MigrationProvider].CurrentVersion.
func (m *Migrator) CurrentVersion(ctx context.Context, config storage.MigrationConfig) (int64, error) {
	db, provider, err := m.open(ctx, config)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	return provider.GetDBVersion(ctx)
}

// Engine see [storage.MigrationProvider].Engine.
func (m *Migrator) Engine() string {
	return m.Name
}

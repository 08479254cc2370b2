// Package storage runs throwaway databases for datastore tests.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	"github.com/typedb/typedb-sub018/assets"
)

// DatastoreTestContainer represents a runnable container for testing specific datastore engines.
type DatastoreTestContainer interface {
	// GetConnectionURI returns a connection string to the datastore instance running inside
	// the container.
	GetConnectionURI(includeCredentials bool) string

	// GetDatabaseSchemaVersion returns the last migration applied when the container was created.
	GetDatabaseSchemaVersion() int64

	GetUsername() string
	GetPassword() string
}

type memoryTestContainer struct{}

func (memoryTestContainer) GetConnectionURI(bool) string { return "" }

func (memoryTestContainer) GetDatabaseSchemaVersion() int64 { return 1 }

func (memoryTestContainer) GetUsername() string { return "" }

func (memoryTestContainer) GetPassword() string { return "" }

// RunDatastoreTestContainer constructs and runs a specific DatastoreTestContainer for the provided
// datastore engine, with every migration applied. The resources used by the test engine are
// cleaned up after the test has finished.
func RunDatastoreTestContainer(t testing.TB, engine string) DatastoreTestContainer {
	switch engine {
	case "mysql":
		return NewMySQLTestContainer().RunMySQLTestContainer(t)
	case "postgres":
		return NewPostgresTestContainer().RunPostgresTestContainer(t)
	case "sqlite":
		return NewSqliteTestContainer().RunSqliteTestDatabase(t)
	case "memory":
		return memoryTestContainer{}
	default:
		t.Fatalf("'%s' engine is not supported by RunDatastoreTestContainer", engine)
		return nil
	}
}

// migrateUp waits for the database at uri and applies every migration of dir.
// It returns the resulting schema version.
func migrateUp(t testing.TB, driver string, dialect goose.Dialect, dir, uri string) int64 {
	t.Helper()

	db, err := sql.Open(driver, uri)
	require.NoError(t, err)
	defer db.Close()

	policy := backoff.NewExponentialBackOff(backoff.WithMaxElapsedTime(time.Minute))
	err = backoff.Retry(db.Ping, policy)
	require.NoError(t, err, fmt.Sprintf("ping %s database", driver))

	migrations, err := fs.Sub(assets.EmbedMigrations, dir)
	require.NoError(t, err)

	provider, err := goose.NewProvider(dialect, db, migrations)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = provider.Up(ctx)
	require.NoError(t, err)

	version, err := provider.GetDBVersion(ctx)
	require.NoError(t, err)
	return version
}

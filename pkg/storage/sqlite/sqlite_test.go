package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/typedb/typedb-sub018/pkg/concept"
	"github.com/typedb/typedb-sub018/pkg/id"
	"github.com/typedb/typedb-sub018/pkg/storage"
	"github.com/typedb/typedb-sub018/pkg/storage/sqlcommon"
	"github.com/typedb/typedb-sub018/pkg/storage/test"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"),
	)
}

// migratedDatastore returns a datastore over a fresh migrated database file.
func migratedDatastore(t *testing.T, opts ...sqlcommon.DatastoreOption) *Datastore {
	t.Helper()

	uri := filepath.Join(t.TempDir(), "graphkb.db")
	err := NewMigrationProvider(nil).RunMigrations(context.Background(), storage.MigrationConfig{
		Engine:  "sqlite",
		URI:     uri,
		Timeout: 5 * time.Second,
	})
	require.NoError(t, err)

	ds, err := New(uri, sqlcommon.NewConfig(opts...))
	require.NoError(t, err)
	t.Cleanup(ds.Close)
	return ds
}

func TestSQLiteDatastore(t *testing.T) {
	ds := migratedDatastore(t)

	status, err := ds.IsReady(context.Background())
	require.NoError(t, err)
	require.True(t, status.IsReady)

	test.RunAllTests(t, ds)
}

func TestSQLiteDatastoreNotMigrated(t *testing.T) {
	ds, err := New(filepath.Join(t.TempDir(), "empty.db"), sqlcommon.NewConfig())
	require.NoError(t, err)
	defer ds.Close()

	status, err := ds.IsReady(context.Background())
	require.NoError(t, err)
	require.False(t, status.IsReady)
	require.Contains(t, status.Message, "migrate")
}

func TestSQLiteDatastoreAfterCloseIsNotReady(t *testing.T) {
	ds := migratedDatastore(t)
	ds.Close()

	_, err := ds.IsReady(context.Background())
	require.Error(t, err)
}

func TestSQLiteCommitIsDurable(t *testing.T) {
	ds := migratedDatastore(t, sqlcommon.WithIDGenerator(&id.SequenceGenerator{}))
	ctx := context.Background()

	tx, err := ds.Begin(ctx)
	require.NoError(t, err)
	person, err := tx.PutEntityType(ctx, "person")
	require.NoError(t, err)
	require.Equal(t, concept.ID("V1"), person.ID)
	require.NoError(t, tx.Commit(ctx))

	tx, err = ds.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.PutEntityType(ctx, "animal")
	require.NoError(t, err)
	require.NoError(t, tx.Rollback(ctx))

	tx, err = ds.Begin(ctx)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, tx.Rollback(ctx))
	}()
	got, err := tx.GetSchemaConcept(ctx, "person")
	require.NoError(t, err)
	require.Equal(t, person.ID, got.ID)

	_, err = tx.GetSchemaConcept(ctx, "animal")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPrepareDSN(t *testing.T) {
	tests := map[string]struct {
		uri      string
		expected url.Values
	}{
		`defaults`: {
			uri: "graphkb.db",
			expected: url.Values{
				"_pragma": {"journal_mode(WAL)", "busy_timeout(100)", "foreign_keys(OFF)"},
				"_txlock": {"immediate"},
			},
		},
		`keeps_explicit_settings`: {
			uri: "graphkb.db?_pragma=journal_mode(DELETE)&_pragma=busy_timeout(500)&_txlock=deferred",
			expected: url.Values{
				"_pragma": {"journal_mode(DELETE)", "busy_timeout(500)", "foreign_keys(OFF)"},
				"_txlock": {"deferred"},
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			dsn, err := PrepareDSN(test.uri)
			require.NoError(t, err)

			path, rawQuery, found := strings.Cut(dsn, "?")
			require.True(t, found)
			require.Equal(t, "graphkb.db", path)

			query, err := url.ParseQuery(rawQuery)
			require.NoError(t, err)
			require.Equal(t, test.expected, query)
		})
	}

	t.Run("invalid_query", func(t *testing.T) {
		_, err := PrepareDSN("graphkb.db?%zz")
		require.Error(t, err)
	})
}

func TestHandleSQLError(t *testing.T) {
	boom := errors.New("boom")
	require.ErrorIs(t, HandleSQLError(boom), boom)
	require.ErrorIs(t, HandleSQLError(sql.ErrNoRows), storage.ErrNotFound)
}

func TestDuplicateLabelIsCollision(t *testing.T) {
	ds := migratedDatastore(t)

	_, err := ds.DB().ExecContext(context.Background(),
		"INSERT INTO concepts (id, kind, label, is_abstract) VALUES (?, ?, ?, ?)",
		"V1", concept.KindEntityType.String(), concept.MetaEntity, false)
	require.ErrorIs(t, HandleSQLError(err), storage.ErrCollision)
}

func TestMigrationProvider(t *testing.T) {
	provider := NewMigrationProvider(nil)
	require.Equal(t, "sqlite", provider.Engine())
	require.Implements(t, (*storage.MigrationProvider)(nil), provider)

	t.Run("invalid_path", func(t *testing.T) {
		err := provider.RunMigrations(context.Background(), storage.MigrationConfig{
			URI:     "/invalid/path/that/does/not/exist/db.sqlite",
			Timeout: time.Second,
		})
		require.Error(t, err)
	})

	t.Run("up_and_down", func(t *testing.T) {
		config := storage.MigrationConfig{
			URI:     filepath.Join(t.TempDir(), "migrate.db"),
			Timeout: 5 * time.Second,
		}
		ctx := context.Background()

		require.NoError(t, provider.RunMigrations(ctx, config))
		version, err := provider.CurrentVersion(ctx, config)
		require.NoError(t, err)
		require.Equal(t, int64(1), version)

		// rerunning is a no-op
		require.NoError(t, provider.RunMigrations(ctx, config))

		config.TargetVersion = 1
		require.NoError(t, provider.RunMigrations(ctx, config))
	})
}

package mysql

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/typedb/typedb-sub018/pkg/storage"
	"github.com/typedb/typedb-sub018/pkg/storage/sqlcommon"
	"github.com/typedb/typedb-sub018/pkg/storage/test"
	storagefixtures "github.com/typedb/typedb-sub018/pkg/testfixtures/storage"
)

func TestMySQLDatastore(t *testing.T) {
	testDatastore := storagefixtures.RunDatastoreTestContainer(t, "mysql")

	ds, err := New(testDatastore.GetConnectionURI(true), sqlcommon.NewConfig())
	require.NoError(t, err)
	defer ds.Close()

	test.RunAllTests(t, ds)
}

func TestMySQLConnectionPool(t *testing.T) {
	testDatastore := storagefixtures.RunDatastoreTestContainer(t, "mysql")

	ds, err := New(testDatastore.GetConnectionURI(true), sqlcommon.NewConfig(
		sqlcommon.WithMaxOpenConns(2),
		sqlcommon.WithMaxIdleConns(1),
		sqlcommon.WithConnMaxLifetime(time.Minute),
	))
	require.NoError(t, err)
	defer ds.Close()

	ctx := context.Background()
	first, err := ds.Begin(ctx)
	require.NoError(t, err)
	second, err := ds.Begin(ctx)
	require.NoError(t, err)

	require.Equal(t, 2, ds.DB().Stats().OpenConnections)
	require.NoError(t, first.Rollback(ctx))
	require.NoError(t, second.Rollback(ctx))
	require.LessOrEqual(t, ds.DB().Stats().Idle, 1)
}

func TestWithCredentials(t *testing.T) {
	tests := map[string]struct {
		username string
		password string
		expected string
	}{
		`no_override`: {
			expected: "user:pass@tcp(localhost:3306)/dbname",
		},
		`username_override`: {
			username: "newuser",
			expected: "newuser:pass@tcp(localhost:3306)/dbname",
		},
		`password_override`: {
			password: "newpass",
			expected: "user:newpass@tcp(localhost:3306)/dbname",
		},
		`both_overrides`: {
			username: "newuser",
			password: "newpass",
			expected: "newuser:newpass@tcp(localhost:3306)/dbname",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			uri, err := withCredentials("user:pass@tcp(localhost:3306)/dbname", test.username, test.password)
			require.NoError(t, err)
			require.Equal(t, test.expected, uri)
		})
	}

	t.Run("invalid_uri", func(t *testing.T) {
		_, err := withCredentials("invalid-uri", "", "")
		require.Error(t, err)
	})
}

func TestMigrationProvider(t *testing.T) {
	provider := NewMigrationProvider(nil)
	require.Equal(t, "mysql", provider.Engine())
	require.Implements(t, (*storage.MigrationProvider)(nil), provider)

	_, err := provider.CurrentVersion(context.Background(), storage.MigrationConfig{URI: "invalid-uri"})
	require.ErrorContains(t, err, "parse mysql connection dsn")
}

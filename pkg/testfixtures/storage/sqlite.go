package storage

import (
	"path/filepath"
	"testing"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver.

	"github.com/typedb/typedb-sub018/assets"
)

type sqliteTestContainer struct {
	path    string
	version int64
}

// NewSqliteTestContainer returns an implementation of the DatastoreTestContainer interface
// for SQLite.
func NewSqliteTestContainer() *sqliteTestContainer {
	return &sqliteTestContainer{}
}

// RunSqliteTestDatabase creates a migrated sqlite database file in a
// temporary directory removed with the test.
func (m *sqliteTestContainer) RunSqliteTestDatabase(t testing.TB) DatastoreTestContainer {
	m.path = filepath.Join(t.TempDir(), "database.db")
	m.version = migrateUp(t, "sqlite", goose.DialectSQLite3, assets.SQLiteMigrationDir, m.GetConnectionURI(true))
	return m
}

func (m *sqliteTestContainer) GetDatabaseSchemaVersion() int64 {
	return m.version
}

// GetConnectionURI returns the sqlite connection uri of the database file.
func (m *sqliteTestContainer) GetConnectionURI(bool) string {
	return m.path
}

func (m *sqliteTestContainer) GetUsername() string {
	return ""
}

func (m *sqliteTestContainer) GetPassword() string {
	return ""
}

package storage

import (
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql" // MySQL driver.
	"github.com/pressly/goose/v3"

	"github.com/typedb/typedb-sub018/assets"
)

const mySQLImage = "mysql:8"

type mySQLTestContainer struct {
	addr     string
	version  int64
	username string
	password string
}

// NewMySQLTestContainer returns an implementation of the DatastoreTestContainer interface
// for MySQL.
func NewMySQLTestContainer() *mySQLTestContainer {
	return &mySQLTestContainer{}
}

// RunMySQLTestContainer runs a MySQL container, migrates it, and returns a
// bootstrapped implementation of the DatastoreTestContainer interface wired up for the
// MySQL datastore engine.
func (m *mySQLTestContainer) RunMySQLTestContainer(t testing.TB) DatastoreTestContainer {
	m.addr = runContainer(t, containerSpec{
		image: mySQLImage,
		env: []string{
			"MYSQL_DATABASE=defaultdb",
			"MYSQL_ROOT_PASSWORD=secret",
		},
		port: "3306/tcp",
	})
	m.username = "root"
	m.password = "secret"

	m.version = migrateUp(t, "mysql", goose.DialectMySQL, assets.MySQLMigrationDir, m.GetConnectionURI(true))
	return m
}

func (m *mySQLTestContainer) GetDatabaseSchemaVersion() int64 {
	return m.version
}

// GetConnectionURI returns the mysql connection uri for the running mysql test container.
func (m *mySQLTestContainer) GetConnectionURI(includeCredentials bool) string {
	creds := ""
	if includeCredentials {
		creds = fmt.Sprintf("%s:%s", m.username, m.password)
	}

	return fmt.Sprintf("%s@tcp(%s)/defaultdb?parseTime=true", creds, m.addr)
}

func (m *mySQLTestContainer) GetUsername() string {
	return m.username
}

func (m *mySQLTestContainer) GetPassword() string {
	return m.password
}

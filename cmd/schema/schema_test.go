package schema

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/typedb/typedb-sub018/cmd"
	"github.com/typedb/typedb-sub018/cmd/migrate"
	"github.com/typedb/typedb-sub018/cmd/util"
	"github.com/typedb/typedb-sub018/cmd/write"
	"github.com/typedb/typedb-sub018/internal/mocks"
	"github.com/typedb/typedb-sub018/pkg/concept"
	"github.com/typedb/typedb-sub018/pkg/graql"
	"github.com/typedb/typedb-sub018/pkg/server/commands"
	"github.com/typedb/typedb-sub018/pkg/storage/memory"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"),
	)
}

func decodeEntries(t *testing.T, out []byte) map[string]Entry {
	t.Helper()

	entries := make(map[string]Entry)
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		var e Entry
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &e))
		entries[e.Label] = e
	}
	require.NoError(t, scanner.Err())
	return entries
}

func TestList(t *testing.T) {
	ctx := context.Background()
	ds := memory.New()
	defer ds.Close()

	_, err := commands.NewDefineCommand(ds).Execute(ctx, graql.Define(
		graql.Type("name").Sub(graql.Type("attribute")).DataType(concept.DataTypeString),
		graql.Type("living").Sub(graql.Type("entity")).Abstract(),
		graql.Type("person").Sub(graql.Type("living")).Owns(graql.Type("name")),
	))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, List(ctx, ds, &out))

	entries := decodeEntries(t, out.Bytes())
	for _, label := range []string{"thing", "entity", "relation", "attribute", "role", "rule"} {
		require.Contains(t, entries, label)
	}
	require.Empty(t, entries["thing"].Super)

	require.Equal(t, Entry{Label: "person", Kind: concept.KindEntityType, Super: "living"}, entries["person"])
	require.Equal(t, Entry{Label: "living", Kind: concept.KindEntityType, Super: "entity", Abstract: true}, entries["living"])
	require.Equal(t, concept.KindAttributeType, entries["name"].Kind)
	require.Equal(t, "attribute", entries["name"].Super)
}

func TestListErrors(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	ctx := context.Background()
	failure := errors.New("boom")

	t.Run("begin", func(t *testing.T) {
		ds := mocks.NewMockDatastore(mockController)
		ds.EXPECT().Begin(gomock.Any()).Return(nil, failure)

		err := List(ctx, ds, &bytes.Buffer{})
		require.ErrorIs(t, err, failure)
		require.ErrorContains(t, err, "begin transaction")
	})

	t.Run("read", func(t *testing.T) {
		ds := mocks.NewMockDatastore(mockController)
		tx := mocks.NewMockConceptTx(mockController)
		ds.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().SchemaConcepts(gomock.Any()).Return(nil, failure)
		tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		require.ErrorIs(t, List(ctx, ds, &bytes.Buffer{}), failure)
	})

	t.Run("rollback", func(t *testing.T) {
		ds := mocks.NewMockDatastore(mockController)
		tx := mocks.NewMockConceptTx(mockController)
		ds.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().SchemaConcepts(gomock.Any()).Return(nil, nil)
		tx.EXPECT().Rollback(gomock.Any()).Return(failure)

		err := List(ctx, ds, &bytes.Buffer{})
		require.ErrorIs(t, err, failure)
		require.ErrorContains(t, err, "rollback")
	})
}

func TestSchemaCommandSQLite(t *testing.T) {
	util.PrepareTempConfigDir(t)

	dir := t.TempDir()
	uri := filepath.Join(dir, "graphkb.db")
	datastoreArgs := []string{"--datastore-engine", "sqlite", "--datastore-uri", uri, "--log-level", "none"}

	root := cmd.NewRootCommand()
	root.AddCommand(migrate.NewMigrateCommand())
	root.SetArgs(append([]string{"migrate"}, datastoreArgs...))
	require.NoError(t, root.Execute())

	batchFile := filepath.Join(dir, "batch.yaml")
	require.NoError(t, os.WriteFile(batchFile, []byte(`
queries:
  - define:
      - {label: name, sub: attribute, datatype: string}
      - {label: person, sub: entity, owns: [name], plays: [spouse]}
      - {label: marriage, sub: relation, relates: [spouse]}
`), 0o600))

	root = cmd.NewRootCommand()
	root.AddCommand(write.NewWriteCommand())
	root.SetOut(&bytes.Buffer{})
	root.SetArgs(append([]string{"write", "--file", batchFile}, datastoreArgs...))
	require.NoError(t, root.Execute())

	var out bytes.Buffer
	root = cmd.NewRootCommand()
	root.AddCommand(NewSchemaCommand())
	root.SetOut(&out)
	root.SetArgs(append([]string{"schema"}, datastoreArgs...))
	require.NoError(t, root.Execute())

	entries := decodeEntries(t, out.Bytes())
	require.Equal(t, "entity", entries["person"].Super)
	require.Equal(t, "relation", entries["marriage"].Super)
	require.Equal(t, concept.KindRole, entries["spouse"].Kind)
	require.Equal(t, "role", entries["spouse"].Super)
}

func TestSchemaCommandRequiresMigrations(t *testing.T) {
	util.PrepareTempConfigDir(t)

	root := cmd.NewRootCommand()
	root.AddCommand(NewSchemaCommand())
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{
		"schema",
		"--datastore-engine", "sqlite",
		"--datastore-uri", filepath.Join(t.TempDir(), "graphkb.db"),
		"--log-level", "none",
	})
	require.ErrorContains(t, root.Execute(), "migrate")
}

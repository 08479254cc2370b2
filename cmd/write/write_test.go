package write

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/typedb/typedb-sub018/cmd"
	"github.com/typedb/typedb-sub018/cmd/migrate"
	"github.com/typedb/typedb-sub018/cmd/util"
	"github.com/typedb/typedb-sub018/pkg/batch"
	"github.com/typedb/typedb-sub018/pkg/concept"
	"github.com/typedb/typedb-sub018/pkg/executor"
	"github.com/typedb/typedb-sub018/pkg/id"
	"github.com/typedb/typedb-sub018/pkg/logger"
	"github.com/typedb/typedb-sub018/pkg/storage/memory"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// database/sql keeps a connection opener goroutine per pool until Close.
		goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"),
	)
}

const schemaBatch = `
queries:
  - define:
      - {label: name, sub: attribute, datatype: string}
      - {label: person, sub: entity, owns: [name], plays: [spouse]}
      - {label: marriage, sub: relation, relates: [spouse]}
  - insert:
      statements:
        - {var: x, isa: person, has: [{type: name, value: Alice}]}
        - {var: y, isa: person, has: [{type: name, value: Bob}]}
        - {var: m, isa: marriage, players: [{role: spouse, player: $x}, {role: spouse, player: $y}]}
`

// decodedResult mirrors Result with answers keyed by variable name.
type decodedResult struct {
	Index   int                          `json:"index"`
	Kind    string                       `json:"kind"`
	Query   string                       `json:"query"`
	Answers []map[string]concept.Concept `json:"answers"`
	Plans   []string                     `json:"plans"`
}

func decodeResults(t *testing.T, out []byte) []decodedResult {
	t.Helper()

	var results []decodedResult
	scanner := bufio.NewScanner(bytes.NewReader(out))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var r decodedResult
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &r))
		results = append(results, r)
	}
	require.NoError(t, scanner.Err())
	return results
}

func TestRunner(t *testing.T) {
	ds := memory.New(memory.WithIDGenerator(&id.SequenceGenerator{}))
	defer ds.Close()

	queries, err := batch.Decode([]byte(schemaBatch))
	require.NoError(t, err)

	observer, logs := logger.NewObserverLogger("info")

	var out bytes.Buffer
	require.NoError(t, NewRunner(ds, WithRunnerLogger(observer)).Run(context.Background(), queries, &out))

	results := decodeResults(t, out.Bytes())
	require.Len(t, results, 2)

	require.Equal(t, "define", results[0].Kind)
	require.Equal(t, "insert", results[1].Kind)
	require.Empty(t, results[0].Plans)

	require.Len(t, results[1].Answers, 1)
	answer := results[1].Answers[0]
	require.Equal(t, concept.KindEntity, answer["x"].Kind)
	require.Equal(t, concept.KindEntity, answer["y"].Kind)
	require.Equal(t, concept.KindRelation, answer["m"].Kind)
	require.NotEqual(t, answer["x"].ID, answer["y"].ID)

	committed := logs.FilterMessage("query committed").All()
	require.Len(t, committed, 2)
	batchID := committed[0].ContextMap()["batch_id"]
	require.NotEmpty(t, batchID)
	require.Equal(t, batchID, committed[1].ContextMap()["batch_id"])
}

func TestRunnerExplain(t *testing.T) {
	ds := memory.New()
	defer ds.Close()

	queries, err := batch.Decode([]byte(schemaBatch))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, NewRunner(ds, WithExplain(true)).Run(context.Background(), queries, &out))

	for _, r := range decodeResults(t, out.Bytes()) {
		require.Len(t, r.Plans, 1, r.Kind)
		require.Contains(t, r.Plans[0], "digraph dependencies")
	}
}

func TestRunnerStopsAtFirstError(t *testing.T) {
	ds := memory.New(memory.WithIDGenerator(&id.SequenceGenerator{}))
	defer ds.Close()

	queries, err := batch.Decode([]byte(schemaBatch + `
  - define:
      - {var: x, isa: person}
  - define:
      - {label: never, sub: entity}
`))
	require.NoError(t, err)

	var out bytes.Buffer
	err = NewRunner(ds).Run(context.Background(), queries, &out)
	require.ErrorIs(t, err, executor.ErrUnsupportedProperty)
	require.ErrorContains(t, err, "query 2 (define)")

	results := decodeResults(t, out.Bytes())
	require.Len(t, results, 2)

	tx, err := ds.Begin(context.Background())
	require.NoError(t, err)
	defer func() {
		require.NoError(t, tx.Rollback(context.Background()))
	}()
	_, err = tx.GetSchemaConcept(context.Background(), "person")
	require.NoError(t, err)
	_, err = tx.GetSchemaConcept(context.Background(), "never")
	require.Error(t, err)
}

func TestRunnerIsDeterministic(t *testing.T) {
	run := func() []decodedResult {
		ds := memory.New(memory.WithIDGenerator(&id.SequenceGenerator{}))
		defer ds.Close()

		queries, err := batch.Decode([]byte(schemaBatch))
		require.NoError(t, err)

		var out bytes.Buffer
		require.NoError(t, NewRunner(ds, WithExplain(true)).Run(context.Background(), queries, &out))
		return decodeResults(t, out.Bytes())
	}

	if diff := cmp.Diff(run(), run()); diff != "" {
		t.Fatalf("results differ between runs (-first +second):\n%s", diff)
	}
}

func writeBatch(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestWriteCommand(t *testing.T) {
	util.PrepareTempConfigDir(t)
	path := writeBatch(t, schemaBatch)

	var out bytes.Buffer
	root := cmd.NewRootCommand()
	root.AddCommand(NewWriteCommand())
	root.SetOut(&out)
	root.SetArgs([]string{"write", "--file", path, "--explain", "--log-level", "none"})
	require.NoError(t, root.Execute())

	results := decodeResults(t, out.Bytes())
	require.Len(t, results, 2)
	require.NotEmpty(t, results[1].Plans)
}

func TestWriteCommandSQLite(t *testing.T) {
	util.PrepareTempConfigDir(t)
	uri := filepath.Join(t.TempDir(), "graphkb.db")

	root := cmd.NewRootCommand()
	root.AddCommand(migrate.NewMigrateCommand())
	root.SetArgs([]string{"migrate", "--datastore-engine", "sqlite", "--datastore-uri", uri, "--log-level", "none"})
	require.NoError(t, root.Execute())

	var out bytes.Buffer
	root = cmd.NewRootCommand()
	root.AddCommand(NewWriteCommand())
	root.SetOut(&out)
	root.SetArgs([]string{
		"write",
		"--file", writeBatch(t, schemaBatch),
		"--datastore-engine", "sqlite",
		"--datastore-uri", uri,
		"--log-level", "none",
	})
	require.NoError(t, root.Execute())
	require.Len(t, decodeResults(t, out.Bytes()), 2)
}

func TestWriteCommandErrors(t *testing.T) {
	tests := map[string]struct {
		args        func(t *testing.T) []string
		expectedErr string
	}{
		`missing_file_flag`: {
			args: func(*testing.T) []string {
				return []string{"write"}
			},
			expectedErr: "missing batch file",
		},
		`missing_file`: {
			args: func(t *testing.T) []string {
				return []string{"write", "--file", filepath.Join(t.TempDir(), "missing.yaml")}
			},
			expectedErr: "read batch file",
		},
		`invalid_batch`: {
			args: func(t *testing.T) []string {
				return []string{"write", "--file", writeBatch(t, "queries:\n  - {}\n")}
			},
			expectedErr: "invalid batch",
		},
		`invalid_config`: {
			args: func(t *testing.T) []string {
				return []string{"write", "--file", writeBatch(t, schemaBatch), "--log-format", "xml"}
			},
			expectedErr: "config 'log.format' must be one of",
		},
		`unmigrated_sqlite`: {
			args: func(t *testing.T) []string {
				return []string{
					"write",
					"--file", writeBatch(t, schemaBatch),
					"--datastore-engine", "sqlite",
					"--datastore-uri", filepath.Join(t.TempDir(), "graphkb.db"),
				}
			},
			expectedErr: "migrate",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			util.PrepareTempConfigDir(t)

			root := cmd.NewRootCommand()
			root.AddCommand(NewWriteCommand())
			root.SetOut(&bytes.Buffer{})
			root.SetErr(&bytes.Buffer{})
			root.SetArgs(append(test.args(t), "--log-level", "none"))
			require.ErrorContains(t, root.Execute(), test.expectedErr)
		})
	}
}

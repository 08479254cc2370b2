// Package write contains the command that runs batches of write queries.
package write

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/typedb/typedb-sub018/cmd/util"
	"github.com/typedb/typedb-sub018/pkg/batch"
	"github.com/typedb/typedb-sub018/pkg/graql"
	"github.com/typedb/typedb-sub018/pkg/logger"
	"github.com/typedb/typedb-sub018/pkg/server/commands"
	"github.com/typedb/typedb-sub018/pkg/storage"
)

const (
	fileFlag    = "file"
	explainFlag = "explain"
)

func NewWriteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "write",
		Short: "Run a batch of write queries",
		Long: `Run the define, insert, undefine and delete queries of a YAML or JSON batch file in order.
Every query runs in its own transaction. The answers of each query are printed as one JSON object per line.`,
		Example: "graphkb write --file batch.yaml --explain",
		RunE:    run,
		Args:    cobra.NoArgs,
	}

	flags := cmd.Flags()
	flags.String(fileFlag, "", "(required) the batch file to run")
	flags.Bool(explainFlag, false, "include the dependency graph of every write in Graphviz format")
	util.AddConfigFlags(cmd)

	cmd.PreRun = bindRunFlags

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := util.ReadConfig()
	if err != nil {
		return err
	}

	l, err := logger.NewLogger(cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}

	shutdownTracing := util.StartTracing(cfg, l)
	defer func() {
		if err := shutdownTracing(); err != nil {
			l.Error("failed to shut down tracing", zap.Error(err))
		}
	}()

	file := viper.GetString(fileFlag)
	if file == "" {
		return errors.New("missing batch file: set --file")
	}

	queries, err := batch.ReadFile(file)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	ds, err := util.NewDatastore(ctx, cfg, l)
	if err != nil {
		return err
	}
	defer ds.Close()

	runner := NewRunner(ds, WithRunnerLogger(l), WithExplain(viper.GetBool(explainFlag)))
	return runner.Run(ctx, queries, cmd.OutOrStdout())
}

// Result is the outcome of one query of a batch.
type Result struct {
	Index   int                `json:"index"`
	Kind    string             `json:"kind"`
	Query   string             `json:"query"`
	Answers []graql.ConceptMap `json:"answers"`

	// Plans holds the dependency graph of every executed write, in Graphviz format.
	Plans []string `json:"plans,omitempty"`
}

// Runner runs the queries of a batch through the write commands.
type Runner struct {
	datastore storage.Datastore
	logger    logger.Logger
	explain   bool
}

type RunnerOption func(*Runner)

func WithRunnerLogger(l logger.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = l
	}
}

func WithExplain(explain bool) RunnerOption {
	return func(r *Runner) {
		r.explain = explain
	}
}

func NewRunner(datastore storage.Datastore, opts ...RunnerOption) *Runner {
	r := &Runner{
		datastore: datastore,
		logger:    logger.NewNoopLogger(),
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes queries in order and writes one JSON result per query to out.
// It stops at the first failing query. Queries before it stay committed.
func (r *Runner) Run(ctx context.Context, queries []batch.Query, out io.Writer) error {
	ctx = logger.ContextWithFields(ctx, zap.String("batch_id", uuid.NewString()))
	r.logger.InfoWithContext(ctx, "running batch", zap.Int("queries", len(queries)))

	enc := json.NewEncoder(out)
	for i, q := range queries {
		result, err := r.runQuery(ctx, q)
		if err != nil {
			r.logger.ErrorWithContext(ctx, "query failed",
				zap.Int("index", i),
				zap.String("kind", q.Kind()),
				zap.Error(err),
			)
			return fmt.Errorf("query %d (%s): %w", i, q.Kind(), err)
		}

		result.Index = i
		r.logger.InfoWithContext(ctx, "query committed",
			zap.Int("index", i),
			zap.String("kind", result.Kind),
			zap.Int("answers", len(result.Answers)),
		)

		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}

	return nil
}

func (r *Runner) runQuery(ctx context.Context, q batch.Query) (*Result, error) {
	result := &Result{Kind: q.Kind(), Query: q.String(), Answers: []graql.ConceptMap{}}

	var explain commands.ExplainFunc
	if r.explain {
		explain = func(dot string) {
			result.Plans = append(result.Plans, dot)
		}
	}

	switch {
	case q.Define != nil:
		answer, err := commands.NewDefineCommand(r.datastore,
			commands.WithDefineCommandLogger(r.logger),
			commands.WithDefineCommandExplain(explain),
		).Execute(ctx, q.Define)
		if err != nil {
			return nil, err
		}
		result.Answers = append(result.Answers, answer)

	case q.Insert != nil:
		answers, err := commands.NewInsertCommand(r.datastore,
			commands.WithInsertCommandLogger(r.logger),
			commands.WithInsertCommandExplain(explain),
		).Execute(ctx, q.Insert)
		if err != nil {
			return nil, err
		}
		result.Answers = append(result.Answers, answers...)

	case q.Undefine != nil:
		answer, err := commands.NewUndefineCommand(r.datastore,
			commands.WithUndefineCommandLogger(r.logger),
			commands.WithUndefineCommandExplain(explain),
		).Execute(ctx, q.Undefine)
		if err != nil {
			return nil, err
		}
		result.Answers = append(result.Answers, answer)

	case q.Delete != nil:
		answers, err := commands.NewDeleteCommand(r.datastore,
			commands.WithDeleteCommandLogger(r.logger),
		).Execute(ctx, q.Delete)
		if err != nil {
			return nil, err
		}
		result.Answers = append(result.Answers, answers...)

	default:
		return nil, batch.ErrInvalidBatch
	}

	return result, nil
}

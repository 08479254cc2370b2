package commands

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/typedb/typedb-sub018/pkg/executor"
	"github.com/typedb/typedb-sub018/pkg/graql"
	"github.com/typedb/typedb-sub018/pkg/logger"
	"github.com/typedb/typedb-sub018/pkg/storage"
	"github.com/typedb/typedb-sub018/pkg/telemetry"
)

// InsertCommand adds instances. Instances may be safely shared by multiple goroutines.
type InsertCommand struct {
	datastore storage.Datastore
	logger    logger.Logger
	explain   ExplainFunc
}

type InsertCommandOption func(*InsertCommand)

func WithInsertCommandLogger(l logger.Logger) InsertCommandOption {
	return func(c *InsertCommand) {
		c.logger = l
	}
}

// WithInsertCommandExplain sets a callback receiving the plan of every
// inserted row.
func WithInsertCommandExplain(fn ExplainFunc) InsertCommandOption {
	return func(c *InsertCommand) {
		c.explain = fn
	}
}

func NewInsertCommand(datastore storage.Datastore, opts ...InsertCommandOption) *InsertCommand {
	cmd := &InsertCommand{
		datastore: datastore,
		logger:    logger.NewNoopLogger(),
	}

	for _, opt := range opts {
		opt(cmd)
	}
	return cmd
}

// Execute runs q once, or once per answer of its match, and returns one answer
// per run. Match answers are all read before the first insert.
func (c *InsertCommand) Execute(ctx context.Context, q *graql.InsertQuery) ([]graql.ConceptMap, error) {
	ctx, span := tracer.Start(ctx, "InsertCommand.Execute", trace.WithAttributes(
		attribute.Int("statements", len(q.Statements)),
		attribute.Bool("match", q.Match != nil),
	))
	defer span.End()

	answers, err := inTx(ctx, c.datastore, func(tx storage.ConceptTx) ([]graql.ConceptMap, error) {
		rows := []graql.ConceptMap{{}}
		if q.Match != nil {
			var err error
			rows, err = drain(q.Match.Match(ctx, tx))
			if err != nil {
				return nil, err
			}
		}
		span.SetAttributes(attribute.Int("rows", len(rows)))

		answers := make([]graql.ConceptMap, 0, len(rows))
		for _, row := range rows {
			answer, err := execute(ctx, tx, executor.ModeInsert, q.Statements, c.explain,
				executor.WithLogger(c.logger),
				executor.WithPriorAnswer(row),
			)
			if err != nil {
				return nil, err
			}
			answers = append(answers, answer)
		}
		return answers, nil
	})
	if err != nil {
		telemetry.TraceError(span, err)
		return nil, err
	}

	c.logger.DebugWithContext(ctx, "insert committed", zap.Int("answers", len(answers)))
	return answers, nil
}

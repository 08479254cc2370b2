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

// UndefineCommand removes schema facts. Instances may be safely shared by multiple goroutines.
type UndefineCommand struct {
	datastore storage.Datastore
	logger    logger.Logger
	explain   ExplainFunc
}

type UndefineCommandOption func(*UndefineCommand)

func WithUndefineCommandLogger(l logger.Logger) UndefineCommandOption {
	return func(c *UndefineCommand) {
		c.logger = l
	}
}

func WithUndefineCommandExplain(fn ExplainFunc) UndefineCommandOption {
	return func(c *UndefineCommand) {
		c.explain = fn
	}
}

func NewUndefineCommand(datastore storage.Datastore, opts ...UndefineCommandOption) *UndefineCommand {
	cmd := &UndefineCommand{
		datastore: datastore,
		logger:    logger.NewNoopLogger(),
	}

	for _, opt := range opts {
		opt(cmd)
	}
	return cmd
}

func (c *UndefineCommand) Execute(ctx context.Context, q *graql.UndefineQuery) (graql.ConceptMap, error) {
	ctx, span := tracer.Start(ctx, "UndefineCommand.Execute", trace.WithAttributes(
		attribute.Int("statements", len(q.Statements)),
	))
	defer span.End()

	answer, err := inTx(ctx, c.datastore, func(tx storage.ConceptTx) (graql.ConceptMap, error) {
		return execute(ctx, tx, executor.ModeUndefine, q.Statements, c.explain, executor.WithLogger(c.logger))
	})
	if err != nil {
		telemetry.TraceError(span, err)
		return graql.ConceptMap{}, err
	}

	c.logger.DebugWithContext(ctx, "undefine committed", zap.Stringer("answer", answer))
	return answer, nil
}

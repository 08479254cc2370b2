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

// DefineCommand adds schema concepts. Instances may be safely shared by multiple goroutines.
type DefineCommand struct {
	datastore storage.Datastore
	logger    logger.Logger
	explain   ExplainFunc
}

type DefineCommandOption func(*DefineCommand)

func WithDefineCommandLogger(l logger.Logger) DefineCommandOption {
	return func(c *DefineCommand) {
		c.logger = l
	}
}

func WithDefineCommandExplain(fn ExplainFunc) DefineCommandOption {
	return func(c *DefineCommand) {
		c.explain = fn
	}
}

func NewDefineCommand(datastore storage.Datastore, opts ...DefineCommandOption) *DefineCommand {
	cmd := &DefineCommand{
		datastore: datastore,
		logger:    logger.NewNoopLogger(),
	}

	for _, opt := range opts {
		opt(cmd)
	}
	return cmd
}

// Execute runs q and returns the concepts bound to its user defined variables.
func (c *DefineCommand) Execute(ctx context.Context, q *graql.DefineQuery) (graql.ConceptMap, error) {
	ctx, span := tracer.Start(ctx, "DefineCommand.Execute", trace.WithAttributes(
		attribute.Int("statements", len(q.Statements)),
	))
	defer span.End()

	answer, err := inTx(ctx, c.datastore, func(tx storage.ConceptTx) (graql.ConceptMap, error) {
		return execute(ctx, tx, executor.ModeDefine, q.Statements, c.explain, executor.WithLogger(c.logger))
	})
	if err != nil {
		telemetry.TraceError(span, err)
		return graql.ConceptMap{}, err
	}

	c.logger.DebugWithContext(ctx, "define committed", zap.Stringer("answer", answer))
	return answer, nil
}

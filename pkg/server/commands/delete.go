package commands

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/typedb/typedb-sub018/pkg/concept"
	"github.com/typedb/typedb-sub018/pkg/executor"
	"github.com/typedb/typedb-sub018/pkg/graql"
	"github.com/typedb/typedb-sub018/pkg/logger"
	"github.com/typedb/typedb-sub018/pkg/storage"
	"github.com/typedb/typedb-sub018/pkg/telemetry"
)

// DeleteCommand deletes the instances bound by a match. Instances may be safely
// shared by multiple goroutines.
type DeleteCommand struct {
	datastore storage.Datastore
	logger    logger.Logger
}

type DeleteCommandOption func(*DeleteCommand)

func WithDeleteCommandLogger(l logger.Logger) DeleteCommandOption {
	return func(c *DeleteCommand) {
		c.logger = l
	}
}

func NewDeleteCommand(datastore storage.Datastore, opts ...DeleteCommandOption) *DeleteCommand {
	cmd := &DeleteCommand{
		datastore: datastore,
		logger:    logger.NewNoopLogger(),
	}

	for _, opt := range opts {
		opt(cmd)
	}
	return cmd
}

// Execute deletes, for every answer of the match, the concepts bound to the
// variables of q. It returns those bindings, one answer per match answer.
func (c *DeleteCommand) Execute(ctx context.Context, q *graql.DeleteQuery) ([]graql.ConceptMap, error) {
	ctx, span := tracer.Start(ctx, "DeleteCommand.Execute", trace.WithAttributes(
		attribute.Int("vars", len(q.Vars)),
	))
	defer span.End()

	if q.Match == nil {
		return nil, ErrMissingMatch
	}

	answers, err := inTx(ctx, c.datastore, func(tx storage.ConceptTx) ([]graql.ConceptMap, error) {
		rows, err := drain(q.Match.Match(ctx, tx))
		if err != nil {
			return nil, err
		}

		deleted := make(map[concept.ID]struct{})
		answers := make([]graql.ConceptMap, 0, len(rows))
		for _, row := range rows {
			bound := make(map[graql.Variable]*concept.Concept, len(q.Vars))
			for _, v := range q.Vars {
				con, ok := row.Get(v)
				if !ok {
					return nil, &executor.UndefinedVariableError{Var: v, Statement: q.String()}
				}
				if con.IsSchemaConcept() {
					return nil, &DeleteSchemaConceptError{Var: v, Concept: con}
				}
				bound[v] = con

				if _, ok := deleted[con.ID]; ok {
					continue
				}
				deleted[con.ID] = struct{}{}

				// Deleting an owner or an attribute also removes its implicit relations.
				err := tx.Delete(ctx, con.ID)
				if errors.Is(err, storage.ErrNotFound) {
					c.logger.DebugWithContext(ctx, "concept already deleted", zap.Stringer("concept", con))
					continue
				}
				if err != nil {
					return nil, err
				}
			}
			answers = append(answers, graql.NewConceptMap(bound))
		}

		span.SetAttributes(attribute.Int("deleted", len(deleted)))
		return answers, nil
	})
	if err != nil {
		telemetry.TraceError(span, err)
		return nil, err
	}

	c.logger.DebugWithContext(ctx, "delete committed", zap.Int("answers", len(answers)))
	return answers, nil
}

// Package commands runs write queries against a datastore. Every command owns
// one transaction: it is committed when the query succeeds and rolled back on
// the first error.
package commands

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"go.opentelemetry.io/otel"

	"github.com/typedb/typedb-sub018/pkg/executor"
	"github.com/typedb/typedb-sub018/pkg/graql"
	"github.com/typedb/typedb-sub018/pkg/storage"
)

var tracer = otel.Tracer("graphkb/pkg/server/commands")

// ExplainFunc receives the DOT rendering of the dependency graph of a write
// query before it runs.
type ExplainFunc func(dot string)

// inTx runs fn in a new transaction of ds.
func inTx[T any](ctx context.Context, ds storage.Datastore, fn func(storage.ConceptTx) (T, error)) (T, error) {
	var zero T

	tx, err := ds.Begin(ctx)
	if err != nil {
		return zero, fmt.Errorf("begin transaction: %w", err)
	}

	out, err := fn(tx)
	if err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return zero, errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return zero, err
	}

	if err := tx.Commit(ctx); err != nil {
		return zero, fmt.Errorf("commit: %w", err)
	}
	return out, nil
}

// execute prepares the executor of statements, hands its plan to explain and
// runs it.
func execute(
	ctx context.Context,
	tx storage.ConceptTx,
	mode executor.Mode,
	statements []*graql.Statement,
	explain ExplainFunc,
	opts ...executor.WriteExecutorOption,
) (graql.ConceptMap, error) {
	w, err := executor.Prepare(tx, mode, statements, opts...)
	if err != nil {
		return graql.ConceptMap{}, err
	}
	if explain != nil {
		explain(w.DOT())
	}
	return w.Execute(ctx)
}

// drain reads every answer of rows before any of them is written to.
func drain(rows iter.Seq2[graql.ConceptMap, error]) ([]graql.ConceptMap, error) {
	var out []graql.ConceptMap
	for row, err := range rows {
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, nil
}

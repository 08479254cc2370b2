package graql

import (
	"context"
	"fmt"
	"iter"
	"slices"

	"github.com/typedb/typedb-sub018/pkg/concept"
	"github.com/typedb/typedb-sub018/pkg/storage"
)

// Matcher produces the answers a match-driven query runs against.
type Matcher interface {
	Match(ctx context.Context, tx storage.ConceptReader) iter.Seq2[ConceptMap, error]
}

// IDMatcher binds each variable to the existing concept with the given id. It
// yields a single answer.
type IDMatcher map[Variable]concept.ID

var _ Matcher = IDMatcher(nil)

func (m IDMatcher) Match(ctx context.Context, tx storage.ConceptReader) iter.Seq2[ConceptMap, error] {
	return func(yield func(ConceptMap, error) bool) {
		vars := make([]Variable, 0, len(m))
		for v := range m {
			vars = append(vars, v)
		}
		slices.SortFunc(vars, CompareVars)

		row := make(map[Variable]*concept.Concept, len(m))
		for _, v := range vars {
			c, err := tx.GetConcept(ctx, m[v])
			if err != nil {
				yield(ConceptMap{}, fmt.Errorf("match %s: %w", v, err))
				return
			}
			row[v] = c
		}

		yield(NewConceptMap(row), nil)
	}
}

// StaticMatcher replays fixed answers.
type StaticMatcher []ConceptMap

var _ Matcher = StaticMatcher(nil)

func (m StaticMatcher) Match(_ context.Context, _ storage.ConceptReader) iter.Seq2[ConceptMap, error] {
	return func(yield func(ConceptMap, error) bool) {
		for _, row := range m {
			if !yield(row, nil) {
				return
			}
		}
	}
}

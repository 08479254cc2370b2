package executor

import (
	"context"
	"fmt"

	"github.com/typedb/typedb-sub018/pkg/concept"
	"github.com/typedb/typedb-sub018/pkg/graql"
	"github.com/typedb/typedb-sub018/pkg/storage"
)

// Mode is the kind of write query properties are executed for.
type Mode int

const (
	ModeInsert Mode = iota
	ModeDefine
	ModeUndefine
)

func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "insert"
	case ModeDefine:
		return "define"
	case ModeUndefine:
		return "undefine"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Executors returns the executors of property p of variable v in mode m.
func Executors(m Mode, v graql.Variable, p graql.Property) ([]*PropertyExecutor, error) {
	switch m {
	case ModeInsert:
		return insertExecutors(v, p)
	case ModeDefine:
		return defineExecutors(v, p)
	case ModeUndefine:
		return undefineExecutors(v, p)
	default:
		return nil, fmt.Errorf("%w: unknown mode %s", ErrUnreachable, m)
	}
}

// Properties expands statements into the nodes of a dependency graph for mode m.
// It fails before anything runs if a property is not supported in m.
func Properties(m Mode, statements []*graql.Statement) ([]*VarAndProperty, error) {
	var out []*VarAndProperty
	for _, vp := range graql.VarProperties(statements) {
		executors, err := Executors(m, vp.Var, vp.Property)
		if err != nil {
			return nil, err
		}
		for _, e := range executors {
			out = append(out, &VarAndProperty{Var: vp.Var, Property: vp.Property, Executor: e})
		}
	}
	return out, nil
}

// Prepare returns the executor of statements in mode m without running it.
func Prepare(tx storage.ConceptTx, m Mode, statements []*graql.Statement, opts ...WriteExecutorOption) (*WriteExecutor, error) {
	properties, err := Properties(m, statements)
	if err != nil {
		return nil, err
	}
	return NewWriteExecutor(tx, m, properties, opts...), nil
}

// DefineAll runs a define query.
func DefineAll(ctx context.Context, tx storage.ConceptTx, statements []*graql.Statement, opts ...WriteExecutorOption) (graql.ConceptMap, error) {
	return run(ctx, tx, ModeDefine, statements, opts...)
}

// InsertAll runs an insert query. prior holds the concepts bound by a preceding
// match and may be empty.
func InsertAll(ctx context.Context, tx storage.ConceptTx, statements []*graql.Statement, prior graql.ConceptMap, opts ...WriteExecutorOption) (graql.ConceptMap, error) {
	return run(ctx, tx, ModeInsert, statements, append(opts, WithPriorAnswer(prior))...)
}

// UndefineAll runs an undefine query.
func UndefineAll(ctx context.Context, tx storage.ConceptTx, statements []*graql.Statement, opts ...WriteExecutorOption) (graql.ConceptMap, error) {
	return run(ctx, tx, ModeUndefine, statements, opts...)
}

func run(ctx context.Context, tx storage.ConceptTx, m Mode, statements []*graql.Statement, opts ...WriteExecutorOption) (graql.ConceptMap, error) {
	w, err := Prepare(tx, m, statements, opts...)
	if err != nil {
		return graql.ConceptMap{}, err
	}
	return w.Execute(ctx)
}

func unsupported(m Mode, v graql.Variable, p graql.Property) ([]*PropertyExecutor, error) {
	return nil, &UnsupportedPropertyError{Mode: m, Var: v, Property: p}
}

func single(e *PropertyExecutorBuilder) ([]*PropertyExecutor, error) {
	return []*PropertyExecutor{e.Build()}, nil
}

// getAs resolves v and checks the concept with accept.
func (w *WriteExecutor) getAs(ctx context.Context, v graql.Variable, expected string, accept func(*concept.Concept) bool) (*concept.Concept, error) {
	c, err := w.Get(ctx, v)
	if err != nil {
		return nil, err
	}
	if !accept(c) {
		return nil, &InvalidCastError{Var: v, Concept: c, Expected: expected}
	}
	return c, nil
}

func isKind(kinds ...concept.Kind) func(*concept.Concept) bool {
	return func(c *concept.Concept) bool {
		for _, k := range kinds {
			if c.Kind == k {
				return true
			}
		}
		return false
	}
}

var (
	isType          = func(c *concept.Concept) bool { return c.IsType() }
	isThing         = func(c *concept.Concept) bool { return c.IsThing() }
	isSchemaConcept = func(c *concept.Concept) bool { return c.IsSchemaConcept() }
	isRole          = isKind(concept.KindRole)
	isRelation      = isKind(concept.KindRelation)
	isAttribute     = isKind(concept.KindAttribute)
	isRelationType  = isKind(concept.KindRelationType)
	isAttributeType = isKind(concept.KindAttributeType)
	isUserType      = isKind(concept.KindEntityType, concept.KindRelationType, concept.KindAttributeType)
)

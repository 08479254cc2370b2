package executor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/typedb/typedb-sub018/pkg/concept"
	"github.com/typedb/typedb-sub018/pkg/graql"
	"github.com/typedb/typedb-sub018/pkg/id"
	"github.com/typedb/typedb-sub018/pkg/logger"
	"github.com/typedb/typedb-sub018/pkg/storage"
	"github.com/typedb/typedb-sub018/pkg/storage/memory"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newDatastore(t *testing.T) storage.Datastore {
	t.Helper()
	ds := memory.New(memory.WithIDGenerator(&id.SequenceGenerator{}))
	t.Cleanup(ds.Close)
	return ds
}

// inTx runs fn in a transaction committed on success and rolled back on error.
func inTx(t *testing.T, ds storage.Datastore, fn func(ctx context.Context, tx storage.ConceptTx) error) error {
	t.Helper()
	ctx := context.Background()
	tx, err := ds.Begin(ctx)
	require.NoError(t, err)
	if err := fn(ctx, tx); err != nil {
		require.NoError(t, tx.Rollback(ctx))
		return err
	}
	return tx.Commit(ctx)
}

func schema() []*graql.Statement {
	return []*graql.Statement{
		graql.Type("name").Sub(graql.Type("attribute")).DataType(concept.DataTypeString),
		graql.Type("person").Sub(graql.Type("entity")).Owns(graql.Type("name")).Plays(graql.Type("spouse")),
		graql.Type("marriage").Sub(graql.Type("relation")).Relates(graql.Type("spouse")),
	}
}

func defineSchema(t *testing.T, ds storage.Datastore) {
	t.Helper()
	require.NoError(t, inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) error {
		_, err := DefineAll(ctx, tx, schema())
		return err
	}))
}

func TestDefineSchema(t *testing.T) {
	ds := newDatastore(t)
	defineSchema(t, ds)

	require.NoError(t, inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) error {
		person, err := tx.GetSchemaConcept(ctx, "person")
		require.NoError(t, err)
		require.Equal(t, concept.KindEntityType, person.Kind)

		sup, err := tx.Sup(ctx, person.ID)
		require.NoError(t, err)
		require.Equal(t, concept.MetaEntity, sup.Label)

		name, err := tx.GetSchemaConcept(ctx, "name")
		require.NoError(t, err)
		dt, err := tx.DataType(ctx, name.ID)
		require.NoError(t, err)
		require.Equal(t, concept.DataTypeString, dt)

		owned, err := tx.SchemaEdges(ctx, storage.EdgeHas, person.ID)
		require.NoError(t, err)
		require.Equal(t, []concept.ID{name.ID}, owned)

		spouse, err := tx.GetSchemaConcept(ctx, "spouse")
		require.NoError(t, err)
		require.Equal(t, concept.KindRole, spouse.Kind)

		played, err := tx.SchemaEdges(ctx, storage.EdgePlays, person.ID)
		require.NoError(t, err)
		require.Equal(t, []concept.ID{spouse.ID}, played)

		marriage, err := tx.GetSchemaConcept(ctx, "marriage")
		require.NoError(t, err)
		related, err := tx.SchemaEdges(ctx, storage.EdgeRelates, marriage.ID)
		require.NoError(t, err)
		require.Equal(t, []concept.ID{spouse.ID}, related)
		return nil
	}))
}

func TestDefineIsIdempotent(t *testing.T) {
	ds := newDatastore(t)
	defineSchema(t, ds)

	var before []*concept.Concept
	require.NoError(t, inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) error {
		var err error
		before, err = tx.SchemaConcepts(ctx)
		return err
	}))

	defineSchema(t, ds)

	require.NoError(t, inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) error {
		after, err := tx.SchemaConcepts(ctx)
		require.NoError(t, err)
		require.Equal(t, before, after)
		return nil
	}))
}

func TestDefineAnswerHoldsUserDefinedVars(t *testing.T) {
	ds := newDatastore(t)

	require.NoError(t, inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) error {
		answer, err := DefineAll(ctx, tx, []*graql.Statement{
			graql.V("p").Label("person").Sub(graql.Type("entity")),
		})
		require.NoError(t, err)
		require.Equal(t, 1, answer.Len())
		p, ok := answer.Get(graql.Var("p"))
		require.True(t, ok)
		require.Equal(t, "person", p.Label)
		return nil
	}))
}

func TestDefineRenamesByID(t *testing.T) {
	ds := newDatastore(t)
	defineSchema(t, ds)

	require.NoError(t, inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) error {
		person, err := tx.GetSchemaConcept(ctx, "person")
		require.NoError(t, err)

		answer, err := DefineAll(ctx, tx, []*graql.Statement{graql.V("p").ID(person.ID).Label("human")})
		require.NoError(t, err)
		p, _ := answer.Get(graql.Var("p"))
		require.Equal(t, "human", p.Label)
		require.Equal(t, person.ID, p.ID)

		_, err = tx.GetSchemaConcept(ctx, "person")
		require.ErrorIs(t, err, storage.ErrNotFound)
		return nil
	}))
}

func TestDefineSubtypeOfExistingType(t *testing.T) {
	ds := newDatastore(t)
	defineSchema(t, ds)

	require.NoError(t, inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) error {
		_, err := DefineAll(ctx, tx, []*graql.Statement{
			graql.Type("nickname").Sub(graql.Type("name")),
			graql.Type("surname").Sub(graql.Type("name")).Regex("^[A-Z]"),
			graql.Type("employee").Sub(graql.Type("person")).Abstract(),
		})
		require.NoError(t, err)

		nickname, err := tx.GetSchemaConcept(ctx, "nickname")
		require.NoError(t, err)
		dt, err := tx.DataType(ctx, nickname.ID)
		require.NoError(t, err)
		require.Equal(t, concept.DataTypeString, dt)

		surname, err := tx.GetSchemaConcept(ctx, "surname")
		require.NoError(t, err)
		regex, err := tx.Regex(ctx, surname.ID)
		require.NoError(t, err)
		require.Equal(t, "^[A-Z]", regex)

		employee, err := tx.GetSchemaConcept(ctx, "employee")
		require.NoError(t, err)
		abstract, err := tx.IsAbstract(ctx, employee.ID)
		require.NoError(t, err)
		require.True(t, abstract)
		return nil
	}))
}

func TestDefineRule(t *testing.T) {
	ds := newDatastore(t)
	defineSchema(t, ds)

	when, then := "$x isa person;", "$x has name 'someone';"
	require.NoError(t, inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) error {
		_, err := DefineAll(ctx, tx, []*graql.Statement{
			graql.Type("named").Sub(graql.Type("rule")).When(when).Then(then),
		})
		require.NoError(t, err)

		rule, err := tx.GetSchemaConcept(ctx, "named")
		require.NoError(t, err)
		require.Equal(t, concept.KindRule, rule.Kind)
		gotWhen, gotThen, err := tx.Rule(ctx, rule.ID)
		require.NoError(t, err)
		require.Equal(t, when, gotWhen)
		require.Equal(t, then, gotThen)
		return nil
	}))

	err := inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) error {
		_, err := DefineAll(ctx, tx, []*graql.Statement{
			graql.Type("named").Sub(graql.Type("rule")).When("$x isa marriage;").Then(then),
		})
		return err
	})
	require.ErrorIs(t, err, ErrPropertyOnExistingConcept)
}

func TestInsertAttributeOwnership(t *testing.T) {
	ds := newDatastore(t)
	defineSchema(t, ds)

	require.NoError(t, inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) error {
		nameType := graql.V("t").Label("name")
		y := graql.V("y").Isa(nameType).Val("Alice")
		x := graql.V("x").Isa(graql.Type("person")).HasVia("name", y, graql.V("r"))

		answer, err := InsertAll(ctx, tx, []*graql.Statement{x}, graql.ConceptMap{})
		require.NoError(t, err)
		require.Equal(t, []graql.Variable{graql.Var("r"), graql.Var("t"), graql.Var("x"), graql.Var("y")}, answer.Vars())

		person, _ := answer.Get(graql.Var("x"))
		require.Equal(t, concept.KindEntity, person.Kind)
		alice, _ := answer.Get(graql.Var("y"))
		require.Equal(t, concept.KindAttribute, alice.Kind)
		ownership, _ := answer.Get(graql.Var("r"))
		require.Equal(t, concept.KindRelation, ownership.Kind)

		value, err := tx.AttributeValue(ctx, alice.ID)
		require.NoError(t, err)
		require.Equal(t, "Alice", value)

		owned, err := tx.Attributes(ctx, person.ID)
		require.NoError(t, err)
		require.Equal(t, []concept.ID{alice.ID}, owned)
		return nil
	}))
}

func TestInsertReusesAttributes(t *testing.T) {
	ds := newDatastore(t)
	defineSchema(t, ds)

	require.NoError(t, inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) error {
		answer, err := InsertAll(ctx, tx, []*graql.Statement{
			graql.V("a").Isa(graql.Type("person")).HasValue("name", "Bob"),
			graql.V("b").Isa(graql.Type("person")).HasValue("name", "Bob"),
		}, graql.ConceptMap{})
		require.NoError(t, err)

		a, _ := answer.Get(graql.Var("a"))
		b, _ := answer.Get(graql.Var("b"))
		require.NotEqual(t, a.ID, b.ID)

		ownedByA, err := tx.Attributes(ctx, a.ID)
		require.NoError(t, err)
		ownedByB, err := tx.Attributes(ctx, b.ID)
		require.NoError(t, err)
		require.Len(t, ownedByA, 1)
		require.Equal(t, ownedByA, ownedByB)
		return nil
	}))
}

func TestInsertRelation(t *testing.T) {
	ds := newDatastore(t)
	defineSchema(t, ds)

	require.NoError(t, inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) error {
		a := graql.V("a").Isa(graql.Type("person"))
		b := graql.V("b").Isa(graql.Type("person"))
		m := graql.V("m").Rel(graql.Type("spouse"), a).Rel(graql.Type("spouse"), b).Isa(graql.Type("marriage"))

		answer, err := InsertAll(ctx, tx, []*graql.Statement{m}, graql.ConceptMap{})
		require.NoError(t, err)

		marriage, _ := answer.Get(graql.Var("m"))
		require.Equal(t, concept.KindRelation, marriage.Kind)

		players, err := tx.RolePlayers(ctx, marriage.ID)
		require.NoError(t, err)
		require.Len(t, players, 2)
		return nil
	}))
}

func TestInsertWithPriorAnswer(t *testing.T) {
	ds := newDatastore(t)
	defineSchema(t, ds)

	var bob *concept.Concept
	require.NoError(t, inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) error {
		answer, err := InsertAll(ctx, tx, []*graql.Statement{graql.V("x").Isa(graql.Type("person"))}, graql.ConceptMap{})
		bob, _ = answer.Get(graql.Var("x"))
		return err
	}))

	prior := graql.NewConceptMap(map[graql.Variable]*concept.Concept{graql.Var("x"): bob})

	require.NoError(t, inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) error {
		answer, err := InsertAll(ctx, tx, []*graql.Statement{graql.V("x").HasValue("name", "Bob")}, prior)
		require.NoError(t, err)
		got, _ := answer.Get(graql.Var("x"))
		require.Equal(t, bob, got)

		owned, err := tx.Attributes(ctx, bob.ID)
		require.NoError(t, err)
		require.Len(t, owned, 1)
		return nil
	}))

	err := inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) error {
		_, err := InsertAll(ctx, tx, []*graql.Statement{graql.V("x").Isa(graql.Type("person"))}, prior)
		return err
	})
	require.ErrorIs(t, err, ErrConceptAlreadyExists)
}

func TestWriteErrors(t *testing.T) {
	tests := map[string]struct {
		mode       Mode
		statements func() []*graql.Statement
		err        error
	}{
		"cyclic_isa": {
			mode: ModeInsert,
			statements: func() []*graql.Statement {
				x, y := graql.V("x"), graql.V("y")
				x.Isa(y)
				y.Isa(x)
				return []*graql.Statement{x}
			},
			err: ErrCyclicDependency,
		},
		"conflicting_labels": {
			mode: ModeDefine,
			statements: func() []*graql.Statement {
				return []*graql.Statement{graql.V("x").Label("a").Label("b").Sub(graql.Type("entity"))}
			},
			err: ErrConflictingProperty,
		},
		"undefined_variable": {
			mode: ModeInsert,
			statements: func() []*graql.Statement {
				return []*graql.Statement{graql.V("x").Isa(graql.Type("person")).Has("name", graql.V("y"))}
			},
			err: ErrUndefinedVariable,
		},
		"unsupported_in_insert": {
			mode: ModeInsert,
			statements: func() []*graql.Statement {
				return []*graql.Statement{graql.V("x").Sub(graql.Type("entity"))}
			},
			err: ErrUnsupportedProperty,
		},
		"comparison_in_insert": {
			mode: ModeInsert,
			statements: func() []*graql.Statement {
				return []*graql.Statement{graql.V("x").Isa(graql.Type("name")).Compare(">", "a")}
			},
			err: ErrUnsupportedProperty,
		},
		"unsupported_in_define": {
			mode: ModeDefine,
			statements: func() []*graql.Statement {
				return []*graql.Statement{graql.V("x").Isa(graql.Type("person"))}
			},
			err: ErrUnsupportedProperty,
		},
		"unsupported_in_undefine": {
			mode: ModeUndefine,
			statements: func() []*graql.Statement {
				return []*graql.Statement{graql.V("x").Isa(graql.Type("person"))}
			},
			err: ErrUnsupportedProperty,
		},
		"role_as_type": {
			mode: ModeInsert,
			statements: func() []*graql.Statement {
				return []*graql.Statement{graql.V("x").Isa(graql.Type("spouse"))}
			},
			err: ErrInvalidCast,
		},
		"meta_instance": {
			mode: ModeInsert,
			statements: func() []*graql.Statement {
				return []*graql.Statement{graql.V("x").Isa(graql.Type("thing"))}
			},
			err: ErrMetaConceptInstantiation,
		},
		"abstract_instance": {
			mode: ModeInsert,
			statements: func() []*graql.Statement {
				return []*graql.Statement{graql.V("x").Isa(graql.Type("entity"))}
			},
			err: storage.ErrAbstractType,
		},
		"value_of_wrong_type": {
			mode: ModeInsert,
			statements: func() []*graql.Statement {
				return []*graql.Statement{graql.V("x").Isa(graql.Type("name")).Val(int64(3))}
			},
			err: storage.ErrInvalidValue,
		},
		"player_not_allowed": {
			mode: ModeInsert,
			statements: func() []*graql.Statement {
				n := graql.V("n").Isa(graql.Type("name")).Val("Alice")
				return []*graql.Statement{graql.V("m").Isa(graql.Type("marriage")).Rel(graql.Type("spouse"), n)}
			},
			err: storage.ErrInvalidSchema,
		},
		"relates_on_entity_type": {
			mode: ModeDefine,
			statements: func() []*graql.Statement {
				return []*graql.Statement{graql.Type("person").Relates(graql.Type("spouse"))}
			},
			err: ErrInvalidCast,
		},
		"sub_of_other_kind": {
			mode: ModeDefine,
			statements: func() []*graql.Statement {
				return []*graql.Statement{graql.Type("person").Sub(graql.Type("marriage"))}
			},
			err: ErrInvalidSchemaMutation,
		},
		"attribute_type_without_datatype": {
			mode: ModeDefine,
			statements: func() []*graql.Statement {
				return []*graql.Statement{graql.Type("age").Sub(graql.Type("attribute"))}
			},
			err: ErrMissingProperty,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			ds := newDatastore(t)
			defineSchema(t, ds)

			err := inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) error {
				_, err := run(ctx, tx, test.mode, test.statements())
				return err
			})
			require.ErrorIs(t, err, test.err)
		})
	}
}

func TestCyclicDependencyReport(t *testing.T) {
	x, y := graql.V("x"), graql.V("y")
	x.Isa(y)
	y.Isa(x)

	w, err := Prepare(nil, ModeInsert, []*graql.Statement{x})
	require.NoError(t, err)

	_, err = w.Execute(context.Background())
	var cyclic *CyclicDependencyError
	require.ErrorAs(t, err, &cyclic)
	require.Equal(t, graql.Var("x"), cyclic.Var)
	require.Equal(t, "$x isa $y;", cyclic.Statement)
	require.Equal(t, []graql.Variable{graql.Var("x"), graql.Var("y")}, cyclic.Cycle)
	require.Contains(t, cyclic.Error(), "cycle through $x, $y")
}

func TestSelfDependencyReport(t *testing.T) {
	x := graql.V("x")
	x.Isa(x)

	w, err := Prepare(nil, ModeInsert, []*graql.Statement{x})
	require.NoError(t, err)

	_, err = w.Execute(context.Background())
	var cyclic *CyclicDependencyError
	require.ErrorAs(t, err, &cyclic)
	require.Equal(t, []graql.Variable{graql.Var("x")}, cyclic.Cycle)
}

func TestOrderRespectsDependencies(t *testing.T) {
	l, logs := logger.NewObserverLogger("debug")
	w, err := Prepare(nil, ModeDefine, schema(), WithLogger(l))
	require.NoError(t, err)

	order, err := w.Order()
	require.NoError(t, err)
	require.Len(t, order, len(w.Properties()))

	position := make(map[int]int, len(order))
	for pos, i := range order {
		position[i] = pos
	}
	for i := range w.Properties() {
		for _, d := range w.Dependencies(i) {
			require.Less(t, position[d], position[i], "node %d runs before its dependency %d", i, d)
		}
	}

	require.Zero(t, logs.Len())
}

func TestOrderIsStableForIndependentNodes(t *testing.T) {
	statements := []*graql.Statement{
		graql.V("c").Label("c"),
		graql.V("a").Label("a"),
		graql.V("b").Label("b"),
	}
	w, err := Prepare(nil, ModeDefine, statements)
	require.NoError(t, err)

	order, err := w.Order()
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, order)
}

func TestEquivalentVariables(t *testing.T) {
	w, err := Prepare(nil, ModeDefine, schema())
	require.NoError(t, err)

	var spouses []graql.Variable
	for _, vp := range w.Properties() {
		if vp.Property == (graql.LabelProperty{Label: "spouse"}) {
			spouses = append(spouses, vp.Var)
		}
	}
	require.Len(t, spouses, 2)
	require.NotEqual(t, spouses[0], spouses[1])
	require.True(t, w.Equivalent(spouses[0], spouses[1]))
}

func TestDescribeAndDOT(t *testing.T) {
	p := graql.V("p").Label("person").Sub(graql.V("e").Label("entity"))
	w, err := Prepare(nil, ModeDefine, []*graql.Statement{p})
	require.NoError(t, err)

	require.Equal(t, "$p label person, sub $e;", w.describe(graql.Var("p")))
	require.Equal(t, "0: $p label person\n1: $p sub $e <- [2]\n2: $e label entity\n", w.String())

	out := w.DOT()
	require.Contains(t, out, "digraph dependencies")
	require.Contains(t, out, "rankdir")
	require.Contains(t, out, "2 -> 1")
}

func TestExecuteLogsProperties(t *testing.T) {
	ds := newDatastore(t)
	l, logs := logger.NewObserverLogger("debug")

	require.NoError(t, inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) error {
		_, err := DefineAll(ctx, tx, []*graql.Statement{graql.Type("person").Sub(graql.Type("entity"))}, WithLogger(l))
		return err
	}))

	require.Equal(t, 3, logs.FilterMessage("executing property").Len())
}

func TestUndefine(t *testing.T) {
	ds := newDatastore(t)
	defineSchema(t, ds)

	require.NoError(t, inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) error {
		_, err := UndefineAll(ctx, tx, []*graql.Statement{
			graql.Type("person").Owns(graql.Type("name")),
			graql.Type("marriage").Relates(graql.Type("spouse")),
		})
		return err
	}))

	require.NoError(t, inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) error {
		person, err := tx.GetSchemaConcept(ctx, "person")
		require.NoError(t, err)
		owned, err := tx.SchemaEdges(ctx, storage.EdgeHas, person.ID)
		require.NoError(t, err)
		require.Empty(t, owned)

		marriage, err := tx.GetSchemaConcept(ctx, "marriage")
		require.NoError(t, err)
		related, err := tx.SchemaEdges(ctx, storage.EdgeRelates, marriage.ID)
		require.NoError(t, err)
		require.Empty(t, related)
		return nil
	}))

	// a supertype that does not match leaves the type in place
	require.NoError(t, inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) error {
		_, err := UndefineAll(ctx, tx, []*graql.Statement{graql.Type("person").Sub(graql.Type("relation"))})
		return err
	}))

	require.NoError(t, inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) error {
		_, err := UndefineAll(ctx, tx, []*graql.Statement{
			graql.Type("person").Sub(graql.Type("entity")),
			graql.Type("marriage").Sub(graql.Type("relation")),
		})
		return err
	}))

	require.NoError(t, inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) error {
		for _, label := range []string{"person", "marriage"} {
			_, err := tx.GetSchemaConcept(ctx, label)
			require.ErrorIs(t, err, storage.ErrNotFound, label)
		}
		_, err := tx.GetSchemaConcept(ctx, "name")
		require.NoError(t, err)
		return nil
	}))
}

func TestUndefineTypeWithItsEdges(t *testing.T) {
	tests := map[string]struct {
		statements func() []*graql.Statement
		removed    []string
		kept       []string
	}{
		"sub_with_owns_and_plays": {
			statements: func() []*graql.Statement {
				return []*graql.Statement{
					graql.Type("person").Sub(graql.Type("entity")).Owns(graql.Type("name")).Plays(graql.Type("spouse")),
				}
			},
			removed: []string{"person"},
			kept:    []string{"name", "spouse", "marriage"},
		},
		"owns_and_plays_before_sub": {
			statements: func() []*graql.Statement {
				return []*graql.Statement{
					graql.Type("person").Owns(graql.Type("name")).Plays(graql.Type("spouse")).Sub(graql.Type("entity")),
				}
			},
			removed: []string{"person"},
			kept:    []string{"name", "spouse", "marriage"},
		},
		"sub_with_relates": {
			statements: func() []*graql.Statement {
				return []*graql.Statement{
					graql.Type("marriage").Sub(graql.Type("relation")).Relates(graql.Type("spouse")),
				}
			},
			removed: []string{"marriage"},
			kept:    []string{"person", "spouse"},
		},
		"whole_schema": {
			statements: func() []*graql.Statement {
				return []*graql.Statement{
					graql.Type("name").Sub(graql.Type("attribute")),
					graql.Type("person").Sub(graql.Type("entity")).Owns(graql.Type("name")).Plays(graql.Type("spouse")),
					graql.Type("marriage").Sub(graql.Type("relation")).Relates(graql.Type("spouse")),
				}
			},
			removed: []string{"name", "person", "marriage"},
			kept:    []string{"spouse", "code"},
		},
		"sub_with_regex_and_abstract": {
			statements: func() []*graql.Statement {
				return []*graql.Statement{
					graql.Type("code").Sub(graql.Type("attribute")).Regex("[0-9]+"),
					graql.Type("base").Sub(graql.Type("entity")).Abstract(),
				}
			},
			removed: []string{"code", "base"},
			kept:    []string{"person"},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			ds := newDatastore(t)
			defineSchema(t, ds)
			require.NoError(t, inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) error {
				_, err := DefineAll(ctx, tx, []*graql.Statement{
					graql.Type("code").Sub(graql.Type("attribute")).DataType(concept.DataTypeString).Regex("[0-9]+"),
					graql.Type("base").Sub(graql.Type("entity")).Abstract(),
				})
				return err
			}))

			require.NoError(t, inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) error {
				_, err := UndefineAll(ctx, tx, test.statements())
				return err
			}))

			require.NoError(t, inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) error {
				for _, label := range test.removed {
					_, err := tx.GetSchemaConcept(ctx, label)
					require.ErrorIs(t, err, storage.ErrNotFound, label)
				}
				for _, label := range test.kept {
					_, err := tx.GetSchemaConcept(ctx, label)
					require.NoError(t, err, label)
				}
				return nil
			}))
		})
	}
}

func TestUndefineRegexAndAbstract(t *testing.T) {
	ds := newDatastore(t)
	require.NoError(t, inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) error {
		_, err := DefineAll(ctx, tx, []*graql.Statement{
			graql.Type("code").Sub(graql.Type("attribute")).DataType(concept.DataTypeString).Regex("[0-9]+"),
			graql.Type("base").Sub(graql.Type("entity")).Abstract(),
		})
		return err
	}))

	require.NoError(t, inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) error {
		_, err := UndefineAll(ctx, tx, []*graql.Statement{
			graql.Type("code").Regex("[a-z]+"),
			graql.Type("base").Abstract(),
		})
		require.NoError(t, err)

		code, err := tx.GetSchemaConcept(ctx, "code")
		require.NoError(t, err)
		regex, err := tx.Regex(ctx, code.ID)
		require.NoError(t, err)
		require.Equal(t, "[0-9]+", regex)

		base, err := tx.GetSchemaConcept(ctx, "base")
		require.NoError(t, err)
		abstract, err := tx.IsAbstract(ctx, base.ID)
		require.NoError(t, err)
		require.False(t, abstract)

		_, err = UndefineAll(ctx, tx, []*graql.Statement{graql.Type("code").Regex("[0-9]+")})
		require.NoError(t, err)
		regex, err = tx.Regex(ctx, code.ID)
		require.NoError(t, err)
		require.Empty(t, regex)
		return nil
	}))
}

func TestModeString(t *testing.T) {
	require.Equal(t, "insert", ModeInsert.String())
	require.Equal(t, "define", ModeDefine.String())
	require.Equal(t, "undefine", ModeUndefine.String())
	require.Equal(t, "mode(7)", Mode(7).String())
}

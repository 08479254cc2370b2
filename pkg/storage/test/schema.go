package test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/typedb/typedb-sub018/pkg/concept"
	"github.com/typedb/typedb-sub018/pkg/storage"
)

func MetaConceptsTest(t *testing.T, ds storage.Datastore) {
	inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) {
		for _, m := range concept.MetaConcepts() {
			c, err := tx.GetSchemaConcept(ctx, m.Label)
			require.NoError(t, err)
			require.Equal(t, m.Concept, *c)

			sup, err := tx.Sup(ctx, m.ID)
			require.NoError(t, err)
			if m.Sup == "" {
				require.Nil(t, sup)
			} else {
				require.Equal(t, m.Sup, sup.Label)
			}
		}

		abstract, err := tx.IsAbstract(ctx, meta(t, concept.MetaEntity).ID)
		require.NoError(t, err)
		require.True(t, abstract)

		_, err = tx.AddEntity(ctx, meta(t, concept.MetaEntity).ID)
		require.ErrorIs(t, err, storage.ErrAbstractType)

		err = tx.Delete(ctx, meta(t, concept.MetaRole).ID)
		require.ErrorIs(t, err, storage.ErrMetaConcept)

		_, err = tx.SetLabel(ctx, meta(t, concept.MetaRule).ID, unique("renamed"))
		require.ErrorIs(t, err, storage.ErrMetaConcept)

		all, err := tx.SchemaConcepts(ctx)
		require.NoError(t, err)
		for i := 1; i < len(all); i++ {
			require.Less(t, all[i-1].Label, all[i].Label)
		}
	})
}

func PutSchemaConceptsTest(t *testing.T, ds storage.Datastore) {
	person, name, rule := unique("person"), unique("name"), unique("rule")

	inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) {
		first, err := tx.PutEntityType(ctx, person)
		require.NoError(t, err)
		require.Equal(t, concept.KindEntityType, first.Kind)
		require.Equal(t, person, first.Label)

		second, err := tx.PutEntityType(ctx, person)
		require.NoError(t, err)
		require.Equal(t, first.ID, second.ID)

		sup, err := tx.Sup(ctx, first.ID)
		require.NoError(t, err)
		require.Equal(t, concept.MetaEntity, sup.Label)

		_, err = tx.PutRelationType(ctx, person)
		require.ErrorIs(t, err, storage.ErrLabelTaken)

		_, err = tx.PutRole(ctx, concept.MetaEntity)
		require.ErrorIs(t, err, storage.ErrLabelTaken)

		attr, err := tx.PutAttributeType(ctx, name, concept.DataTypeString)
		require.NoError(t, err)
		dt, err := tx.DataType(ctx, attr.ID)
		require.NoError(t, err)
		require.Equal(t, concept.DataTypeString, dt)

		_, err = tx.PutAttributeType(ctx, name, concept.DataTypeLong)
		require.ErrorIs(t, err, storage.ErrInvalidSchema)

		_, err = tx.PutAttributeType(ctx, unique("bad"), concept.DataType("decimal"))
		require.ErrorIs(t, err, storage.ErrInvalidValue)

		dt, err = tx.DataType(ctx, first.ID)
		require.NoError(t, err)
		require.Empty(t, dt)

		r, err := tx.PutRule(ctx, rule, "$x isa person;", "$x has name 'n';")
		require.NoError(t, err)
		when, then, err := tx.Rule(ctx, r.ID)
		require.NoError(t, err)
		require.Equal(t, "$x isa person;", when)
		require.Equal(t, "$x has name 'n';", then)

		_, err = tx.PutRule(ctx, rule, "$x isa thing;", "$x has name 'n';")
		require.ErrorIs(t, err, storage.ErrInvalidSchema)

		_, _, err = tx.Rule(ctx, first.ID)
		require.ErrorIs(t, err, storage.ErrInvalidSchema)

		_, err = tx.GetConcept(ctx, "V-missing")
		require.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func SetSuperTest(t *testing.T, ds storage.Datastore) {
	inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) {
		animal, err := tx.PutEntityType(ctx, unique("animal"))
		require.NoError(t, err)
		dog, err := tx.PutEntityType(ctx, unique("dog"))
		require.NoError(t, err)
		puppy, err := tx.PutEntityType(ctx, unique("puppy"))
		require.NoError(t, err)
		marriage, err := tx.PutRelationType(ctx, unique("marriage"))
		require.NoError(t, err)

		require.NoError(t, tx.SetSuper(ctx, dog.ID, animal.ID))
		require.NoError(t, tx.SetSuper(ctx, puppy.ID, dog.ID))
		require.NoError(t, tx.SetSuper(ctx, puppy.ID, dog.ID))

		sup, err := tx.Sup(ctx, puppy.ID)
		require.NoError(t, err)
		require.Equal(t, dog.ID, sup.ID)

		tests := map[string]struct {
			id, sup concept.ID
			err     error
		}{
			`cycle`:        {id: animal.ID, sup: puppy.ID, err: storage.ErrInvalidSchema},
			`self`:         {id: animal.ID, sup: animal.ID, err: storage.ErrInvalidSchema},
			`kind`:         {id: marriage.ID, sup: animal.ID, err: storage.ErrInvalidSchema},
			`thing`:        {id: animal.ID, sup: meta(t, concept.MetaThing).ID, err: storage.ErrInvalidSchema},
			`meta`:         {id: meta(t, concept.MetaEntity).ID, sup: animal.ID, err: storage.ErrMetaConcept},
			`missing`:      {id: animal.ID, sup: "V-missing", err: storage.ErrNotFound},
			`missing_self`: {id: "V-missing", sup: animal.ID, err: storage.ErrNotFound},
		}
		for name, test := range tests {
			t.Run(name, func(t *testing.T) {
				require.ErrorIs(t, tx.SetSuper(ctx, test.id, test.sup), test.err)
			})
		}

		long, err := tx.PutAttributeType(ctx, unique("age"), concept.DataTypeLong)
		require.NoError(t, err)
		str, err := tx.PutAttributeType(ctx, unique("nickname"), concept.DataTypeString)
		require.NoError(t, err)
		require.ErrorIs(t, tx.SetSuper(ctx, str.ID, long.ID), storage.ErrInvalidSchema)
	})
}

func SetLabelTest(t *testing.T, ds storage.Datastore) {
	before, after, taken := unique("before"), unique("after"), unique("taken")

	inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) {
		c, err := tx.PutEntityType(ctx, before)
		require.NoError(t, err)
		_, err = tx.PutEntityType(ctx, taken)
		require.NoError(t, err)

		renamed, err := tx.SetLabel(ctx, c.ID, after)
		require.NoError(t, err)
		require.Equal(t, after, renamed.Label)
		require.Equal(t, c.ID, renamed.ID)

		_, err = tx.GetSchemaConcept(ctx, before)
		require.ErrorIs(t, err, storage.ErrNotFound)

		got, err := tx.GetSchemaConcept(ctx, after)
		require.NoError(t, err)
		require.Equal(t, c.ID, got.ID)

		_, err = tx.SetLabel(ctx, c.ID, taken)
		require.ErrorIs(t, err, storage.ErrLabelTaken)
	})
}

func AbstractAndRegexTest(t *testing.T, ds storage.Datastore) {
	inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) {
		shape, err := tx.PutEntityType(ctx, unique("shape"))
		require.NoError(t, err)

		require.NoError(t, tx.SetAbstract(ctx, shape.ID, true))
		abstract, err := tx.IsAbstract(ctx, shape.ID)
		require.NoError(t, err)
		require.True(t, abstract)

		_, err = tx.AddEntity(ctx, shape.ID)
		require.ErrorIs(t, err, storage.ErrAbstractType)

		require.NoError(t, tx.SetAbstract(ctx, shape.ID, false))
		_, err = tx.AddEntity(ctx, shape.ID)
		require.NoError(t, err)
		require.ErrorIs(t, tx.SetAbstract(ctx, shape.ID, true), storage.ErrInvalidSchema)

		code, err := tx.PutAttributeType(ctx, unique("code"), concept.DataTypeString)
		require.NoError(t, err)
		require.NoError(t, tx.SetRegex(ctx, code.ID, "^[A-Z]{3}$"))

		regex, err := tx.Regex(ctx, code.ID)
		require.NoError(t, err)
		require.Equal(t, "^[A-Z]{3}$", regex)

		_, err = tx.PutAttribute(ctx, code.ID, "ABC")
		require.NoError(t, err)
		_, err = tx.PutAttribute(ctx, code.ID, "abc")
		require.ErrorIs(t, err, storage.ErrInvalidValue)

		require.ErrorIs(t, tx.SetRegex(ctx, code.ID, "^[0-9]+$"), storage.ErrInvalidSchema)
		require.ErrorIs(t, tx.SetRegex(ctx, code.ID, "("), storage.ErrInvalidSchema)

		require.NoError(t, tx.SetRegex(ctx, code.ID, ""))
		_, err = tx.PutAttribute(ctx, code.ID, "abc")
		require.NoError(t, err)

		count, err := tx.PutAttributeType(ctx, unique("count"), concept.DataTypeLong)
		require.NoError(t, err)
		require.ErrorIs(t, tx.SetRegex(ctx, count.ID, "^1"), storage.ErrInvalidSchema)
		require.ErrorIs(t, tx.SetRegex(ctx, meta(t, concept.MetaAttribute).ID, "^1"), storage.ErrMetaConcept)
	})
}

func SchemaEdgesTest(t *testing.T, ds storage.Datastore) {
	inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) {
		person, err := tx.PutEntityType(ctx, unique("person"))
		require.NoError(t, err)
		employment, err := tx.PutRelationType(ctx, unique("employment"))
		require.NoError(t, err)
		employee, err := tx.PutRole(ctx, unique("employee"))
		require.NoError(t, err)
		email, err := tx.PutAttributeType(ctx, unique("email"), concept.DataTypeString)
		require.NoError(t, err)

		require.NoError(t, tx.PutSchemaEdge(ctx, storage.EdgeRelates, employment.ID, employee.ID))
		require.NoError(t, tx.PutSchemaEdge(ctx, storage.EdgeRelates, employment.ID, employee.ID))
		require.NoError(t, tx.PutSchemaEdge(ctx, storage.EdgePlays, person.ID, employee.ID))
		require.NoError(t, tx.PutSchemaEdge(ctx, storage.EdgeHas, person.ID, email.ID))

		roles, err := tx.SchemaEdges(ctx, storage.EdgeRelates, employment.ID)
		require.NoError(t, err)
		require.Equal(t, []concept.ID{employee.ID}, roles)

		// key replaces has
		require.NoError(t, tx.PutSchemaEdge(ctx, storage.EdgeKey, person.ID, email.ID))
		has, err := tx.SchemaEdges(ctx, storage.EdgeHas, person.ID)
		require.NoError(t, err)
		require.Empty(t, has)
		keys, err := tx.SchemaEdges(ctx, storage.EdgeKey, person.ID)
		require.NoError(t, err)
		require.Equal(t, []concept.ID{email.ID}, keys)

		tests := map[string]struct {
			kind     storage.EdgeKind
			from, to concept.ID
			err      error
		}{
			`relates_from_entity`: {kind: storage.EdgeRelates, from: person.ID, to: employee.ID, err: storage.ErrInvalidSchema},
			`plays_attribute`:     {kind: storage.EdgePlays, from: person.ID, to: email.ID, err: storage.ErrInvalidSchema},
			`has_role`:            {kind: storage.EdgeHas, from: person.ID, to: employee.ID, err: storage.ErrInvalidSchema},
			`meta_owner`:          {kind: storage.EdgeHas, from: meta(t, concept.MetaEntity).ID, to: email.ID, err: storage.ErrMetaConcept},
			`missing`:             {kind: storage.EdgePlays, from: person.ID, to: "V-missing", err: storage.ErrNotFound},
		}
		for name, test := range tests {
			t.Run(name, func(t *testing.T) {
				require.ErrorIs(t, tx.PutSchemaEdge(ctx, test.kind, test.from, test.to), test.err)
			})
		}

		require.NoError(t, tx.DeleteSchemaEdge(ctx, storage.EdgePlays, person.ID, employee.ID))
		require.NoError(t, tx.DeleteSchemaEdge(ctx, storage.EdgePlays, person.ID, employee.ID))
		plays, err := tx.SchemaEdges(ctx, storage.EdgePlays, person.ID)
		require.NoError(t, err)
		require.Empty(t, plays)
	})
}

func DeleteSchemaConceptTest(t *testing.T, ds storage.Datastore) {
	inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) {
		vehicle, err := tx.PutEntityType(ctx, unique("vehicle"))
		require.NoError(t, err)
		car, err := tx.PutEntityType(ctx, unique("car"))
		require.NoError(t, err)
		require.NoError(t, tx.SetSuper(ctx, car.ID, vehicle.ID))

		require.ErrorIs(t, tx.Delete(ctx, vehicle.ID), storage.ErrInvalidSchema)

		instance, err := tx.AddEntity(ctx, car.ID)
		require.NoError(t, err)
		require.ErrorIs(t, tx.Delete(ctx, car.ID), storage.ErrInvalidSchema)

		require.NoError(t, tx.Delete(ctx, instance.ID))
		require.NoError(t, tx.Delete(ctx, car.ID))
		require.NoError(t, tx.Delete(ctx, vehicle.ID))

		_, err = tx.GetConcept(ctx, car.ID)
		require.ErrorIs(t, err, storage.ErrNotFound)
		require.ErrorIs(t, tx.Delete(ctx, car.ID), storage.ErrNotFound)
	})
}

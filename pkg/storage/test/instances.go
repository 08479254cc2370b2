package test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/typedb/typedb-sub018/pkg/concept"
	"github.com/typedb/typedb-sub018/pkg/storage"
)

func AttributesTest(t *testing.T, ds storage.Datastore) {
	inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) {
		age, err := tx.PutAttributeType(ctx, unique("age"), concept.DataTypeLong)
		require.NoError(t, err)
		born, err := tx.PutAttributeType(ctx, unique("born"), concept.DataTypeDate)
		require.NoError(t, err)

		first, err := tx.PutAttribute(ctx, age.ID, int64(42))
		require.NoError(t, err)
		require.Equal(t, concept.KindAttribute, first.Kind)

		// 42.0 normalises to the same long
		second, err := tx.PutAttribute(ctx, age.ID, 42.0)
		require.NoError(t, err)
		require.Equal(t, first.ID, second.ID)

		value, err := tx.AttributeValue(ctx, first.ID)
		require.NoError(t, err)
		require.Equal(t, int64(42), value)

		typ, err := tx.TypeOf(ctx, first.ID)
		require.NoError(t, err)
		require.Equal(t, age.ID, typ.ID)

		_, err = tx.PutAttribute(ctx, age.ID, "forty")
		require.ErrorIs(t, err, storage.ErrInvalidValue)

		date, err := tx.PutAttribute(ctx, born.ID, "1990-03-04")
		require.NoError(t, err)
		value, err = tx.AttributeValue(ctx, date.ID)
		require.NoError(t, err)
		require.True(t, time.Date(1990, 3, 4, 0, 0, 0, 0, time.UTC).Equal(value.(time.Time)))

		person, err := tx.PutEntityType(ctx, unique("person"))
		require.NoError(t, err)
		_, err = tx.PutAttribute(ctx, person.ID, "x")
		require.ErrorIs(t, err, storage.ErrInvalidSchema)
		_, err = tx.AddRelation(ctx, person.ID)
		require.ErrorIs(t, err, storage.ErrInvalidSchema)
	})
}

type relationFixture struct {
	person, company, employment, employee, employer *concept.Concept
}

func newRelationFixture(ctx context.Context, t *testing.T, tx storage.ConceptTx) relationFixture {
	var (
		f   relationFixture
		err error
	)
	f.person, err = tx.PutEntityType(ctx, unique("person"))
	require.NoError(t, err)
	f.company, err = tx.PutEntityType(ctx, unique("company"))
	require.NoError(t, err)
	f.employment, err = tx.PutRelationType(ctx, unique("employment"))
	require.NoError(t, err)
	f.employee, err = tx.PutRole(ctx, unique("employee"))
	require.NoError(t, err)
	f.employer, err = tx.PutRole(ctx, unique("employer"))
	require.NoError(t, err)

	require.NoError(t, tx.PutSchemaEdge(ctx, storage.EdgeRelates, f.employment.ID, f.employee.ID))
	require.NoError(t, tx.PutSchemaEdge(ctx, storage.EdgeRelates, f.employment.ID, f.employer.ID))
	require.NoError(t, tx.PutSchemaEdge(ctx, storage.EdgePlays, f.person.ID, f.employee.ID))
	require.NoError(t, tx.PutSchemaEdge(ctx, storage.EdgePlays, f.company.ID, f.employer.ID))
	return f
}

func RelationsTest(t *testing.T, ds storage.Datastore) {
	inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) {
		f := newRelationFixture(ctx, t, tx)

		alice, err := tx.AddEntity(ctx, f.person.ID)
		require.NoError(t, err)
		acme, err := tx.AddEntity(ctx, f.company.ID)
		require.NoError(t, err)
		job, err := tx.AddRelation(ctx, f.employment.ID)
		require.NoError(t, err)
		require.Equal(t, concept.KindRelation, job.Kind)

		require.NoError(t, tx.Assign(ctx, job.ID, f.employee.ID, alice.ID))
		require.NoError(t, tx.Assign(ctx, job.ID, f.employer.ID, acme.ID))
		require.NoError(t, tx.Assign(ctx, job.ID, f.employee.ID, alice.ID))

		players, err := tx.RolePlayers(ctx, job.ID)
		require.NoError(t, err)
		require.Equal(t, []storage.RolePlayer{
			{Role: f.employee.ID, Player: alice.ID},
			{Role: f.employer.ID, Player: acme.ID},
		}, players)

		// a company does not play employee
		require.ErrorIs(t, tx.Assign(ctx, job.ID, f.employee.ID, acme.ID), storage.ErrInvalidSchema)

		// subtypes inherit plays
		startup, err := tx.PutEntityType(ctx, unique("startup"))
		require.NoError(t, err)
		require.NoError(t, tx.SetSuper(ctx, startup.ID, f.company.ID))
		tiny, err := tx.AddEntity(ctx, startup.ID)
		require.NoError(t, err)
		require.NoError(t, tx.Assign(ctx, job.ID, f.employer.ID, tiny.ID))

		other, err := tx.PutRole(ctx, unique("other"))
		require.NoError(t, err)
		require.NoError(t, tx.PutSchemaEdge(ctx, storage.EdgePlays, f.person.ID, other.ID))
		require.ErrorIs(t, tx.Assign(ctx, job.ID, other.ID, alice.ID), storage.ErrInvalidSchema)

		require.ErrorIs(t, tx.Delete(ctx, f.employee.ID), storage.ErrInvalidSchema)
	})
}

func AttachAttributeTest(t *testing.T, ds storage.Datastore) {
	inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) {
		person, err := tx.PutEntityType(ctx, unique("person"))
		require.NoError(t, err)
		nameLabel := unique("name")
		name, err := tx.PutAttributeType(ctx, nameLabel, concept.DataTypeString)
		require.NoError(t, err)
		ssn, err := tx.PutAttributeType(ctx, unique("ssn"), concept.DataTypeString)
		require.NoError(t, err)

		alice, err := tx.AddEntity(ctx, person.ID)
		require.NoError(t, err)
		aliceName, err := tx.PutAttribute(ctx, name.ID, "Alice")
		require.NoError(t, err)

		_, err = tx.AttachAttribute(ctx, alice.ID, aliceName.ID)
		require.ErrorIs(t, err, storage.ErrInvalidSchema)

		require.NoError(t, tx.PutSchemaEdge(ctx, storage.EdgeHas, person.ID, name.ID))
		require.NoError(t, tx.PutSchemaEdge(ctx, storage.EdgeKey, person.ID, ssn.ID))

		rel, err := tx.AttachAttribute(ctx, alice.ID, aliceName.ID)
		require.NoError(t, err)
		require.Equal(t, concept.KindRelation, rel.Kind)

		again, err := tx.AttachAttribute(ctx, alice.ID, aliceName.ID)
		require.NoError(t, err)
		require.Equal(t, rel.ID, again.ID)

		relationLabel, ownerLabel, valueLabel := concept.ImplicitLabels(nameLabel)
		relType, err := tx.TypeOf(ctx, rel.ID)
		require.NoError(t, err)
		require.Equal(t, relationLabel, relType.Label)

		ownerRole, err := tx.GetSchemaConcept(ctx, ownerLabel)
		require.NoError(t, err)
		valueRole, err := tx.GetSchemaConcept(ctx, valueLabel)
		require.NoError(t, err)

		players, err := tx.RolePlayers(ctx, rel.ID)
		require.NoError(t, err)
		require.Equal(t, []storage.RolePlayer{
			{Role: ownerRole.ID, Player: alice.ID},
			{Role: valueRole.ID, Player: aliceName.ID},
		}, players)

		owned, err := tx.Attributes(ctx, alice.ID)
		require.NoError(t, err)
		require.Equal(t, []concept.ID{aliceName.ID}, owned)

		first, err := tx.PutAttribute(ctx, ssn.ID, "111")
		require.NoError(t, err)
		second, err := tx.PutAttribute(ctx, ssn.ID, "222")
		require.NoError(t, err)
		_, err = tx.AttachAttribute(ctx, alice.ID, first.ID)
		require.NoError(t, err)
		_, err = tx.AttachAttribute(ctx, alice.ID, second.ID)
		require.ErrorIs(t, err, storage.ErrInvalidSchema)
	})
}

func DeleteThingTest(t *testing.T, ds storage.Datastore) {
	inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) {
		f := newRelationFixture(ctx, t, tx)
		name, err := tx.PutAttributeType(ctx, unique("name"), concept.DataTypeString)
		require.NoError(t, err)
		require.NoError(t, tx.PutSchemaEdge(ctx, storage.EdgeHas, f.person.ID, name.ID))

		alice, err := tx.AddEntity(ctx, f.person.ID)
		require.NoError(t, err)
		acme, err := tx.AddEntity(ctx, f.company.ID)
		require.NoError(t, err)
		job, err := tx.AddRelation(ctx, f.employment.ID)
		require.NoError(t, err)
		require.NoError(t, tx.Assign(ctx, job.ID, f.employee.ID, alice.ID))
		require.NoError(t, tx.Assign(ctx, job.ID, f.employer.ID, acme.ID))

		aliceName, err := tx.PutAttribute(ctx, name.ID, "Alice")
		require.NoError(t, err)
		ownership, err := tx.AttachAttribute(ctx, alice.ID, aliceName.ID)
		require.NoError(t, err)

		require.NoError(t, tx.Delete(ctx, alice.ID))

		_, err = tx.GetConcept(ctx, alice.ID)
		require.ErrorIs(t, err, storage.ErrNotFound)
		_, err = tx.GetConcept(ctx, ownership.ID)
		require.ErrorIs(t, err, storage.ErrNotFound)

		// the attribute outlives its owner
		_, err = tx.GetConcept(ctx, aliceName.ID)
		require.NoError(t, err)

		players, err := tx.RolePlayers(ctx, job.ID)
		require.NoError(t, err)
		require.Equal(t, []storage.RolePlayer{{Role: f.employer.ID, Player: acme.ID}}, players)

		require.NoError(t, tx.Delete(ctx, job.ID))
		require.NoError(t, tx.Delete(ctx, f.employee.ID))
	})
}

// Package test holds the conformance suite every storage.Datastore must pass.
package test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/typedb/typedb-sub018/pkg/concept"
	"github.com/typedb/typedb-sub018/pkg/storage"
)

func RunAllTests(t *testing.T, ds storage.Datastore) {
	t.Run("TestDatastoreIsReady", func(t *testing.T) {
		status, err := ds.IsReady(context.Background())
		require.NoError(t, err)
		require.True(t, status.IsReady)
	})

	// Transactions.
	t.Run("TestCommitAndRollback", func(t *testing.T) { CommitAndRollbackTest(t, ds) })
	t.Run("TestClosedTransaction", func(t *testing.T) { ClosedTransactionTest(t, ds) })

	// Schema.
	t.Run("TestMetaConcepts", func(t *testing.T) { MetaConceptsTest(t, ds) })
	t.Run("TestPutSchemaConcepts", func(t *testing.T) { PutSchemaConceptsTest(t, ds) })
	t.Run("TestSetSuper", func(t *testing.T) { SetSuperTest(t, ds) })
	t.Run("TestSetLabel", func(t *testing.T) { SetLabelTest(t, ds) })
	t.Run("TestAbstractAndRegex", func(t *testing.T) { AbstractAndRegexTest(t, ds) })
	t.Run("TestSchemaEdges", func(t *testing.T) { SchemaEdgesTest(t, ds) })
	t.Run("TestDeleteSchemaConcept", func(t *testing.T) { DeleteSchemaConceptTest(t, ds) })

	// Instances.
	t.Run("TestAttributes", func(t *testing.T) { AttributesTest(t, ds) })
	t.Run("TestRelations", func(t *testing.T) { RelationsTest(t, ds) })
	t.Run("TestAttachAttribute", func(t *testing.T) { AttachAttributeTest(t, ds) })
	t.Run("TestDeleteThing", func(t *testing.T) { DeleteThingTest(t, ds) })
}

var labelSeq atomic.Uint64

// unique returns a label no other test of the suite uses, so that tests can
// share one datastore.
func unique(name string) string {
	return fmt.Sprintf("%s-%d", name, labelSeq.Add(1))
}

// inTx runs fn in a transaction and commits it.
func inTx(t *testing.T, ds storage.Datastore, fn func(ctx context.Context, tx storage.ConceptTx)) {
	t.Helper()

	ctx := context.Background()
	tx, err := ds.Begin(ctx)
	require.NoError(t, err)
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	fn(ctx, tx)

	require.NoError(t, tx.Commit(ctx))
}

func meta(t *testing.T, label string) *concept.Concept {
	t.Helper()
	m, ok := concept.MetaByLabel(label)
	require.True(t, ok)
	return &m.Concept
}

func CommitAndRollbackTest(t *testing.T, ds storage.Datastore) {
	ctx := context.Background()
	committed, discarded := unique("committed"), unique("discarded")

	inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) {
		_, err := tx.PutEntityType(ctx, committed)
		require.NoError(t, err)
	})

	tx, err := ds.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.PutEntityType(ctx, discarded)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback(ctx))

	inTx(t, ds, func(ctx context.Context, tx storage.ConceptTx) {
		_, err := tx.GetSchemaConcept(ctx, committed)
		require.NoError(t, err)

		_, err = tx.GetSchemaConcept(ctx, discarded)
		require.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func ClosedTransactionTest(t *testing.T, ds storage.Datastore) {
	ctx := context.Background()

	tx, err := ds.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))

	require.NoError(t, tx.Rollback(ctx))
	require.ErrorIs(t, tx.Commit(ctx), storage.ErrTransactionClosed)

	_, err = tx.GetSchemaConcept(ctx, concept.MetaEntity)
	require.ErrorIs(t, err, storage.ErrTransactionClosed)

	_, err = tx.PutEntityType(ctx, unique("late"))
	require.ErrorIs(t, err, storage.ErrTransactionClosed)
}

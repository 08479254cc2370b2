package storagewrappers

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/typedb/typedb-sub018/internal/mocks"
	"github.com/typedb/typedb-sub018/pkg/concept"
	"github.com/typedb/typedb-sub018/pkg/storage"
	"github.com/typedb/typedb-sub018/pkg/storage/memory"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestInstrumentedTxCountsCalls(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	ctx := context.Background()
	person := &concept.Concept{ID: "V1", Kind: concept.KindEntityType, Label: "person"}

	mockTx := mocks.NewMockConceptTx(mockController)
	mockTx.EXPECT().GetSchemaConcept(gomock.Any(), "person").Return(nil, storage.ErrNotFound)
	mockTx.EXPECT().PutEntityType(gomock.Any(), "person").Return(person, nil)
	mockTx.EXPECT().Rule(gomock.Any(), person.ID).Return("", "", storage.ErrInvalidSchema)
	mockTx.EXPECT().Commit(gomock.Any()).Return(nil)

	before := testutil.ToFloat64(datastoreQueryCount.WithLabelValues("PutEntityType"))

	tx := NewInstrumentedTx(mockTx)
	_, err := tx.GetSchemaConcept(ctx, "person")
	require.ErrorIs(t, err, storage.ErrNotFound)

	got, err := tx.PutEntityType(ctx, "person")
	require.NoError(t, err)
	require.Equal(t, person, got)

	_, _, err = tx.Rule(ctx, person.ID)
	require.ErrorIs(t, err, storage.ErrInvalidSchema)

	require.NoError(t, tx.Commit(ctx))

	require.Equal(t, uint32(3), tx.GetMetrics().DatastoreQueryCount)
	require.InDelta(t, before+1, testutil.ToFloat64(datastoreQueryCount.WithLabelValues("PutEntityType")), 0)
}

func TestInstrumentedDatastoreWrapsTransactions(t *testing.T) {
	ds := NewInstrumentedDatastore(memory.New())
	defer ds.Close()

	ctx := context.Background()
	tx, err := ds.Begin(ctx)
	require.NoError(t, err)

	instrumented, ok := tx.(*InstrumentedTx)
	require.True(t, ok)

	_, err = tx.PutEntityType(ctx, "person")
	require.NoError(t, err)
	_, err = tx.SchemaConcepts(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback(ctx))

	require.Equal(t, uint32(2), instrumented.GetMetrics().DatastoreQueryCount)
}

func TestInstrumentedDatastoreBeginError(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	boom := errors.New("boom")
	mockDatastore := mocks.NewMockDatastore(mockController)
	mockDatastore.EXPECT().Begin(gomock.Any()).Return(nil, boom)

	_, err := NewInstrumentedDatastore(mockDatastore).Begin(context.Background())
	require.ErrorIs(t, err, boom)
}

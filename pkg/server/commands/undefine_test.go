package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/typedb/typedb-sub018/pkg/graql"
	"github.com/typedb/typedb-sub018/pkg/logger"
	"github.com/typedb/typedb-sub018/pkg/storage"
)

func TestUndefineCommand(t *testing.T) {
	ds := newDatastore(t)
	defineSchema(t, ds)
	observer, logs := logger.NewObserverLogger("debug")

	var plans []string
	cmd := NewUndefineCommand(ds,
		WithUndefineCommandLogger(observer),
		WithUndefineCommandExplain(func(dot string) { plans = append(plans, dot) }),
	)

	_, err := cmd.Execute(context.Background(), graql.Undefine(
		graql.Type("person").Plays(graql.Type("spouse")),
	))
	require.NoError(t, err)
	require.Len(t, plans, 1)
	require.Equal(t, 1, logs.FilterMessage("undefine committed").Len())

	read(t, ds, func(ctx context.Context, tx storage.ConceptTx) {
		person, err := tx.GetSchemaConcept(ctx, "person")
		require.NoError(t, err)
		played, err := tx.SchemaEdges(ctx, storage.EdgePlays, person.ID)
		require.NoError(t, err)
		require.Empty(t, played)
	})

	_, err = cmd.Execute(context.Background(), graql.Undefine(
		graql.Type("marriage").Sub(graql.Type("relation")),
	))
	require.NoError(t, err)

	read(t, ds, func(ctx context.Context, tx storage.ConceptTx) {
		_, err := tx.GetSchemaConcept(ctx, "marriage")
		require.ErrorIs(t, err, storage.ErrNotFound)
	})
}

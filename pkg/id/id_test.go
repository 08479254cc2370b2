package id

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/typedb/typedb-sub018/pkg/concept"
)

func TestULIDGenerator(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	g := NewULIDGenerator()
	g.now = func() time.Time { return now }

	first := g.Next()
	second := g.Next()

	require.True(t, IsGenerated(first))
	require.Less(t, string(first), string(second))

	ts, err := Time(first)
	require.NoError(t, err)
	require.True(t, now.Equal(ts))
}

func TestTimeRejectsForeignIDs(t *testing.T) {
	tests := map[string]struct {
		id concept.ID
	}{
		`meta_concept`: {id: "V-thing"},
		`no_prefix`:    {id: "01HXYZ"},
		`sequence`:     {id: "V12"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Time(test.id)
			require.Error(t, err)
			require.False(t, IsGenerated(test.id))
		})
	}
}

func TestNoCollisions(t *testing.T) {
	g := NewULIDGenerator()
	const n = 10000

	var (
		mu   sync.Mutex
		seen = make(map[concept.ID]struct{}, n)
		wg   sync.WaitGroup
	)
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range n / 4 {
				v := g.Next()
				mu.Lock()
				seen[v] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Len(t, seen, n)
}

func TestSequenceGenerator(t *testing.T) {
	var g SequenceGenerator
	require.Equal(t, concept.ID("V1"), g.Next())
	require.Equal(t, concept.ID("V2"), g.Next())
}

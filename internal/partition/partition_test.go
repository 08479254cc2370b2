package partition

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPartition(t *testing.T) {
	t.Run("unknown_values_are_their_own_component", func(t *testing.T) {
		p := New[string]()
		require.Equal(t, "x", p.ComponentOf("x"))
		require.Equal(t, 0, p.Len())
	})

	t.Run("singletons", func(t *testing.T) {
		p := New("a", "b", "c")
		require.Equal(t, "a", p.ComponentOf("a"))
		require.Equal(t, "b", p.ComponentOf("b"))
		require.False(t, p.SameComponent("a", "b"))
		require.Equal(t, []string{"a", "b", "c"}, p.Nodes())
	})

	t.Run("merge_prefers_first_argument_on_equal_rank", func(t *testing.T) {
		p := New("a", "b")
		require.Equal(t, "a", p.Merge("a", "b"))
		require.Equal(t, "a", p.ComponentOf("b"))
	})

	t.Run("merge_is_transitive", func(t *testing.T) {
		p := New[string]()
		p.Merge("a", "b")
		p.Merge("c", "d")
		p.Merge("b", "d")

		root := p.ComponentOf("a")
		for _, v := range []string{"b", "c", "d"} {
			require.Equal(t, root, p.ComponentOf(v))
		}
		require.Len(t, p.Components(), 1)
		require.Equal(t, []string{"a", "b", "c", "d"}, p.Components()[root])
	})

	t.Run("merge_adds_unknown_values", func(t *testing.T) {
		p := New[int]()
		p.Merge(1, 2)
		require.Equal(t, 2, p.Len())
		require.True(t, p.SameComponent(1, 2))
	})

	t.Run("merge_same_component_is_noop", func(t *testing.T) {
		p := New("a", "b")
		p.Merge("a", "b")
		root := p.Merge("b", "a")
		require.Equal(t, p.ComponentOf("a"), root)
		require.Len(t, p.Components(), 1)
	})

	t.Run("long_chains_compress", func(t *testing.T) {
		p := New[int]()
		for i := 1; i < 100; i++ {
			p.Merge(i, i-1)
		}
		root := p.ComponentOf(0)
		for i := 0; i < 100; i++ {
			require.Equal(t, root, p.ComponentOf(i))
		}
	})

	t.Run("nodes_returns_a_copy", func(t *testing.T) {
		p := New("a")
		nodes := p.Nodes()
		nodes[0] = "z"
		require.Equal(t, []string{"a"}, p.Nodes())
	})
}

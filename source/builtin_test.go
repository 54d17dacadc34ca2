package source

import (
	"context"
	"testing"

	"github.com/arloliu/stdioworker/types"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	ctx := context.Background()

	t.Run("volume table", func(t *testing.T) {
		table, err := Builtin("volume").LoadTable(ctx)
		require.NoError(t, err)

		want := map[string]int{"part_a": 10, "part_b": 15, "part_c": 27, "part_d": 38}
		require.Equal(t, len(want), table.Len())
		for id, rows := range want {
			got, ok := table.Lookup(types.PartitionID(id))
			require.True(t, ok, id)
			require.Equal(t, rows, got, id)
		}
	})

	t.Run("latency table", func(t *testing.T) {
		table, err := Builtin("latency").LoadTable(ctx)
		require.NoError(t, err)

		want := map[string]int{"part_a": 10, "part_b": 5, "part_c": 12, "part_d": 11}
		require.Equal(t, len(want), table.Len())
		for id, delay := range want {
			got, ok := table.Lookup(types.PartitionID(id))
			require.True(t, ok, id)
			require.Equal(t, delay, got, id)
		}
	})

	t.Run("document copy is independent", func(t *testing.T) {
		doc := BuiltinDocument()
		require.NotEmpty(t, doc)

		doc[0] = '!'
		require.NotEqual(t, doc[0], BuiltinDocument()[0])
	})
}

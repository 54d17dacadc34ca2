package source

import (
	"context"
	"testing"

	"github.com/arloliu/stdioworker/types"
	"github.com/stretchr/testify/require"
)

func TestStatic_LoadTable(t *testing.T) {
	t.Run("returns all entries", func(t *testing.T) {
		src := NewStatic(map[string]int{"part_a": 10, "part_b": 15, "part_c": 27})

		table, err := src.LoadTable(context.Background())

		require.NoError(t, err)
		require.Equal(t, 3, table.Len())
		param, ok := table.Lookup("part_c")
		require.True(t, ok)
		require.Equal(t, 27, param)
	})

	t.Run("rejects empty map", func(t *testing.T) {
		_, err := NewStatic(map[string]int{}).LoadTable(context.Background())

		require.ErrorIs(t, err, types.ErrEmptyPolicyTable)
	})

	t.Run("does not track later changes to the input", func(t *testing.T) {
		entries := map[string]int{"p1": 100}
		src := NewStatic(entries)

		entries["p1"] = 999

		table, err := src.LoadTable(context.Background())
		require.NoError(t, err)
		param, _ := table.Lookup("p1")
		require.Equal(t, 100, param)
	})
}

package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPolicyTable(t *testing.T) {
	t.Parallel()

	t.Run("builds table from map", func(t *testing.T) {
		table, err := NewPolicyTable(map[string]int{"part_a": 10, "part_b": 15})

		require.NoError(t, err)
		require.Equal(t, 2, table.Len())

		param, ok := table.Lookup("part_a")
		require.True(t, ok)
		require.Equal(t, 10, param)
		require.True(t, table.Has("part_b"))
		require.False(t, table.Has("part_z"))
	})

	t.Run("copies input map", func(t *testing.T) {
		entries := map[string]int{"part_a": 10}
		table, err := NewPolicyTable(entries)
		require.NoError(t, err)

		entries["part_a"] = 99
		entries["part_b"] = 1

		param, _ := table.Lookup("part_a")
		require.Equal(t, 10, param)
		require.Equal(t, 1, table.Len())
	})

	t.Run("allows zero parameter", func(t *testing.T) {
		table, err := NewPolicyTable(map[string]int{"none": 0})

		require.NoError(t, err)
		param, ok := table.Lookup("none")
		require.True(t, ok)
		require.Zero(t, param)
	})

	t.Run("rejects empty table", func(t *testing.T) {
		_, err := NewPolicyTable(map[string]int{})
		require.ErrorIs(t, err, ErrEmptyPolicyTable)

		_, err = NewPolicyTable(nil)
		require.ErrorIs(t, err, ErrEmptyPolicyTable)
	})

	t.Run("rejects malformed entries", func(t *testing.T) {
		cases := []map[string]int{
			{"": 1},
			{" part_a": 1},
			{"part_a\t": 1},
			{"part_a": -1},
		}
		for _, entries := range cases {
			_, err := NewPolicyTable(entries)
			require.ErrorIs(t, err, ErrInvalidPolicyTable, "entries: %v", entries)
		}
	})
}

func TestPolicyTableIDs(t *testing.T) {
	t.Parallel()

	table, err := NewPolicyTable(map[string]int{"part_d": 38, "part_a": 10, "part_c": 27, "part_b": 15})
	require.NoError(t, err)

	require.Equal(t, []PartitionID{"part_a", "part_b", "part_c", "part_d"}, table.IDs())

	var zero PolicyTable
	require.Empty(t, zero.IDs())
	require.Zero(t, zero.Len())
}

func TestFormatLine(t *testing.T) {
	t.Parallel()

	require.Equal(t, "0:0:part_a", FormatLine(0, 0, "part_a"))
	require.Equal(t, "3:38:part_d", FormatLine(3, 38, "part_d"))
	require.Equal(t, "12:9:x", FormatLine(12, 9, PartitionID("x")))
}

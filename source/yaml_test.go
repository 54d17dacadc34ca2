package source

import (
	"context"
	"testing"

	"github.com/arloliu/stdioworker/types"
	"github.com/stretchr/testify/require"
)

const testDoc = `
variants:
  volume:
    unit: rows
    partitions:
      a: 1
      b: 2
  latency:
    unit: seconds
    partitions:
      a: 3
`

func TestYAML_LoadTable(t *testing.T) {
	ctx := context.Background()

	t.Run("selects variant", func(t *testing.T) {
		table, err := NewYAML([]byte(testDoc), "volume").LoadTable(ctx)

		require.NoError(t, err)
		require.Equal(t, []types.PartitionID{"a", "b"}, table.IDs())
	})

	t.Run("unknown variant", func(t *testing.T) {
		_, err := NewYAML([]byte(testDoc), "bursty").LoadTable(ctx)

		require.ErrorIs(t, err, types.ErrUnknownVariant)
		require.Contains(t, err.Error(), "latency volume")
	})

	t.Run("malformed document", func(t *testing.T) {
		_, err := NewYAML([]byte("variants: [1, 2"), "volume").LoadTable(ctx)

		require.ErrorIs(t, err, types.ErrInvalidPolicyTable)
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		doc := "variants:\n  volume:\n    partition:\n      a: 1\n"
		_, err := NewYAML([]byte(doc), "volume").LoadTable(ctx)

		require.ErrorIs(t, err, types.ErrInvalidPolicyTable)
	})

	t.Run("invalid entry", func(t *testing.T) {
		doc := "variants:\n  volume:\n    partitions:\n      a: -4\n"
		_, err := NewYAML([]byte(doc), "volume").LoadTable(ctx)

		require.ErrorIs(t, err, types.ErrInvalidPolicyTable)
		require.Contains(t, err.Error(), `variant "volume"`)
	})

	t.Run("empty variant table", func(t *testing.T) {
		doc := "variants:\n  volume:\n    unit: rows\n"
		_, err := NewYAML([]byte(doc), "volume").LoadTable(ctx)

		require.ErrorIs(t, err, types.ErrEmptyPolicyTable)
	})

	t.Run("canceled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := NewYAML([]byte(testDoc), "volume").LoadTable(cctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument([]byte(testDoc))

	require.NoError(t, err)
	require.Equal(t, []string{"latency", "volume"}, doc.VariantNames())
	require.Equal(t, "seconds", doc.Variants["latency"].Unit)
}

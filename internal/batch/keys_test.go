package batch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"order-photos-backend/internal/batch"
)

func TestSplit(t *testing.T) {
	values := []string{"a", "b", "", "c", "d", "e"}

	batches, err := batch.Split(values, 2)
	require.NoError(t, err)
	require.Len(t, batches, 3)

	assert.Equal(t, []string{"a", "b"}, batches[0].Values())
	assert.Equal(t, []string{"c", "d"}, batches[1].Values())
	assert.Equal(t, []string{"e"}, batches[2].Values())
	for _, b := range batches {
		assert.LessOrEqual(t, b.Len(), b.Limit())
	}
}

func TestSplit_Empty(t *testing.T) {
	batches, err := batch.Split(nil, 10)
	require.NoError(t, err)
	assert.Empty(t, batches)
}

func TestSplit_InvalidSize(t *testing.T) {
	_, err := batch.Split([]string{"a"}, 0)
	assert.ErrorIs(t, err, batch.ErrInvalidSize)
}

func TestNewKeys_ExceedsLimit(t *testing.T) {
	_, err := batch.NewKeys([]string{"a", "b", "c"}, 2)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds limit 2")
}

func TestNewKeys_DropsEmpty(t *testing.T) {
	keys, err := batch.NewKeys([]string{"", "a", "", "b", ""}, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys.Values())
}

func TestKeys_ValuesIsCopy(t *testing.T) {
	keys, err := batch.NewKeys([]string{"a"}, 1)
	require.NoError(t, err)

	v := keys.Values()
	v[0] = "mutated"
	assert.Equal(t, []string{"a"}, keys.Values())
}

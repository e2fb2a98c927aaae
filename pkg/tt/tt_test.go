package tt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zugzwang/pkg/position"
)

func TestProbeMiss(t *testing.T) {
	table := New(4)
	_, ok := table.Probe(0xdeadbeef)
	assert.False(t, ok)
}

func TestStoreThenProbe(t *testing.T) {
	table := New(4)
	pos, err := position.NewFromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	moves := pos.LegalMoves()
	require.NotEmpty(t, moves)

	key := pos.Key()
	table.Store(key, moves[0], 42, 6, Exact)

	entry, ok := table.Probe(key)
	require.True(t, ok)
	assert.Equal(t, key, entry.Key)
	assert.True(t, entry.BestMove.Equal(moves[0]))
	assert.Equal(t, int32(42), entry.Value)
	assert.Equal(t, 6, entry.Depth)
	assert.Equal(t, Exact, entry.Flag)
}

func TestStoreIsAlwaysReplace(t *testing.T) {
	table := New(1) // two slots, so keys 0 and 2 are guaranteed to collide
	table.Store(0, position.NoMove, 1, 1, Exact)
	table.Store(2, position.NoMove, 2, 2, Lower)

	// Key 2 shares an index with key 0 under a one-bit mask; the
	// second store must win unconditionally.
	entry, ok := table.Probe(2)
	require.True(t, ok)
	assert.Equal(t, int32(2), entry.Value)

	_, ok = table.Probe(0)
	assert.False(t, ok, "always-replace must have evicted the colliding key")
}

func TestClearRemovesAllEntries(t *testing.T) {
	table := New(3)
	table.Store(5, position.NoMove, 7, 1, Exact)
	table.Clear()
	_, ok := table.Probe(5)
	assert.False(t, ok)
}

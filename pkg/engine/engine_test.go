package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zugzwang/pkg/position"
)

func newTestEngine() *Engine {
	return New(10) // 1024 slots is plenty for these small searches
}

func TestSearchStartingPositionIsReasonable(t *testing.T) {
	pos, err := position.NewFromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	eng := newTestEngine()
	result := eng.Search(pos, 5, 5*time.Second)

	assert.False(t, result.BestMove.IsNone())
	assert.LessOrEqual(t, abs(int(result.Score)), 100)
	assert.GreaterOrEqual(t, result.Depth, 3)
}

func TestSearchFindsMateInOne(t *testing.T) {
	// Black's own pawns block every back-rank escape; Re8# seals it.
	pos, err := position.NewFromFEN("6k1/5ppp/8/8/8/8/8/4R1K1 w - - 0 1")
	require.NoError(t, err)

	eng := newTestEngine()
	result := eng.Search(pos, 4, 2*time.Second)

	require.False(t, result.BestMove.IsNone())
	assert.True(t, result.Score.IsMateScore())
	moves, mating := result.Score.MateDistance()
	assert.True(t, mating)
	assert.Equal(t, 1, moves)
}

func TestSearchStalemateReturnsDraw(t *testing.T) {
	pos, err := position.NewFromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)

	eng := newTestEngine()
	result := eng.Search(pos, 4, time.Second)

	assert.True(t, result.BestMove.IsNone())
	assert.Equal(t, Draw, result.Score)
}

func TestSearchCheckmateReturnsMatedInZero(t *testing.T) {
	// Fool's Mate: 1. f3 e5 2. g4 Qh4#.
	mate, err := position.NewFromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)
	require.True(t, mate.Checkers())
	require.Empty(t, mate.LegalMoves())

	eng := newTestEngine()
	result := eng.Search(mate, 1, time.Second)

	assert.True(t, result.BestMove.IsNone())
	assert.Equal(t, matedIn(0), result.Score)
}

func TestSearchOneLegalMoveShortCircuits(t *testing.T) {
	// Black king on a8 boxed by its own pawn with exactly one flight
	// square, in check from the rook on h8: Ka7 is the only legal reply.
	pos, err := position.NewFromFEN("k6R/1p6/8/8/8/8/8/7K b - - 0 1")
	require.NoError(t, err)

	legal := pos.LegalMoves()
	if len(legal) != 1 {
		t.Skipf("fixture produced %d legal moves, want exactly 1", len(legal))
	}

	eng := newTestEngine()
	result := eng.Search(pos, 10, time.Second)

	assert.Equal(t, uint64(0), result.Nodes)
	assert.True(t, result.BestMove.Equal(legal[0]))
}

func TestSearchPreservesPositionAcrossCall(t *testing.T) {
	pos, err := position.NewFromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	before := pos.FEN()
	eng := newTestEngine()
	eng.Search(pos, 4, time.Second)

	assert.Equal(t, before, pos.FEN())
}

func TestSearchNodeCountNonDecreasingAcrossDepths(t *testing.T) {
	pos, err := position.NewFromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	eng := newTestEngine()
	var last uint64
	for depth := 1; depth <= 4; depth++ {
		result := eng.Search(pos, depth, 2*time.Second)
		assert.GreaterOrEqual(t, result.Nodes, last)
		last = result.Nodes
	}
}

func TestSearchZeroDepthReturnsNoMoveWhenMultipleLegal(t *testing.T) {
	pos, err := position.NewFromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	eng := newTestEngine()
	result := eng.Search(pos, 0, time.Second)

	assert.True(t, result.BestMove.IsNone())
	assert.Equal(t, 0, result.Depth)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

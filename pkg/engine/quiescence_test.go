package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zugzwang/pkg/position"
)

func TestQuiescenceQuietPositionReturnsStandPat(t *testing.T) {
	pos, err := position.NewFromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	eng := newTestEngine()
	score := eng.quiescence(pos, 0, -Infinite, Infinite)

	assert.Equal(t, evaluate(pos), score)
}

func TestQuiescenceSettlesHangingCapture(t *testing.T) {
	// White to move; the e5 pawn is undefended and the f3 knight can
	// take it, so quiescence should find the capture and return a score
	// strictly better than the quiet stand-pat value.
	pos, err := position.NewFromFEN("rnbqkbnr/pppp1ppp/8/4p3/8/5N2/PPPPPPPP/RNBQKB1R w KQkq - 0 2")
	require.NoError(t, err)

	eng := newTestEngine()
	standPat := evaluate(pos)
	score := eng.quiescence(pos, 0, -Infinite, Infinite)

	assert.Greater(t, score, standPat)
}

func TestQuiescencePreservesPosition(t *testing.T) {
	pos, err := position.NewFromFEN("rnbqkbnr/pppp1ppp/8/4p3/4B3/8/PPPP1PPP/RNBQK1NR w KQkq - 0 3")
	require.NoError(t, err)

	before := pos.FEN()
	eng := newTestEngine()
	eng.quiescence(pos, 0, -Infinite, Infinite)

	assert.Equal(t, before, pos.FEN())
}

func TestQuiescenceInCheckSearchesEvasionsNotJustCaptures(t *testing.T) {
	// Black king in check from the rook on e7, which the white king
	// defends, so quiet (non-capturing) king moves are the only
	// escapes. A captures-only quiescence would find no moves and
	// wrongly stand-pat on a position that is actually losing; evasions
	// must be searched.
	pos, err := position.NewFromFEN("4k3/4R3/4K3/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	require.True(t, pos.Checkers())

	evasions := pos.EvasionMoves()
	require.NotEmpty(t, evasions)

	eng := newTestEngine()
	score := eng.quiescence(pos, 0, -Infinite, Infinite)

	assert.Greater(t, score, -Infinite)
}

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromFENStartingPosition(t *testing.T) {
	pos, err := NewFromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	assert.Equal(t, White, pos.SideToMove())
	assert.False(t, pos.Checkers())
	assert.Len(t, pos.LegalMoves(), 20)
}

func TestDoMoveUndoMoveRestoresState(t *testing.T) {
	pos, err := NewFromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	before := pos.FEN()
	beforeKey := pos.Key()

	moves := pos.LegalMoves()
	require.NotEmpty(t, moves)
	m := moves[0]

	pos.DoMove(m)
	assert.NotEqual(t, before, pos.FEN())

	pos.UndoMove(m)
	assert.Equal(t, before, pos.FEN())
	assert.Equal(t, beforeKey, pos.Key())
}

func TestDoNullMoveUndoNullMoveRestoresState(t *testing.T) {
	pos, err := NewFromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	before := pos.FEN()
	beforeKey := pos.Key()

	pos.DoNullMove()
	assert.Equal(t, Black, pos.SideToMove())
	assert.False(t, pos.Checkers())

	pos.UndoNullMove()
	assert.Equal(t, before, pos.FEN())
	assert.Equal(t, beforeKey, pos.Key())
}

func TestCheckersDetectsCheck(t *testing.T) {
	pos, err := NewFromFEN("4k3/8/8/8/8/8/4R3/4K2R b K - 0 1")
	require.NoError(t, err)
	assert.True(t, pos.Checkers())
}

func TestStalemateHasNoLegalMoves(t *testing.T) {
	pos, err := NewFromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	assert.False(t, pos.Checkers())
	assert.Empty(t, pos.LegalMoves())
}

func TestCaptureMovesAreSubsetOfLegalMoves(t *testing.T) {
	pos, err := NewFromFEN("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2")
	require.NoError(t, err)

	legal := pos.LegalMoves()
	captures := pos.CaptureMoves()
	assert.NotEmpty(t, captures)
	for _, c := range captures {
		found := false
		for _, l := range legal {
			if l.Equal(c) {
				found = true
				break
			}
		}
		assert.True(t, found, "capture %s not found among legal moves", c)
	}
}

func TestInsufficientMaterialIsDraw(t *testing.T) {
	pos, err := NewFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, pos.IsDraw(0))
}

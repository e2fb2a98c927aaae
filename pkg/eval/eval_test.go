package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zugzwang/pkg/position"
)

func TestStartingPositionIsSymmetric(t *testing.T) {
	pos, err := position.NewFromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	assert.Equal(t, Value(0), Evaluate(pos))
}

func TestEvaluateIsSideToMoveRelative(t *testing.T) {
	// The same unbalanced board with either side to move: the two
	// scores must be negations of each other.
	white, err := position.NewFromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/1NBQKBNR w Kkq - 0 1")
	require.NoError(t, err)
	black, err := position.NewFromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/1NBQKBNR b Kkq - 0 1")
	require.NoError(t, err)

	assert.Equal(t, Evaluate(white), -Evaluate(black))
}

func TestMaterialDeficitIsNegative(t *testing.T) {
	// White is missing its queen's rook; black has the full set.
	pos, err := position.NewFromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/1NBQKBNR w Kkq - 0 1")
	require.NoError(t, err)
	assert.Less(t, Evaluate(pos), Value(0))
}

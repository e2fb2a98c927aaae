package engine

import "zugzwang/pkg/position"

// quiescence implements §4.3 step for step: a capture-only (evasion-
// only when in check) search that settles the horizon before it is
// scored, so the main search never evaluates a position in the middle
// of a capture sequence. Ported from original_source/src/search.cpp's
// qsearch, fail-hard throughout like alphabeta. Unlike alphabeta, this
// never checks the clock: original_source doesn't either, trusting the
// capture list to run dry quickly.
//
// The stand-pat cutoff below is taken unconditionally, even when in
// check: original_source does the same, which means a position that
// is actually checkmate at the horizon is scored by its (materially
// meaningless) static eval rather than recognized as mate. This is a
// known hazard carried over deliberately, not a bug introduced here;
// see DESIGN.md.
func (e *Engine) quiescence(pos *position.Position, ply int, alpha, beta Value) Value {
	if ply >= MaxPly-1 {
		return evaluate(pos)
	}

	e.qnodes++

	standPat := evaluate(pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	var moves []position.Move
	if pos.Checkers() {
		moves = pos.EvasionMoves()
	} else {
		moves = pos.CaptureMoves()
	}

	scores := make([]int, len(moves))
	for i, m := range moves {
		scores[i] = e.scoreMove(pos, m, position.NoMove, ply)
	}

	for i := range moves {
		selectNext(moves, scores, i)
		m := moves[i]

		pos.DoMove(m)
		score := -e.quiescence(pos, ply+1, -beta, -alpha)
		pos.UndoMove(m)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

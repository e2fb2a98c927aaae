package engine

import (
	"zugzwang/pkg/eval"
	"zugzwang/pkg/position"
	"zugzwang/pkg/tt"
)

// alphabeta is the negamax core, per §4.4. It is the direct
// generalisation of original_source/src/search.cpp's search(): same
// thirteen-step shape, same fail-hard window discipline, rehosted
// onto the make/unmake position.Position adapter instead of a
// recursive tree of Node copies.
func (e *Engine) alphabeta(pos *position.Position, depth, ply int, alpha, beta Value, doNull bool) Value {
	// 1. Time check, throttled so the deadline read doesn't dominate
	// at low depths.
	e.nodes++
	if e.nodes&2047 == 0 && e.pastDeadline() {
		e.stop = true
	}
	if e.stop {
		return evaluate(pos)
	}

	// 2. Horizon guard: refuse to recurse past MaxPly regardless of
	// requested depth, so mate distances stay representable.
	if ply >= MaxPly-1 {
		return evaluate(pos)
	}

	// 3. Leaf: hand off to quiescence.
	if depth <= 0 {
		return e.quiescence(pos, ply, alpha, beta)
	}

	// 5. Draw detection. Skipped at the root (ply == 0): the root is
	// always a position the caller actually wants searched, even if
	// it happens to repeat a position from before the search began.
	if ply > 0 && (pos.IsDraw(ply) || pos.Rule50Count() >= 100) {
		return Draw
	}

	originalAlpha := alpha

	// 6. TT probe. Any hit remembers the stored move for ordering;
	// only a hit recorded at least as deep as the current depth is
	// trusted to resolve the node outright.
	var ttMove position.Move
	key := pos.Key()
	if entry, ok := e.tt.Probe(key); ok {
		e.ttHits++
		ttMove = entry.BestMove
		if entry.Depth >= depth {
			score := Value(entry.Value)
			switch {
			case entry.Flag == tt.Exact:
				return score
			case entry.Flag == tt.Lower && score >= beta:
				return beta
			case entry.Flag == tt.Upper && score <= alpha:
				return alpha
			}
		}
	}

	// 7. Null-move pruning. The recursive call passes doNull = false so
	// two null moves can never happen back to back.
	inCheck := pos.Checkers()
	if doNull && ply > 0 && depth >= 3 && !inCheck && e.hasNonPawnMaterial(pos) {
		const reduction = 3
		pos.DoNullMove()
		score := -e.alphabeta(pos, depth-1-reduction, ply+1, -beta, -beta+1, false)
		pos.UndoNullMove()
		if e.stop {
			return evaluate(pos)
		}
		if score >= beta {
			e.nullCutoffs++
			return beta
		}
	}

	// 8. Move generation, with checkmate/stalemate resolution.
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		if inCheck {
			return matedIn(ply)
		}
		return Draw
	}

	// 9. Score moves for ordering.
	scores := make([]int, len(moves))
	for i, m := range moves {
		scores[i] = e.scoreMove(pos, m, ttMove, ply)
	}

	var (
		bestScore = -Infinite
		bestMove  = position.NoMove
	)

	// 10-11. Selection-sort iteration over the move list.
	for i := range moves {
		selectNext(moves, scores, i)
		m := moves[i]

		pos.DoMove(m)
		score := -e.alphabeta(pos, depth-1, ply+1, -beta, -alpha, true)
		pos.UndoMove(m)

		if e.stop {
			// Mid-iteration abort: discard this node's result rather
			// than storing a value built on a truncated search.
			return bestScore
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if bestScore > alpha {
			alpha = bestScore
		}
		if alpha >= beta {
			if !pos.Capture(m) {
				e.killers.record(ply, m)
				e.history.add(pos.SideToMove(), m, depth)
			}
			break
		}
	}

	// 12. TT store.
	flag := tt.Exact
	switch {
	case bestScore <= originalAlpha:
		flag = tt.Upper
	case bestScore >= beta:
		flag = tt.Lower
	}
	e.tt.Store(key, bestMove, int32(bestScore), depth, flag)

	// 13. Return.
	return bestScore
}

// hasNonPawnMaterial guards null-move pruning against zugzwang-prone
// endgames, where a free pass can manufacture a cutoff that does not
// exist in the real game. original_source's null-move condition
// carries no such guard; this hook is §9's explicitly invited
// mitigation for the zugzwang hazard the spec calls out.
func (e *Engine) hasNonPawnMaterial(pos *position.Position) bool {
	for sq := position.Square(0); sq < 64; sq++ {
		pc := pos.PieceOn(sq)
		if pc == position.NoPiece {
			continue
		}
		if pc.Color != pos.SideToMove() {
			continue
		}
		switch pc.Type {
		case position.Knight, position.Bishop, position.Rook, position.Queen:
			return true
		}
	}
	return false
}

func evaluate(pos *position.Position) Value {
	return Value(eval.Evaluate(pos))
}

package engine

import "zugzwang/pkg/position"

// Move ordering scores, per §4.2. Grounded directly on
// original_source/src/search.cpp's score_move and mvv_lva_scores, and
// cross-checked against ChizhovVadim-CounterGo/movesort.go's and
// csgarlock-Ghobos/Search.go's killer/history shapes.
const (
	scoreTTMove      = 1_000_000
	scoreCaptureBase = 900_000
	scoreKiller0     = 800_000
	scoreKiller1     = 799_000
)

// mvvBase/victimRank encode the same MVV-LVA table as
// original_source's mvv_lva_scores: prefer capturing a high-value
// victim with a low-value attacker.
var mvvBase = map[position.PieceType]int{
	position.Pawn:   16,
	position.Knight: 26,
	position.Bishop: 36,
	position.Rook:   46,
	position.Queen:  56,
}

var victimRank = map[position.PieceType]int{
	position.Pawn:   1,
	position.Knight: 2,
	position.Bishop: 3,
	position.Rook:   4,
	position.Queen:  5,
	position.King:   6,
}

func mvvLva(attacker, victim position.PieceType) int {
	if _, ok := mvvBase[attacker]; !ok {
		// King or NoPieceType as attacker: original_source's table
		// carries an all-zero row here too.
		return 0
	}
	return mvvBase[victim] - victimRank[attacker]
}

func colorIndex(c position.Color) int {
	if c == position.Black {
		return 1
	}
	return 0
}

// scoreMove implements §4.2's five-way ordering score.
func (e *Engine) scoreMove(pos *position.Position, m, ttMove position.Move, ply int) int {
	if m.Equal(ttMove) {
		return scoreTTMove
	}
	// En passant's captured pawn isn't on the destination square, so
	// it has no "piece occupies the destination" victim to read — per
	// §4.2 step 2 and original_source's score_move, it falls through
	// the MVV-LVA bucket entirely rather than getting a synthesized
	// pawn-takes-pawn score.
	if pos.Capture(m) && m.Kind() != position.EnPassant {
		if victim := pos.PieceOn(m.To()); victim != position.NoPiece {
			attacker := pos.MovedPiece(m)
			return scoreCaptureBase + mvvLva(attacker.Type, victim.Type)*1000
		}
	}
	if ply >= 0 && ply < MaxPly {
		if m.Equal(e.killers[ply][0]) {
			return scoreKiller0
		}
		if m.Equal(e.killers[ply][1]) {
			return scoreKiller1
		}
	}
	return int(e.history.get(pos.SideToMove(), m))
}

// selectNext performs one step of §4.2's selection sort: find the
// highest-scoring move in [i, len(scores)) and swap it into slot i.
// Paired with an early exit on beta cutoff, this amounts to lazily
// sorting only as much of the move list as the search actually
// visits.
func selectNext(moves []position.Move, scores []int, i int) {
	best := i
	for j := i + 1; j < len(scores); j++ {
		if scores[j] > scores[best] {
			best = j
		}
	}
	if best != i {
		moves[i], moves[best] = moves[best], moves[i]
		scores[i], scores[best] = scores[best], scores[i]
	}
}

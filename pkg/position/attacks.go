package position

import "github.com/notnil/chess"

// computeInCheck answers "is the side to move in pos attacked", from
// scratch, using a plain mailbox scan. It is only called once, when a
// Position is constructed, where there is no arrival move to read a
// Check tag from (every other node's in-check status is carried forward
// incrementally in Position.inCheck). It generates no moves and does
// not filter legality; it only answers whether one square is attacked.
func computeInCheck(pos *chess.Position) bool {
	board := pos.Board()
	turn := pos.Turn()

	var kingSq chess.Square = -1
	for sq := chess.A1; sq <= chess.H8; sq++ {
		pc := board.Piece(sq)
		if pc != chess.NoPiece && pc.Color() == turn && pc.Type() == chess.King {
			kingSq = sq
			break
		}
	}
	if kingSq < 0 {
		return false
	}

	opponent := chess.White
	if turn == chess.White {
		opponent = chess.Black
	}
	return squareAttackedBy(board, kingSq, opponent)
}

func squareAt(file, rank int) (chess.Square, bool) {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return 0, false
	}
	return chess.Square(rank*8 + file), true
}

var knightOffsets = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
var diagonalDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var orthogonalDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// squareAttackedBy reports whether any piece of color `by` attacks
// `target` on `board`.
func squareAttackedBy(board *chess.Board, target chess.Square, by chess.Color) bool {
	tf, tr := int(target)%8, int(target)/8

	for _, o := range knightOffsets {
		if sq, ok := squareAt(tf+o[0], tr+o[1]); ok {
			if pc := board.Piece(sq); pc != chess.NoPiece && pc.Color() == by && pc.Type() == chess.Knight {
				return true
			}
		}
	}

	for df := -1; df <= 1; df++ {
		for dr := -1; dr <= 1; dr++ {
			if df == 0 && dr == 0 {
				continue
			}
			if sq, ok := squareAt(tf+df, tr+dr); ok {
				if pc := board.Piece(sq); pc != chess.NoPiece && pc.Color() == by && pc.Type() == chess.King {
					return true
				}
			}
		}
	}

	// A pawn of color `by` attacks target iff target lies one square
	// diagonally ahead (in `by`'s direction of travel) of the pawn.
	pawnRankOffset := -1
	if by == chess.Black {
		pawnRankOffset = 1
	}
	for _, df := range [2]int{-1, 1} {
		if sq, ok := squareAt(tf+df, tr+pawnRankOffset); ok {
			if pc := board.Piece(sq); pc != chess.NoPiece && pc.Color() == by && pc.Type() == chess.Pawn {
				return true
			}
		}
	}

	for _, d := range diagonalDirs {
		if slideAttacks(board, tf, tr, d, by, chess.Bishop, chess.Queen) {
			return true
		}
	}
	for _, d := range orthogonalDirs {
		if slideAttacks(board, tf, tr, d, by, chess.Rook, chess.Queen) {
			return true
		}
	}

	return false
}

func slideAttacks(board *chess.Board, tf, tr int, dir [2]int, by chess.Color, sliders ...chess.PieceType) bool {
	f, r := tf+dir[0], tr+dir[1]
	for {
		sq, ok := squareAt(f, r)
		if !ok {
			return false
		}
		pc := board.Piece(sq)
		if pc != chess.NoPiece {
			if pc.Color() == by {
				for _, t := range sliders {
					if pc.Type() == t {
						return true
					}
				}
			}
			return false
		}
		f += dir[0]
		r += dir[1]
	}
}

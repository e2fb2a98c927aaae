// Package eval is the pluggable leaf oracle the spec treats as an
// external collaborator: material plus piece-square tables, in
// centipawns, from the side-to-move's perspective. It is a direct
// port of original_source/src/evaluate.cpp; no endgame knowledge or
// tapering is added, matching the spec's Non-goal on endgame
// knowledge.
package eval

import "zugzwang/pkg/position"

// Value is a centipawn score. It mirrors engine.Value but this
// package does not depend on pkg/engine, since the engine depends on
// this package, not the other way around.
type Value int32

var pieceValues = map[position.PieceType]Value{
	position.Pawn:   100,
	position.Knight: 320,
	position.Bishop: 330,
	position.Rook:   500,
	position.Queen:  900,
}

var pawnTable = [64]Value{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [64]Value{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopTable = [64]Value{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookTable = [64]Value{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenTable = [64]Value{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingMiddleTable = [64]Value{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

// flip mirrors a square vertically, the way the spec's White-relative
// tables are reused for Black.
func flip(sq position.Square) position.Square {
	return position.Square(int(sq) ^ 56)
}

func psqtValue(pc position.Piece, sq position.Square) Value {
	s := sq
	if pc.Color == position.Black {
		s = flip(sq)
	}

	value := pieceValues[pc.Type]
	switch pc.Type {
	case position.Pawn:
		value += pawnTable[s]
	case position.Knight:
		value += knightTable[s]
	case position.Bishop:
		value += bishopTable[s]
	case position.Rook:
		value += rookTable[s]
	case position.Queen:
		value += queenTable[s]
	case position.King:
		value += kingMiddleTable[s]
	}

	if pc.Color == position.Black {
		return -value
	}
	return value
}

// Evaluate returns a static score in centipawns, from the
// side-to-move's perspective. Never falls in the mate band.
func Evaluate(pos *position.Position) Value {
	var score Value
	for sq := position.Square(0); sq < 64; sq++ {
		pc := pos.PieceOn(sq)
		if pc != position.NoPiece {
			score += psqtValue(pc, sq)
		}
	}
	if pos.SideToMove() == position.Black {
		return -score
	}
	return score
}

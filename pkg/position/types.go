// Package position adapts github.com/notnil/chess to the narrow
// contract the search core needs: a Zobrist-like key, strictly paired
// make/unmake (including a null move the library doesn't support
// natively), and the handful of per-position queries alpha-beta and
// quiescence search consult on every node.
package position

import (
	"github.com/notnil/chess"
)

// Color mirrors chess.Color so callers of this package never need to
// import notnil/chess directly.
type Color int8

const (
	NoColor Color = iota
	White
	Black
)

func fromChessColor(c chess.Color) Color {
	switch c {
	case chess.White:
		return White
	case chess.Black:
		return Black
	default:
		return NoColor
	}
}

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	if c == Black {
		return White
	}
	return NoColor
}

// PieceType enumerates the six chessmen, plus a NoPieceType sentinel.
type PieceType int8

const (
	NoPieceType PieceType = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

func fromChessPieceType(t chess.PieceType) PieceType {
	switch t {
	case chess.King:
		return King
	case chess.Queen:
		return Queen
	case chess.Rook:
		return Rook
	case chess.Bishop:
		return Bishop
	case chess.Knight:
		return Knight
	case chess.Pawn:
		return Pawn
	default:
		return NoPieceType
	}
}

func (t PieceType) toChessPieceType() chess.PieceType {
	switch t {
	case King:
		return chess.King
	case Queen:
		return chess.Queen
	case Rook:
		return chess.Rook
	case Bishop:
		return chess.Bishop
	case Knight:
		return chess.Knight
	case Pawn:
		return chess.Pawn
	default:
		return chess.NoPieceType
	}
}

// Piece packs a color and a piece type. NoPiece is the zero value.
type Piece struct {
	Color Color
	Type  PieceType
}

// NoPiece is the distinguished "empty square" piece.
var NoPiece = Piece{}

func fromChessPiece(p chess.Piece) Piece {
	if p == chess.NoPiece {
		return NoPiece
	}
	return Piece{Color: fromChessColor(p.Color()), Type: fromChessPieceType(p.Type())}
}

// Square is a board square, A1..H8, numbered the way notnil/chess
// numbers them (A1=0 ... H8=63).
type Square int8

// NoSquare is the distinguished "no square" sentinel.
const NoSquare Square = -1

func fromChessSquare(s chess.Square) Square { return Square(s) }

func (s Square) toChessSquare() chess.Square { return chess.Square(s) }

// File returns 0..7 for a..h.
func (s Square) File() int { return int(s) % 8 }

// Rank returns 0..7 for rank 1..8.
func (s Square) Rank() int { return int(s) / 8 }

// String renders the square in algebraic notation, e.g. "e4".
func (s Square) String() string {
	if s == NoSquare {
		return "-"
	}
	return string(rune('a'+s.File())) + string(rune('1'+s.Rank()))
}

// MoveKind classifies a Move the way §3 of the spec requires.
type MoveKind int8

const (
	Normal MoveKind = iota
	Castling
	EnPassant
	Promotion
)

// Move is an opaque, comparable move handle. The zero value is the
// distinguished NONE move.
type Move struct {
	inner *chess.Move
}

// NoMove is the distinguished sentinel move.
var NoMove = Move{}

// IsNone reports whether this is the NONE sentinel.
func (m Move) IsNone() bool { return m.inner == nil }

// Equal compares two moves for equality. NONE only equals NONE.
func (m Move) Equal(other Move) bool {
	if m.inner == nil || other.inner == nil {
		return m.inner == nil && other.inner == nil
	}
	return m.inner.S1() == other.inner.S1() &&
		m.inner.S2() == other.inner.S2() &&
		m.inner.Promo() == other.inner.Promo()
}

// From returns the source square.
func (m Move) From() Square {
	if m.inner == nil {
		return NoSquare
	}
	return fromChessSquare(m.inner.S1())
}

// To returns the destination square.
func (m Move) To() Square {
	if m.inner == nil {
		return NoSquare
	}
	return fromChessSquare(m.inner.S2())
}

// Promotion returns the promoted-to piece type, or NoPieceType.
func (m Move) Promotion() PieceType {
	if m.inner == nil {
		return NoPieceType
	}
	return fromChessPieceType(m.inner.Promo())
}

// Kind classifies the move per §3.
func (m Move) Kind() MoveKind {
	if m.inner == nil {
		return Normal
	}
	if m.inner.HasTag(chess.KingSideCastle) || m.inner.HasTag(chess.QueenSideCastle) {
		return Castling
	}
	if m.inner.HasTag(chess.EnPassant) {
		return EnPassant
	}
	if m.inner.Promo() != chess.NoPieceType {
		return Promotion
	}
	return Normal
}

// isCapture reports whether the underlying library tagged this move
// as a capture, including en passant.
func (m Move) isCapture() bool {
	if m.inner == nil {
		return false
	}
	return m.inner.HasTag(chess.Capture) || m.inner.HasTag(chess.EnPassant)
}

// String renders the move in long algebraic form: <file><rank><file><rank>
// with an optional lowercase promotion suffix, or "0000" for NONE.
func (m Move) String() string {
	if m.inner == nil {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	switch m.Promotion() {
	case Knight:
		s += "n"
	case Bishop:
		s += "b"
	case Rook:
		s += "r"
	case Queen:
		s += "q"
	}
	return s
}

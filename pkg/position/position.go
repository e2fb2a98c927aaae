package position

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/notnil/chess"
	"github.com/pkg/errors"
)

// MaxMoves bounds how many moves a generation call can produce, per
// §6's "caller-supplied buffer of size >= MAX_MOVES (256)". The
// library backing this adapter returns slices rather than writing
// into a caller buffer, but legal chess positions never approach this
// figure, so it is kept only as a documented sanity bound.
const MaxMoves = 256

// frame is the scratch block pushed by DoMove/DoNullMove and popped by
// the matching UndoMove/UndoNullMove. It plays the role of the spec's
// StateInfo: owned by the caller's stack frame, strictly paired.
type frame struct {
	current *chess.Position
	inCheck bool
	clock   int
	ply     int
}

// Position is the search core's sole view of the board. It wraps a
// *chess.Position and layers on the queries and the do/undo discipline
// the core needs but the wrapped library does not expose directly.
type Position struct {
	current *chess.Position
	inCheck bool
	clock   int // half-moves since the last pawn move or capture
	ply     int // half-moves played since this Position was constructed
	keys    []uint64
	stack   []frame
}

// NewFromFEN constructs a Position from a FEN string. Non-chess960.
func NewFromFEN(fen string) (*Position, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, errors.Wrap(err, "parse FEN")
	}
	game := chess.NewGame(opt)
	cur := game.Position()
	p := &Position{current: cur}
	if fields := strings.Fields(fen); len(fields) >= 5 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			p.clock = n
		}
	}
	p.inCheck = computeInCheck(cur)
	p.keys = []uint64{p.Key()}
	return p, nil
}

// Key returns a 64-bit hash of the position, folded from the wrapped
// library's 128-bit Position.Hash(). This is not a true incremental
// Zobrist key (§1 treats the position layer's internals as an
// external collaborator, out of scope); it is good enough for a
// 2^20-slot transposition table and repetition detection.
func (p *Position) Key() uint64 {
	h := p.current.Hash()
	return binary.BigEndian.Uint64(h[:8]) ^ binary.BigEndian.Uint64(h[8:])
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color { return fromChessColor(p.current.Turn()) }

// PieceOn returns the piece occupying sq, or NoPiece.
func (p *Position) PieceOn(sq Square) Piece {
	return fromChessPiece(p.current.Board().Piece(sq.toChessSquare()))
}

// MovedPiece returns the piece that would move if m were played from
// the current position. m must not yet have been played.
func (p *Position) MovedPiece(m Move) Piece { return p.PieceOn(m.From()) }

// Capture reports whether m is a capture, including en passant.
func (p *Position) Capture(m Move) bool { return m.isCapture() }

// Checkers reports whether the side to move is in check.
func (p *Position) Checkers() bool { return p.inCheck }

// Rule50Count returns the half-move clock since the last pawn move or
// capture.
func (p *Position) Rule50Count() int { return p.clock }

// GamePly returns the number of half-moves played on this Position
// since construction.
func (p *Position) GamePly() int { return p.ply }

// FEN renders the current position.
func (p *Position) FEN() string { return p.current.String() }

// IsDraw reports threefold repetition (checked against this
// Position's own move history, not upstream game state) or
// insufficient mating material. The 50/75-move rule is deliberately
// not folded in here; callers check Rule50Count() separately, per
// §4.4 step 5.
func (p *Position) IsDraw(gamePly int) bool {
	target := p.Key()
	seen := 0
	for _, k := range p.keys {
		if k == target {
			seen++
			if seen >= 3 {
				return true
			}
		}
	}
	return p.insufficientMaterial()
}

func (p *Position) insufficientMaterial() bool {
	board := p.current.Board()
	heavyOrPawn := 0
	minors := 0
	for sq := chess.A1; sq <= chess.H8; sq++ {
		pc := board.Piece(sq)
		if pc == chess.NoPiece || pc.Type() == chess.King {
			continue
		}
		switch pc.Type() {
		case chess.Pawn, chess.Queen, chess.Rook:
			heavyOrPawn++
		case chess.Bishop, chess.Knight:
			minors++
		}
	}
	return heavyOrPawn == 0 && minors <= 1
}

// LegalMoves returns all legal moves, corresponding to generation
// kind LEGAL.
func (p *Position) LegalMoves() []Move {
	vm := p.current.ValidMoves()
	out := make([]Move, len(vm))
	for i, mv := range vm {
		out[i] = Move{inner: mv}
	}
	return out
}

// CaptureMoves returns legal captures (including en passant),
// corresponding to generation kind CAPTURES.
func (p *Position) CaptureMoves() []Move {
	vm := p.current.ValidMoves()
	out := make([]Move, 0, len(vm))
	for _, mv := range vm {
		if mv.HasTag(chess.Capture) || mv.HasTag(chess.EnPassant) {
			out = append(out, Move{inner: mv})
		}
	}
	return out
}

// EvasionMoves returns the moves available while in check. Every
// legal move while in check is, by definition, an evasion, so this
// is LegalMoves under another name; it exists so callers can express
// §4.3's "evasions if checkers(), else captures only" without
// checking Checkers() twice.
func (p *Position) EvasionMoves() []Move { return p.LegalMoves() }

// DoMove plays m, pushing the prior state so UndoMove can restore it.
// Strictly paired with UndoMove; must not be interleaved with another
// live DoMove/DoNullMove on the same Position.
func (p *Position) DoMove(m Move) {
	p.stack = append(p.stack, frame{current: p.current, inCheck: p.inCheck, clock: p.clock, ply: p.ply})

	moved := p.MovedPiece(m)
	quiet := !m.isCapture() && moved.Type != Pawn

	p.current = p.current.Update(m.inner)
	p.keys = append(p.keys, p.Key())
	if quiet {
		p.clock++
	} else {
		p.clock = 0
	}
	p.ply++
	p.inCheck = m.inner.HasTag(chess.Check)
}

// UndoMove reverses the most recent DoMove. m is accepted for
// symmetry with the external contract in §6 but is not otherwise
// needed: the pushed frame is sufficient to restore state exactly.
func (p *Position) UndoMove(m Move) {
	p.pop()
}

// DoNullMove passes the turn without moving a piece. Disallowed while
// in check; callers must check Checkers() first. Strictly paired with
// UndoNullMove.
func (p *Position) DoNullMove() {
	p.stack = append(p.stack, frame{current: p.current, inCheck: p.inCheck, clock: p.clock, ply: p.ply})

	flipped := flipSideToMove(p.current.String())
	opt, err := chess.FEN(flipped)
	if err != nil {
		// flipSideToMove only ever toggles a token in a FEN this
		// Position itself just rendered; a parse failure here means
		// the wrapped library rejected its own output.
		panic(errors.Wrap(err, "null move: re-parse flipped FEN"))
	}
	p.current = chess.NewGame(opt).Position()
	p.keys = append(p.keys, p.Key())
	p.clock++
	p.ply++
	// A null move cannot put the new side to move into check: no
	// piece moved, and a legally reached position never has its
	// side-not-to-move in check, which is exactly what the new side
	// to move was a moment ago.
	p.inCheck = false
}

// UndoNullMove reverses the most recent DoNullMove.
func (p *Position) UndoNullMove() {
	p.pop()
}

func (p *Position) pop() {
	n := len(p.stack) - 1
	f := p.stack[n]
	p.stack = p.stack[:n]
	p.current = f.current
	p.inCheck = f.inCheck
	p.clock = f.clock
	p.ply = f.ply
	p.keys = p.keys[:len(p.keys)-1]
}

// flipSideToMove toggles the side-to-move field of a FEN string and
// clears its en-passant field, the minimal surgery needed to turn a
// position into "the same board, opponent to move" for a null move.
func flipSideToMove(fen string) string {
	fields := strings.Fields(fen)
	if len(fields) < 6 {
		return fen
	}
	if fields[1] == "w" {
		fields[1] = "b"
	} else {
		fields[1] = "w"
	}
	fields[3] = "-"
	return strings.Join(fields, " ")
}

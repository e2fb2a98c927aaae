package engine

// Value is a centipawn score, always expressed from the side to
// move's perspective. Mirrors §3's Value data model.
type Value int32

// Sentinels from §3. Infinite is a large finite bound so that
// negating it stays representable; Mate is slightly below it so a
// mate score can never collide with -Infinite under negation.
const (
	Draw     Value = 0
	Infinite Value = 30000
	Mate     Value = Infinite - 1

	// MaxPly bounds recursion depth (§3). Any frame reaching
	// ply >= MaxPly-1 returns the static evaluation immediately.
	MaxPly = 246

	// MateInMaxPly is the threshold above which a score denotes a
	// forced mate rather than a material evaluation.
	MateInMaxPly = Mate - MaxPly
)

// matedIn returns the score for "side to move is mated, ply plies
// from the search root". Lower ply (closer to the root) is a more
// severe (more negative) score, so when several branches all lose the
// side to move prefers the one where the mate comes latest.
func matedIn(ply int) Value { return -Mate + Value(ply) }

// mateIn returns the score for "side to move delivers mate, ply plies
// from the search root".
func mateIn(ply int) Value { return Mate - Value(ply) }

// IsMateScore reports whether v denotes a forced mate (for or
// against the side to move) rather than a material evaluation.
func (v Value) IsMateScore() bool {
	return v >= MateInMaxPly || v <= -MateInMaxPly
}

// MateDistance returns the number of moves (not plies) to mate implied
// by v, and whether the side to move is the one mating. Only
// meaningful when v.IsMateScore().
func (v Value) MateDistance() (moves int, mating bool) {
	if v >= MateInMaxPly {
		return int(Mate-v+1) / 2, true
	}
	return int(Mate+v) / 2, false
}

func max(a, b Value) Value {
	if a > b {
		return a
	}
	return b
}

func min(a, b Value) Value {
	if a < b {
		return a
	}
	return b
}

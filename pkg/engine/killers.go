package engine

import "zugzwang/pkg/position"

// killerTable holds, per ply, the two most recent quiet moves that
// caused a beta cutoff there (§3). Cleared at the start of every
// top-level search.
type killerTable [MaxPly][2]position.Move

// record inserts m as the newest killer at ply, per §4.4 step 11:
// shift the existing first killer down, unless m is already the
// first killer (in which case there is nothing to do).
func (k *killerTable) record(ply int, m position.Move) {
	if ply < 0 || ply >= MaxPly {
		return
	}
	if k[ply][0].Equal(m) {
		return
	}
	k[ply][1] = k[ply][0]
	k[ply][0] = m
}

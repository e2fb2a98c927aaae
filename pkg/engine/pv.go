package engine

import (
	"sync"

	"zugzwang/pkg/position"
)

// PVT is a principal-variation table: the move sequence backing the
// most recently committed iterative-deepening result. Adapted from
// the teacher's pkg/engine/pvt.go (same depth-gated update, same
// mutex-guarded accessors) to hold a line of position.Move instead of
// *chess.Move, and to be read after the fact rather than threaded
// through a minimax return value.
type PVT struct {
	mu    sync.Mutex
	line  []position.Move
	depth int
}

// NewPVT returns an empty principal variation table.
func NewPVT() *PVT {
	return &PVT{}
}

// Update replaces the stored line if depth is at least as deep as
// whatever produced the line currently stored.
func (p *PVT) Update(line []position.Move, depth int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if depth >= p.depth {
		p.line = append([]position.Move(nil), line...)
		p.depth = depth
	}
}

// Line returns a copy of the current principal variation.
func (p *PVT) Line() []position.Move {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]position.Move(nil), p.line...)
}

// Reset clears the table. Called at the start of every top-level
// search, alongside the killer and history tables.
func (p *PVT) Reset() {
	p.mu.Lock()
	p.line = nil
	p.depth = 0
	p.mu.Unlock()
}

// extractPV walks the transposition table's best-move chain from pos
// forward, up to maxLen plies, to recover the line the committed
// result was found along. original_source never surfaces this (it
// only ever reads back the root best move), but the teacher's own
// Node.getSequence shows the same appetite for reporting the full
// line, so this repo keeps that deposit around instead of discarding
// it.
//
// pos is left exactly as it was found: every DoMove this walks is
// undone before returning.
func (e *Engine) extractPV(pos *position.Position, maxLen int) []position.Move {
	if maxLen <= 0 {
		return nil
	}
	var line []position.Move
	seen := make(map[uint64]bool)
	played := 0
	for i := 0; i < maxLen; i++ {
		key := pos.Key()
		if seen[key] {
			break
		}
		entry, ok := e.tt.Probe(key)
		if !ok || entry.BestMove.IsNone() {
			break
		}
		seen[key] = true
		line = append(line, entry.BestMove)
		pos.DoMove(entry.BestMove)
		played++
	}
	for i := 0; i < played; i++ {
		pos.UndoMove(position.NoMove)
	}
	e.pv.Update(line, maxLen)
	return line
}

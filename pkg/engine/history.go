package engine

import "zugzwang/pkg/position"

// historyTable accumulates a quiet-move-ordering score per
// (color, from, to), per §3. Cleared at the start of every top-level
// search.
type historyTable [2][64][64]int32

// add increments the accumulator for a quiet move that produced a
// beta cutoff at the given search depth, per §4.4 step 11.
func (h *historyTable) add(color position.Color, m position.Move, depth int) {
	h[colorIndex(color)][m.From()][m.To()] += int32(depth * depth)
}

func (h *historyTable) get(color position.Color, m position.Move) int32 {
	return h[colorIndex(color)][m.From()][m.To()]
}

// Package engine implements the search described in §4: iterative
// deepening over a fail-hard negamax core with a transposition table,
// killer moves, history heuristic, null-move pruning, and a
// quiescence horizon. It is the redesign of the teacher's
// pkg/engine (a Node-tree minimax walker) onto the spec's
// make/unmake position.Position adapter; see DESIGN.md for the full
// account of what was kept, what was rewritten, and what was dropped.
package engine

import (
	"time"

	"github.com/rs/zerolog"

	"zugzwang/internal/logx"
	"zugzwang/pkg/position"
	"zugzwang/pkg/tt"
)

// Engine bundles everything one search needs: the transposition
// table, the two move-ordering heuristics, and the bookkeeping a
// single Search call accumulates. Unlike the teacher's Engine (which
// carried package-level stats vars across calls), every counter here
// is instance state, reset at the top of Search.
type Engine struct {
	tt      *tt.Table
	killers killerTable
	history historyTable
	pv      *PVT
	log     zerolog.Logger

	nodes       uint64
	qnodes      uint64
	ttHits      uint64
	nullCutoffs uint64

	deadline time.Time
	stop     bool
}

// New builds an Engine with a transposition table of 2^ttBits slots.
// An optional logger may be supplied; a discard logger is used
// otherwise, matching the teacher's habit of defaulting to silence
// outside its CLI commands.
func New(ttBits int, logger ...zerolog.Logger) *Engine {
	lg := logx.Nop()
	if len(logger) > 0 {
		lg = logger[0]
	}
	return &Engine{
		tt:  tt.New(ttBits),
		pv:  NewPVT(),
		log: lg,
	}
}

// Stats reports this Engine's most recent counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Nodes:       e.nodes,
		QNodes:      e.qnodes,
		TTHits:      e.ttHits,
		NullCutoffs: e.nullCutoffs,
	}
}

func (e *Engine) pastDeadline() bool {
	return !e.deadline.IsZero() && time.Now().After(e.deadline)
}

// Search runs iterative deepening from 1 up to maxDepth (or until
// timeBudget elapses), per §4.5. The killer table, history table, and
// node counters are reset at the start; the transposition table
// persists across the call's own iterations (never cleared mid-search,
// per §5) but is left alone across separate Search calls too, on the
// theory that stale entries from an earlier position are simply
// out-competed by fresher, deeper ones under the always-replace
// policy.
//
// pos is left exactly as it was found when Search returns: every move
// played during the walk is undone.
func (e *Engine) Search(pos *position.Position, maxDepth int, timeBudget time.Duration) Result {
	e.nodes, e.qnodes, e.ttHits, e.nullCutoffs = 0, 0, 0, 0
	e.stop = false
	e.killers = killerTable{}
	e.history = historyTable{}
	e.pv.Reset()

	// timeBudget <= 0 is an immediate deadline, per §8's boundary
	// behavior for time_ms = 0: the search still completes depth 1 (or
	// the one-legal-move short-circuit) but is never given room to run
	// longer.
	e.deadline = time.Now().Add(timeBudget)

	root := pos.LegalMoves()
	if len(root) == 0 {
		score := Draw
		if pos.Checkers() {
			score = matedIn(0)
		}
		e.log.Debug().Str("fen", pos.FEN()).Msg("search: no legal moves at root")
		return Result{BestMove: position.NoMove, Score: score, Depth: 0, Nodes: e.nodes}
	}

	// One legal move: §8 scenario 6 requires returning it directly,
	// without ever invoking alpha-beta.
	if len(root) == 1 {
		e.pv.Update(root, 1)
		return Result{BestMove: root[0], Score: Draw, Depth: 1, Nodes: e.nodes, PV: root}
	}

	best := Result{BestMove: position.NoMove, Score: Draw, Depth: 0}

	// §4.5 step 3: d = 1, 2, ..., min(max_depth, 20).
	capDepth := maxDepth
	if capDepth > 20 {
		capDepth = 20
	}

	for depth := 1; depth <= capDepth; depth++ {
		alpha, beta := -Infinite, Infinite

		var (
			bestMove  = position.NoMove
			bestScore = -Infinite
		)

		scores := make([]int, len(root))
		for i, m := range root {
			scores[i] = e.scoreMove(pos, m, best.BestMove, 0)
		}

		for i := range root {
			selectNext(root, scores, i)
			m := root[i]

			pos.DoMove(m)
			score := -e.alphabeta(pos, depth-1, 1, -beta, -alpha, true)
			pos.UndoMove(m)

			if e.stop {
				break
			}
			if score > bestScore {
				bestScore = score
				bestMove = m
			}
			if bestScore > alpha {
				alpha = bestScore
			}
		}

		if e.stop {
			// §5: an interrupted iteration commits nothing, not even a
			// partial result. If an earlier iteration already
			// completed, its result stands (best is left untouched).
			// Otherwise §7 still promises a legal move: fall back to
			// the (unscored) first root move at depth 0 rather than
			// NONE.
			if best.BestMove.IsNone() {
				best = Result{BestMove: root[0], Score: Draw, Depth: 0, Nodes: e.nodes}
			}
			break
		}

		best = Result{
			BestMove: bestMove,
			Score:    bestScore,
			Depth:    depth,
			Nodes:    e.nodes,
		}
		e.tt.Store(pos.Key(), bestMove, int32(bestScore), depth, ttFlagForRoot(bestScore))

		e.log.Debug().
			Int("depth", depth).
			Int("score", int(bestScore)).
			Uint64("nodes", e.nodes).
			Str("move", bestMove.String()).
			Msg("search: iteration complete")

		if bestScore.IsMateScore() {
			break
		}
	}

	best.PV = e.extractPV(pos, best.Depth)
	if len(best.PV) == 0 && !best.BestMove.IsNone() {
		best.PV = []position.Move{best.BestMove}
	}
	best.Nodes = e.nodes
	return best
}

func ttFlagForRoot(score Value) tt.Flag {
	// The root window is always the full (-Infinite, Infinite) range,
	// so a completed iteration's value is always exact.
	_ = score
	return tt.Exact
}

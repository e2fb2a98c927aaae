package engine

import "zugzwang/pkg/position"

// Result is the driver's output, per §4.5's contract plus a PV
// supplement (see SPEC_FULL.md).
type Result struct {
	BestMove position.Move
	Score    Value
	Depth    int
	Nodes    uint64
	PV       []position.Move
}

// Stats surfaces internal counters for CLI reporting, in the spirit
// of the teacher's heavily-instrumented Engine (GeneratedNodes,
// Visited, EvaluatedNodes, ...), bundled instead of left as package
// globals.
type Stats struct {
	Nodes       uint64
	QNodes      uint64
	TTHits      uint64
	NullCutoffs uint64
}

// Command bench profiles the search engine against a handful of fixed
// positions, adapted from the teacher's cmd/benchmark/benchmark.go
// (same flag-driven cpuprofile setup) but pointed at Engine.Search
// instead of raw static evaluation, since that is this repo's hot
// path.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"zugzwang/pkg/engine"
	"zugzwang/pkg/position"
)

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")

// benchPositions exercises the starting position, an early opening
// position, and an endgame, so the profile isn't dominated by one
// game phase.
var benchPositions = []string{
	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
}

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	for i, fen := range benchPositions {
		searchPosition(i, fen)
	}
}

func searchPosition(i int, fen string) {
	pos, err := position.NewFromFEN(fen)
	if err != nil {
		log.Fatalf("position %d: %v", i, err)
	}
	eng := engine.New(20)

	start := time.Now()
	result := eng.Search(pos, 8, 2*time.Second)
	elapsed := time.Since(start)

	nps := float64(result.Nodes) / elapsed.Seconds()
	fmt.Printf("[%d] depth=%d nodes=%d time=%s nps=%.0f move=%s score=%d\n",
		i, result.Depth, result.Nodes, elapsed, nps, result.BestMove.String(), int(result.Score))
}

// Command zugzwang is the engine's command-line front end: --analyze
// reports the engine's opinion of a single FEN, --play runs self-play
// games and prints them as PGN. Grounded directly on
// original_source/src/main.cpp's cmd_analyze/cmd_play, rehosted onto
// this repo's Engine and position.Position, and onto the teacher's
// flag-driven cmd/ layout.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"zugzwang/internal/logx"
	"zugzwang/pkg/engine"
	"zugzwang/pkg/position"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var (
	verbose  = flag.Bool("v", false, "log search iterations to stderr")
	ttBits   = flag.Int("tt-bits", 20, "log2 of the transposition table size")
	maxDepth = flag.Int("max-depth", 10, "maximum iterative-deepening depth")
)

func main() {
	flag.Parse()
	args := flag.Args()

	if len(args) < 1 {
		usage()
		os.Exit(1)
	}

	switch args[0] {
	case "--analyze":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "Error: FEN string required")
			os.Exit(1)
		}
		fen, timeMs := splitAnalyzeArgs(args[1:])
		if err := cmdAnalyze(fen, timeMs); err != nil {
			fmt.Fprintln(os.Stderr, errors.Wrap(err, "analyze"))
			os.Exit(1)
		}
	case "--play":
		if len(args) < 5 {
			fmt.Fprintln(os.Stderr, "Error: Required arguments: <Game Count> <Max ply> <White Movetime> <Black Movetime>")
			os.Exit(1)
		}
		gameCount, err1 := strconv.Atoi(args[1])
		maxPly, err2 := strconv.Atoi(args[2])
		whiteMs, err3 := strconv.Atoi(args[3])
		blackMs, err4 := strconv.Atoi(args[4])
		if err := multierror.Append(nil, err1, err2, err3, err4).ErrorOrNil(); err != nil {
			fmt.Fprintln(os.Stderr, errors.Wrap(err, "parse --play arguments"))
			os.Exit(1)
		}
		cmdPlay(gameCount, maxPly, whiteMs, blackMs)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  zugzwang --analyze <FEN>")
	fmt.Fprintln(os.Stderr, "  zugzwang --play <Game Count> <Max ply> <White Movetime(ms)> <Black Movetime(ms)>")
}

func newEngine() *engine.Engine {
	if *verbose {
		return engine.New(*ttBits, logx.NewLogger())
	}
	return engine.New(*ttBits, logx.Nop())
}

// splitAnalyzeArgs separates the FEN from an optional trailing
// time_ms, per §6: a well-formed FEN is always exactly six
// space-separated fields, so a seventh token that parses as an
// integer is the time budget.
func splitAnalyzeArgs(rest []string) (fen string, timeMs int) {
	const defaultTimeMs = 10
	if len(rest) > 6 {
		if ms, err := strconv.Atoi(rest[len(rest)-1]); err == nil {
			return strings.Join(rest[:len(rest)-1], " "), ms
		}
	}
	return strings.Join(rest, " "), defaultTimeMs
}

// cmdAnalyze mirrors cmd_analyze: set the position, report the static
// eval, search, and print the best move with a mate-aware score
// rendering.
func cmdAnalyze(fen string, timeMs int) error {
	fmt.Printf("Analyzing FEN: %s\n", fen)

	pos, err := position.NewFromFEN(fen)
	if err != nil {
		return errors.Wrap(err, "set position")
	}
	fmt.Println("Position set successfully")

	eng := newEngine()
	result := eng.Search(pos, *maxDepth, time.Duration(timeMs)*time.Millisecond)

	fmt.Println("Search completed")
	fmt.Printf("Evaluation: %s\n", formatScore(result.Score))
	fmt.Printf("Best move: %s\n", result.BestMove.String())
	fmt.Printf("Depth: %d Nodes: %d\n", result.Depth, result.Nodes)
	return nil
}

// formatScore renders a score the way cmd_analyze does: "Mate in N" /
// "Mated in N" for forced mates, the raw centipawn value otherwise.
func formatScore(v engine.Value) string {
	if moves, mating := v.MateDistance(); v.IsMateScore() {
		if mating {
			return fmt.Sprintf("Mate in %d", moves)
		}
		return fmt.Sprintf("Mated in %d", moves)
	}
	return fmt.Sprintf("%d", int(v))
}

// cmdPlay mirrors cmd_play: run gameCount self-play games up to maxPly
// half-moves each, printing each as a PGN block, then report the
// average search depth across all non-random moves.
func cmdPlay(gameCount, maxPly, whiteMs, blackMs int) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var totalDepth, totalMoves int

	for g := 0; g < gameCount; g++ {
		pos, err := position.NewFromFEN(startFEN)
		if err != nil {
			// startFEN is a compile-time constant; a failure here
			// means the position adapter itself is broken.
			panic(errors.Wrap(err, "set start position"))
		}
		eng := newEngine()

		fmt.Println(`[Event "Engine Self-Play"]`)
		fmt.Println(`[Site "zugzwang"]`)
		fmt.Printf("[Date \"%s\"]\n", time.Now().Format("2006.01.02"))
		fmt.Printf("[Round \"%d\"]\n", g+1)
		fmt.Println(`[White "zugzwang"]`)
		fmt.Println(`[Black "zugzwang"]`)

		var pgn strings.Builder
		result := "*"
		ply := 0

		for ply < maxPly {
			timeMs := blackMs
			if pos.SideToMove() == position.White {
				timeMs = whiteMs
			}

			if ply < 6 && rng.Intn(100) < 30 {
				moves := pos.LegalMoves()
				if len(moves) == 0 {
					break
				}
				m := moves[rng.Intn(len(moves))]
				writeMove(&pgn, ply, m.String())
				pos.DoMove(m)
				ply++
				continue
			}

			sr := eng.Search(pos, *maxDepth, time.Duration(timeMs)*time.Millisecond)
			totalDepth += sr.Depth
			totalMoves++

			if sr.BestMove.IsNone() {
				if pos.Checkers() {
					if pos.SideToMove() == position.White {
						result = "0-1"
					} else {
						result = "1-0"
					}
				} else {
					result = "1/2-1/2"
				}
				break
			}

			if pos.Rule50Count() >= 100 || pos.IsDraw(pos.GamePly()) {
				result = "1/2-1/2"
				break
			}

			writeMove(&pgn, ply, sr.BestMove.String())
			pos.DoMove(sr.BestMove)
			ply++
		}

		if ply >= maxPly && result == "*" {
			result = "1/2-1/2"
		}

		fmt.Printf("[Result \"%s\"]\n\n", result)
		fmt.Printf("%s%s\n\n", pgn.String(), result)
	}

	if totalMoves > 0 {
		fmt.Printf("Average depth: %.2f\n", float64(totalDepth)/float64(totalMoves))
	}
}

func writeMove(pgn *strings.Builder, ply int, uci string) {
	if ply%2 == 0 {
		fmt.Fprintf(pgn, "%d. ", ply/2+1)
	}
	fmt.Fprintf(pgn, "%s ", uci)
}

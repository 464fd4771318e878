package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dylhunn/dragontoothmg"
	"github.com/pkg/profile"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"chessbot/board"
)

func main() {
	fen := flag.String("fen", board.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	verify := flag.Bool("verify", false, "Check every root count against dragontoothmg (implies -divide)")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Directory to write a CPU profile to during the run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *divide || *verify {
		if !runDivide(pos, *depth, *verify) {
			os.Exit(1)
		}
		return
	}

	if *cpuProf != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuProf)).Stop()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += board.Perft(pos, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)
}

// runDivide prints per-move counts sorted by move text. With verify it also
// prints the reference count next to every mismatch and reports false if any
// differ.
func runDivide(pos *board.Position, depth int, verify bool) bool {
	div := board.PerftDivide(pos, depth)
	byText := make(map[string]uint64, len(div))
	for m, n := range div {
		byText[m.String()] = n
	}

	var want map[string]uint64
	if verify {
		want = oracleDivide(pos.FEN(), depth)
		for mv := range want {
			if _, ok := byText[mv]; !ok {
				byText[mv] = 0
			}
		}
	}

	keys := maps.Keys(byText)
	slices.Sort(keys)

	ok := true
	var sum uint64
	for _, mv := range keys {
		n := byText[mv]
		sum += n
		if verify && want[mv] != n {
			ok = false
			fmt.Printf("%s: %d (expected %d)\n", mv, n, want[mv])
			continue
		}
		fmt.Printf("%s: %d\n", mv, n)
	}
	fmt.Printf("Total: %d\n", sum)
	if verify {
		if ok {
			fmt.Println("verify: ok")
		} else {
			fmt.Println("verify: MISMATCH")
		}
	}
	return ok
}

func oracleDivide(fen string, depth int) map[string]uint64 {
	b := dragontoothmg.ParseFen(fen)
	out := make(map[string]uint64)
	for _, m := range b.GenerateLegalMoves() {
		unapply := b.Apply(m)
		out[m.String()] = oraclePerft(&b, depth-1)
		unapply()
	}
	return out
}

func oraclePerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var n uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		n += oraclePerft(b, depth-1)
		unapply()
	}
	return n
}

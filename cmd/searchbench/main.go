package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"chessbot/board"
	"chessbot/engine"
)

var benchPositions = map[string]string{
	"startpos":   board.FENStartPos,
	"kiwipete":   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"endgame":    "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"position4":  "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"middlegame": "r1bq1rk1/pp2bppp/2n1pn2/3p4/2PP4/2N1PN2/PP1QBPPP/R3KB1R w KQ - 0 8",
}

func main() {
	depthFlag := flag.Int("depth", 4, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run per position")
	fenFlag := flag.String("fen", "", "single FEN to search (empty = built-in set)")
	workersFlag := flag.Int("workers", 1, "root-parallel goroutines")
	cpuProfile := flag.String("cpuprofile", "", "directory to write a CPU profile to")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()

	if *depthFlag <= 0 {
		log.Fatal().Int("depth", *depthFlag).Msg("depth must be positive")
	}
	if *cpuProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuProfile), profile.Quiet).Stop()
	}

	positions := benchPositions
	if *fenFlag != "" {
		positions = map[string]string{"fen": *fenFlag}
	}
	names := maps.Keys(positions)
	slices.Sort(names)

	searcher := engine.NewSearcher(engine.WithWorkers(*workersFlag))
	fmt.Printf("searchbench: depth=%d repeat=%d workers=%d\n", *depthFlag, *repeatFlag, *workersFlag)

	var totalNodes uint64
	startAll := time.Now()
	for _, name := range names {
		pos, err := board.ParseFEN(positions[name])
		if err != nil {
			log.Fatal().Err(err).Str("position", name).Msg("bad FEN")
		}
		for i := 0; i < *repeatFlag; i++ {
			res := searcher.Search(pos, *depthFlag)
			totalNodes += res.Nodes
			fmt.Printf("%-12s bestmove %s  score=%d nodes=%d time=%v\n",
				name, res.Move, res.Score, res.Nodes, res.Elapsed)
		}
	}
	totalElapsed := time.Since(startAll)
	fmt.Printf("total: nodes=%d time=%v nps=%.0f\n", totalNodes, totalElapsed, float64(totalNodes)/totalElapsed.Seconds())
}

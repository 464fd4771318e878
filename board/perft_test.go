package board_test

import (
	"testing"

	"chessbot/board"
)

func TestPerftInitialPosition(t *testing.T) {
	p := board.NewInitialPosition()
	for depth, want := range []uint64{1, 20, 400, 8902} {
		if got := board.Perft(p, depth); got != want {
			t.Fatalf("perft depth%d: got %d want %d", depth, got, want)
		}
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("position corrupted by perft: %v", err)
	}
}

func TestPerftReferencePositions(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want []uint64 // indexed by depth-1
	}{
		{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", []uint64{48, 2039}},
		{"position3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", []uint64{14, 191, 2812}},
		{"position4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", []uint64{6, 264, 9467}},
		{"en passant", "k7/8/8/3pP3/8/8/8/7K w - d6 0 2", []uint64{5, 19}},
		{"promotion", "1n5k/P7/8/8/8/8/8/7K w - - 0 1", []uint64{11}},
		{"position5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", []uint64{44, 1486}},
		{"position6", "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", []uint64{46, 2079}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := board.ParseFEN(tc.fen)
			if err != nil {
				t.Fatalf("ParseFEN: %v", err)
			}
			before := p.FEN()
			for i, want := range tc.want {
				if got := board.Perft(p, i+1); got != want {
					t.Fatalf("perft depth%d: got %d want %d", i+1, got, want)
				}
			}
			if after := p.FEN(); after != before {
				t.Fatalf("perft left position changed: %q -> %q", before, after)
			}
		})
	}
}

func TestPerftKiwipeteDepth3(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}
	p := board.MustParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if got := board.Perft(p, 3); got != 97862 {
		t.Fatalf("Kiwipete depth3: got %d want %d", got, 97862)
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	p := board.NewInitialPosition()
	div := board.PerftDivide(p, 3)
	if len(div) != 20 {
		t.Fatalf("divide root moves: got %d want 20", len(div))
	}
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if sum != 8902 {
		t.Fatalf("divide sum: got %d want 8902", sum)
	}
	if got := div[p.ParseMove("e2e4")]; got != 600 {
		t.Fatalf("e2e4 subtree: got %d want 600", got)
	}
}

func BenchmarkPerft4(b *testing.B) {
	p := board.NewInitialPosition()
	for i := 0; i < b.N; i++ {
		board.Perft(p, 4)
	}
}

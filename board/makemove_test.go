package board

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var positionCmp = cmp.AllowUnexported(Position{}, Ply{})

var walkFENs = []string{
	FENStartPos,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
}

// assertRoundTrip applies and undoes every pseudo-legal move of p and checks
// that the position comes back bit-identical.
func assertRoundTrip(t *testing.T, p *Position) {
	t.Helper()
	before := p.Clone()
	for _, m := range p.GeneratePseudoMoves() {
		if p.Apply(m) {
			if err := p.Validate(); err != nil {
				t.Fatalf("after %s from %s: %v", m, before.FEN(), err)
			}
			p.Undo()
		}
		if diff := cmp.Diff(before, p, positionCmp); diff != "" {
			t.Fatalf("apply/undo %s from %s changed position (-want +got):\n%s", m, before.FEN(), diff)
		}
	}
}

func TestApplyUndoRoundTripRandomWalks(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, fen := range walkFENs {
		p := MustParseFEN(fen)
		for ply := 0; ply < 60; ply++ {
			assertRoundTrip(t, p)
			legal := p.LegalMoves()
			if len(legal) == 0 {
				break
			}
			if !p.Apply(legal[rng.Intn(len(legal))]) {
				t.Fatalf("legal move rejected in %s", p.FEN())
			}
			if err := p.Validate(); err != nil {
				t.Fatalf("walk from %s ply %d: %v", fen, ply, err)
			}
		}
		for p.HistoryLen() > 0 {
			p.Undo()
		}
		if diff := cmp.Diff(MustParseFEN(fen), p, positionCmp); diff != "" {
			t.Fatalf("unwinding %s did not restore the start (-want +got):\n%s", fen, diff)
		}
	}
}

func TestApplySpecialMoves(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		move    Move
		wantFEN string
	}{
		{
			name:    "double push sets en passant",
			fen:     FENStartPos,
			move:    NewMove(NewSquare(4, 1), NewSquare(4, 3), KindNormal, 0),
			wantFEN: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name:    "en passant removes the passed pawn",
			fen:     "k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
			move:    NewMove(NewSquare(4, 4), NewSquare(3, 5), KindEnPassant, 0),
			wantFEN: "k7/8/3P4/8/8/8/8/7K b - - 0 2",
		},
		{
			name:    "white short castle",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 3 10",
			move:    NewMove(E1, G1, KindCastling, 0),
			wantFEN: "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 4 10",
		},
		{
			name:    "black long castle bumps fullmove",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 3 10",
			move:    NewMove(E8, C8, KindCastling, 0),
			wantFEN: "2kr3r/8/8/8/8/8/8/R3K2R w KQ - 4 11",
		},
		{
			name:    "capture promotion to knight",
			fen:     "1n5k/P7/8/8/8/8/8/7K w - - 5 1",
			move:    NewPromotion(NewSquare(0, 6), NewSquare(1, 7), PieceTypeKnight),
			wantFEN: "1N5k/8/8/8/8/8/8/7K b - - 0 1",
		},
		{
			name:    "rook capture clears castling right",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:    NewMove(A1, A8, KindNormal, 0),
			wantFEN: "R3k2r/8/8/8/8/8/8/4K2R b Kk - 0 1",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := MustParseFEN(tc.fen)
			before := p.Clone()
			if !p.Apply(tc.move) {
				t.Fatalf("Apply(%s) rejected", tc.move)
			}
			if got := p.FEN(); got != tc.wantFEN {
				t.Fatalf("FEN after %s:\n got %s\nwant %s", tc.move, got, tc.wantFEN)
			}
			if err := p.Validate(); err != nil {
				t.Fatal(err)
			}
			p.Undo()
			if diff := cmp.Diff(before, p, positionCmp); diff != "" {
				t.Fatalf("undo mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyRejectsIllegalCastling(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move Move
	}{
		{"castle out of check", "4r1k1/8/8/8/8/8/8/R3K2R w KQ - 0 1", NewMove(E1, G1, KindCastling, 0)},
		{"castle through attacked transit", "5rk1/8/8/8/8/8/8/R3K2R w KQ - 0 1", NewMove(E1, G1, KindCastling, 0)},
		{"castle into check", "6rk/8/8/8/8/8/8/R3K2R w KQ - 0 1", NewMove(E1, G1, KindCastling, 0)},
		{"long castle through attacked d1", "3r2k1/8/8/8/8/8/8/R3K2R w KQ - 0 1", NewMove(E1, C1, KindCastling, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := MustParseFEN(tc.fen)
			before := p.Clone()
			found := false
			for _, m := range p.GeneratePseudoMoves() {
				if m == tc.move {
					found = true
				}
			}
			if !found {
				t.Fatalf("castling %s not generated", tc.move)
			}
			if p.Apply(tc.move) {
				t.Fatalf("Apply(%s) accepted an illegal castle", tc.move)
			}
			if diff := cmp.Diff(before, p, positionCmp); diff != "" {
				t.Fatalf("rejected apply left changes (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLongCastleWithAttackedB1IsLegal(t *testing.T) {
	p := MustParseFEN("1r4k1/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if !p.Apply(NewMove(E1, C1, KindCastling, 0)) {
		t.Fatalf("castling with only b1 attacked should be legal")
	}
}

func TestUndoEmptyHistoryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on Undo with empty history")
		}
	}()
	NewInitialPosition().Undo()
}

func TestHashMatchesRecomputation(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	p := NewInitialPosition()
	for ply := 0; ply < 200; ply++ {
		if p.Hash() != p.ComputeZobrist() {
			t.Fatalf("ply %d: incremental hash %x, recomputed %x", ply, p.Hash(), p.ComputeZobrist())
		}
		if p.Evaluate() != p.computeEvaluation() {
			t.Fatalf("ply %d: incremental eval %d, recomputed %d", ply, p.Evaluate(), p.computeEvaluation())
		}
		legal := p.LegalMoves()
		if len(legal) == 0 || p.halfmoveClock >= 100 {
			break
		}
		p.Apply(legal[rng.Intn(len(legal))])
	}
}

func TestHashDependsOnContext(t *testing.T) {
	a := MustParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	b := MustParseFEN("r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1")
	c := MustParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w Kkq - 0 1")
	d := MustParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 7 30")
	if a.Hash() == b.Hash() {
		t.Fatalf("side to move must change the hash")
	}
	if a.Hash() == c.Hash() {
		t.Fatalf("castling rights must change the hash")
	}
	if a.Hash() != d.Hash() {
		t.Fatalf("clocks must not change the hash")
	}

	e := MustParseFEN("k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	f := MustParseFEN("k7/8/8/3pP3/8/8/8/7K w - - 0 2")
	if e.Hash() == f.Hash() {
		t.Fatalf("en passant square must change the hash")
	}
}

func TestTranspositionsHashEqual(t *testing.T) {
	a := NewInitialPosition()
	b := NewInitialPosition()
	for _, s := range []string{"g1f3", "g8f6", "b1c3"} {
		a.Apply(a.ParseMove(s))
	}
	for _, s := range []string{"b1c3", "g8f6", "g1f3"} {
		b.Apply(b.ParseMove(s))
	}
	if a.Hash() != b.Hash() {
		t.Fatalf("transposed move orders reached different hashes")
	}
}

func BenchmarkApplyUndo(b *testing.B) {
	p := MustParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	moves := p.GeneratePseudoMoves()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			if p.Apply(m) {
				p.Undo()
			}
		}
	}
}

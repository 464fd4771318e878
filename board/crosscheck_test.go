package board_test

import (
	"math/rand"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slices"

	"chessbot/board"
)

func moveStrings(moves []board.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	slices.Sort(out)
	return out
}

func oracleMoves(fen string) []string {
	b := dragontoothmg.ParseFen(fen)
	moves := b.GenerateLegalMoves()
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	slices.Sort(out)
	return out
}

// TestLegalMovesAgreeWithDragontooth walks random games and compares the
// legal move list of every visited position with an independent generator.
func TestLegalMovesAgreeWithDragontooth(t *testing.T) {
	starts := []string{
		board.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	}
	rng := rand.New(rand.NewSource(42))
	for _, fen := range starts {
		for game := 0; game < 5; game++ {
			p := board.MustParseFEN(fen)
			for ply := 0; ply < 40; ply++ {
				legal := p.LegalMoves()
				if diff := cmp.Diff(oracleMoves(p.FEN()), moveStrings(legal)); diff != "" {
					t.Fatalf("legal moves differ in %s (-oracle +ours):\n%s", p.FEN(), diff)
				}
				if len(legal) == 0 {
					break
				}
				p.Apply(legal[rng.Intn(len(legal))])
			}
		}
	}
}

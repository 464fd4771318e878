package board_test

import (
	"errors"
	"testing"

	"chessbot/board"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		text string
		want board.Move
	}{
		{"quiet pawn push", board.FENStartPos, "e2e4",
			board.NewMove(board.NewSquare(4, 1), board.NewSquare(4, 3), board.KindNormal, 0)},
		{"knight move", board.FENStartPos, "g1f3",
			board.NewMove(board.G1, board.NewSquare(5, 2), board.KindNormal, 0)},
		{"white short castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1",
			board.NewMove(board.E1, board.G1, board.KindCastling, 0)},
		{"black long castle", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8c8",
			board.NewMove(board.E8, board.C8, board.KindCastling, 0)},
		{"king step is not castling", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1f1",
			board.NewMove(board.E1, board.F1, board.KindNormal, 0)},
		{"en passant", "k7/8/8/3pP3/8/8/8/7K w - d6 0 2", "e5d6",
			board.NewMove(board.NewSquare(4, 4), board.NewSquare(3, 5), board.KindEnPassant, 0)},
		{"promotion to rook", "1n5k/P7/8/8/8/8/8/7K w - - 0 1", "a7a8r",
			board.NewPromotion(board.NewSquare(0, 6), board.A8, board.PieceTypeRook)},
		{"capture promotion to knight", "1n5k/P7/8/8/8/8/8/7K w - - 0 1", "a7b8n",
			board.NewPromotion(board.NewSquare(0, 6), board.B8, board.PieceTypeKnight)},
		{"missing promotion letter", "1n5k/P7/8/8/8/8/8/7K w - - 0 1", "a7a8", board.NoMove},
		{"letter on a non-promotion", board.FENStartPos, "e2e4q", board.NoMove},
		{"unknown promotion letter", "1n5k/P7/8/8/8/8/8/7K w - - 0 1", "a7a8k", board.NoMove},
		{"too short", board.FENStartPos, "e2e", board.NoMove},
		{"too long", board.FENStartPos, "e2e4qq", board.NoMove},
		{"off the board", board.FENStartPos, "e2e9", board.NoMove},
		{"empty origin", board.FENStartPos, "e4e5", board.NoMove},
		{"null move text", board.FENStartPos, "0000", board.NoMove},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := board.MustParseFEN(tc.fen)
			if got := p.ParseMove(tc.text); got != tc.want {
				t.Fatalf("ParseMove(%q) = %s (%d), want %s (%d)", tc.text, got, got, tc.want, tc.want)
			}
		})
	}
}

func TestMoveStringRoundTrip(t *testing.T) {
	for _, fen := range []string{
		board.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 b kq - 0 1",
		"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
	} {
		p := board.MustParseFEN(fen)
		for _, m := range p.LegalMoves() {
			if got := p.ParseMove(m.String()); got != m {
				t.Fatalf("%s: ParseMove(%q) = %v, want %v", fen, m.String(), got, m)
			}
		}
	}
	if board.NoMove.String() != "0000" {
		t.Fatalf("NoMove renders as %q", board.NoMove.String())
	}
}

func TestParseLegalMove(t *testing.T) {
	p := board.NewInitialPosition()
	if _, err := p.ParseLegalMove("e2e5"); !errors.Is(err, board.ErrIllegalMove) {
		t.Fatalf("e2e5: got %v, want ErrIllegalMove", err)
	}
	if _, err := p.ParseLegalMove("zz"); !errors.Is(err, board.ErrInvalidMove) {
		t.Fatalf("zz: got %v, want ErrInvalidMove", err)
	}
	m, err := p.ParseLegalMove("b1c3")
	if err != nil {
		t.Fatal(err)
	}
	if m.String() != "b1c3" {
		t.Fatalf("got %s", m)
	}

	pinned := board.MustParseFEN("4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1")
	if _, err := pinned.ParseLegalMove("e2d3"); !errors.Is(err, board.ErrIllegalMove) {
		t.Fatalf("moving a pinned bishop: got %v, want ErrIllegalMove", err)
	}
}

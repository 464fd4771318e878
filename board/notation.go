package board

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

var (
	// ErrInvalidMove is returned for move text that cannot name a move.
	ErrInvalidMove = errors.New("invalid move")
	// ErrIllegalMove is returned for a well-formed move that is not legal here.
	ErrIllegalMove = errors.New("illegal move")
)

const promoLetters = "qrbn"

// String produces coordinate notation ("e2e4", "e7e8q"); NoMove is "0000".
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.Kind() == KindPromotion {
		s += string(promoLetters[m.PromotionTag()])
	}
	return s
}

// ParseMove converts coordinate notation into a Move for this position,
// inferring castling, en passant and promotion from the piece on the origin
// square. It returns NoMove when the text is malformed, when the origin is
// empty, when a promotion letter is given for a move that does not promote,
// or when a promoting move lacks one. The result is not checked for legality.
func (p *Position) ParseMove(s string) Move {
	s = strings.TrimSpace(s)
	if len(s) != 4 && len(s) != 5 {
		return NoMove
	}
	from, ok := ParseSquare(s[0:2])
	if !ok {
		return NoMove
	}
	to, ok := ParseSquare(s[2:4])
	if !ok || from == to {
		return NoMove
	}
	promo := -1
	if len(s) == 5 {
		promo = strings.IndexByte(promoLetters, s[4]|0x20)
		if promo < 0 {
			return NoMove
		}
	}

	mover := p.mailbox[from]
	kind := KindNormal
	switch mover.Type() {
	case PieceTypeNone:
		return NoMove
	case PieceTypeKing:
		if (mover == WhiteKing && from == E1 && (to == G1 || to == C1)) ||
			(mover == BlackKing && from == E8 && (to == G8 || to == C8)) {
			kind = KindCastling
		}
	case PieceTypePawn:
		if to == p.enPassantSquare {
			kind = KindEnPassant
		} else if to.Rank() == 7 || to.Rank() == 0 {
			kind = KindPromotion
		}
	}

	if kind == KindPromotion {
		if promo < 0 {
			return NoMove
		}
		return NewMove(from, to, KindPromotion, uint8(promo))
	}
	if promo >= 0 {
		return NoMove
	}
	return NewMove(from, to, kind, 0)
}

// ParseLegalMove parses s and checks it against the legal moves of the
// position. Errors wrap ErrInvalidMove or ErrIllegalMove.
func (p *Position) ParseLegalMove(s string) (Move, error) {
	m := p.ParseMove(s)
	if m == NoMove {
		return NoMove, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	if !slices.Contains(p.LegalMoves(), m) {
		return NoMove, fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}
	return m, nil
}

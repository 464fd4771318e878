package board

// promotionOrder is the order in which a promoting pawn move is expanded.
var promotionOrder = [4]uint8{PromoteQueen, PromoteRook, PromoteBishop, PromoteKnight}

// castleSpec describes one castling move: the king path, the rook corner and
// the squares that must be empty between them.
type castleSpec struct {
	right    CastlingRights
	kingFrom Square
	kingTo   Square
	rookFrom Square
	between  uint64
	rook     Piece
}

var castleSpecs = [2][2]castleSpec{
	White: {
		{right: CastlingWhiteK, kingFrom: E1, kingTo: G1, rookFrom: H1, between: bb(F1) | bb(G1), rook: WhiteRook},
		{right: CastlingWhiteQ, kingFrom: E1, kingTo: C1, rookFrom: A1, between: bb(B1) | bb(C1) | bb(D1), rook: WhiteRook},
	},
	Black: {
		{right: CastlingBlackK, kingFrom: E8, kingTo: G8, rookFrom: H8, between: bb(F8) | bb(G8), rook: BlackRook},
		{right: CastlingBlackQ, kingFrom: E8, kingTo: C8, rookFrom: A8, between: bb(B8) | bb(C8) | bb(D8), rook: BlackRook},
	},
}

// castleRookSquares locates the rook of a castling move by the king's
// destination, the same rule for placing and for restoring it.
func castleRookSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case G1:
		return H1, F1
	case C1:
		return A1, D1
	case G8:
		return H8, F8
	default:
		return A8, D8
	}
}

// appendTargets emits one normal move per set bit of targets.
func appendTargets(moves []Move, from Square, targets uint64) []Move {
	for targets != 0 {
		to := Square(popLSB(&targets))
		moves = append(moves, NewMove(from, to, KindNormal, 0))
	}
	return moves
}

// appendPawnMove emits a pawn move, expanding arrival on the last rank into
// four promotions.
func appendPawnMove(moves []Move, from, to Square, lastRank int) []Move {
	if to.Rank() == lastRank {
		for _, tag := range promotionOrder {
			moves = append(moves, NewMove(from, to, KindPromotion, tag))
		}
		return moves
	}
	return append(moves, NewMove(from, to, KindNormal, 0))
}

// GeneratePseudoMovesInto appends all pseudo-legal moves (no king-safety filtering) into dst and returns it.
// Pseudo-legal obeys piece rules and blockers; castling requires rights and empty path but ignores attack-on-path.
// The order is fixed: pawns, knights, bishops, rooks, queens, king steps, castling.
func (p *Position) GeneratePseudoMovesInto(dst []Move) []Move {
	moves := dst[:0]
	us := p.sideToMove
	them := us.Other()
	own := p.bitboards[us]

	ownOcc := p.occupancy[us]
	oppOcc := p.occupancy[them]
	allOcc := p.all

	// Pawns
	push, startRank, lastRank := 8, 1, 7
	if us == Black {
		push, startRank, lastRank = -8, 6, 0
	}
	pawns := own[PieceTypePawn]
	for pawns != 0 {
		from := Square(popLSB(&pawns))

		one := from + Square(push)
		if allOcc&bb(one) == 0 {
			moves = appendPawnMove(moves, from, one, lastRank)
			if from.Rank() == startRank {
				two := one + Square(push)
				if allOcc&bb(two) == 0 {
					moves = append(moves, NewMove(from, two, KindNormal, 0))
				}
			}
		}

		caps := pawnAttacks[us][from]
		for t := caps & oppOcc; t != 0; {
			to := Square(popLSB(&t))
			moves = appendPawnMove(moves, from, to, lastRank)
		}
		if p.enPassantSquare != NoSquare && caps&bb(p.enPassantSquare) != 0 {
			moves = append(moves, NewMove(from, p.enPassantSquare, KindEnPassant, 0))
		}
	}

	// Knights
	for knights := own[PieceTypeKnight]; knights != 0; {
		from := Square(popLSB(&knights))
		moves = appendTargets(moves, from, knightMoves[from]&^ownOcc)
	}

	// Bishops
	for bishops := own[PieceTypeBishop]; bishops != 0; {
		from := Square(popLSB(&bishops))
		moves = appendTargets(moves, from, BishopAttacks(from, allOcc)&^ownOcc)
	}

	// Rooks
	for rooks := own[PieceTypeRook]; rooks != 0; {
		from := Square(popLSB(&rooks))
		moves = appendTargets(moves, from, RookAttacks(from, allOcc)&^ownOcc)
	}

	// Queens
	for queens := own[PieceTypeQueen]; queens != 0; {
		from := Square(popLSB(&queens))
		moves = appendTargets(moves, from, QueenAttacks(from, allOcc)&^ownOcc)
	}

	// King
	kingBB := own[PieceTypeKing]
	if kingBB == 0 {
		return moves
	}
	from := lsb(kingBB)
	moves = appendTargets(moves, from, kingMoves[from]&^ownOcc)

	// Castling (path + rights), no in-check checks here
	for _, cs := range castleSpecs[us] {
		if p.castlingRights&cs.right == 0 || from != cs.kingFrom {
			continue
		}
		if allOcc&cs.between == 0 && p.mailbox[cs.rookFrom] == cs.rook {
			moves = append(moves, NewMove(cs.kingFrom, cs.kingTo, KindCastling, 0))
		}
	}

	return moves
}

// GeneratePseudoMoves returns all pseudo-legal moves (allocates a new slice).
func (p *Position) GeneratePseudoMoves() []Move {
	return p.GeneratePseudoMovesInto(make([]Move, 0, 128))
}

// LegalMoves returns the pseudo-legal moves that survive Apply, in generation order.
func (p *Position) LegalMoves() []Move {
	pseudo := p.GeneratePseudoMoves()
	legal := pseudo[:0]
	for _, m := range pseudo {
		if p.Apply(m) {
			p.Undo()
			legal = append(legal, m)
		}
	}
	return legal
}

package board

// Apply plays a pseudo-legal move. It returns false if the move leaves the
// mover's king in check or castles out of or through check; in that case the
// position is restored before returning.
//
// The move must come from the generator for this position. Feeding it a move
// that does not match the piece arrangement leaves the position undefined.
func (p *Position) Apply(m Move) bool {
	from := m.From()
	to := m.To()
	us := p.sideToMove
	them := us.Other()
	mover := p.mailbox[from]
	captured := p.mailbox[to]

	p.history = append(p.history, Ply{
		move:          m,
		captured:      captured,
		prevCastling:  p.castlingRights,
		prevEnPassant: p.enPassantSquare,
		prevRule50:    p.halfmoveClock,
	})
	ply := &p.history[len(p.history)-1]

	// Rights drop when anything leaves or lands on a rook corner or king home.
	p.castlingRights &= castleMask[from] & castleMask[to]
	p.halfmoveClock++
	p.enPassantSquare = NoSquare

	pathAttacked := false
	switch m.Kind() {
	case KindCastling:
		rookFrom, rookTo := castleRookSquares(to)
		pathAttacked = p.IsSquareAttacked(from, them) || p.IsSquareAttacked(rookTo, them)
		p.removePiece(from)
		p.placePiece(to, mover)
		rook := p.removePiece(rookFrom)
		p.placePiece(rookTo, rook)

	case KindPromotion:
		p.removePiece(from)
		p.removePiece(to)
		p.placePiece(to, PieceFromType(us, m.PromotionPieceType()))
		p.halfmoveClock = 0

	case KindEnPassant:
		p.removePiece(from)
		p.placePiece(to, mover)
		p.removePiece(enPassantVictim(to, us))
		p.halfmoveClock = 0

	default:
		p.removePiece(from)
		if captured != NoPiece {
			p.removePiece(to)
			p.halfmoveClock = 0
		}
		p.placePiece(to, mover)
		if mover.Type() == PieceTypePawn {
			p.halfmoveClock = 0
			if d := to - from; d == 16 || d == -16 {
				p.enPassantSquare = (from + to) / 2
			}
		}
	}

	p.sideToMove = them
	if us == Black {
		p.fullmoveNumber++
	}

	key := p.Hash()
	ply.key = key
	p.hashCounts[key]++
	if p.hashCounts[key] >= 3 {
		ply.threefold = true
	}

	if pathAttacked || p.InCheck(us) {
		p.Undo()
		return false
	}
	return true
}

// Undo reverses the most recent Apply. It panics when there is nothing to undo.
func (p *Position) Undo() {
	n := len(p.history)
	if n == 0 {
		panic("Undo: empty history")
	}
	ply := p.history[n-1]
	p.history = p.history[:n-1]

	p.sideToMove = p.sideToMove.Other()
	us := p.sideToMove
	if us == Black {
		p.fullmoveNumber--
	}

	if c := p.hashCounts[ply.key]; c <= 1 {
		delete(p.hashCounts, ply.key)
	} else {
		p.hashCounts[ply.key] = c - 1
	}

	p.castlingRights = ply.prevCastling
	p.enPassantSquare = ply.prevEnPassant
	p.halfmoveClock = ply.prevRule50

	from := ply.move.From()
	to := ply.move.To()
	switch ply.move.Kind() {
	case KindCastling:
		rookFrom, rookTo := castleRookSquares(to)
		p.placePiece(rookFrom, p.removePiece(rookTo))
		p.placePiece(from, p.removePiece(to))

	case KindPromotion:
		p.removePiece(to)
		p.placePiece(from, PieceFromType(us, PieceTypePawn))
		p.placePiece(to, ply.captured)

	case KindEnPassant:
		p.placePiece(from, p.removePiece(to))
		p.placePiece(enPassantVictim(to, us), PieceFromType(us.Other(), PieceTypePawn))

	default:
		p.placePiece(from, p.removePiece(to))
		p.placePiece(to, ply.captured)
	}
}

// enPassantVictim returns the square of the pawn captured en passant by a
// pawn of color c landing on to.
func enPassantVictim(to Square, c Color) Square {
	if c == White {
		return to - 8
	}
	return to + 8
}

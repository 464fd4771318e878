package board

// Precomputed attack masks for knights and kings from each square.
var knightMoves [64]uint64
var kingMoves [64]uint64

// Pawn attack masks: pawnAttacks[color][sq] gives bitboard of squares that a pawn of 'color' attacks from 'sq'.
var pawnAttacks [2][64]uint64

// castleMask[sq] is ANDed into the castling rights whenever a move starts or
// ends on sq. Corner squares drop one right, king homes drop both.
var castleMask [64]CastlingRights

func init() {
	initAttackTables()
	initCastleMask()
}

// offsetTable builds a per-square mask of the squares reachable by fixed
// (rank, file) offsets. Offsets that would leave the board are dropped by
// checking the distance to each edge, never by wrapping the square index.
func offsetTable(offsets [8][2]int) (table [64]uint64) {
	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq / 8
		var mask uint64
		for _, off := range offsets {
			rf := rank + off[0]
			ff := file + off[1]
			if rf >= 0 && rf < 8 && ff >= 0 && ff < 8 {
				mask |= uint64(1) << uint(rf*8+ff)
			}
		}
		table[sq] = mask
	}
	return table
}

// initAttackTables precomputes move attack bitboards for knights, kings, and pawn captures.
func initAttackTables() {
	knightMoves = offsetTable([8][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	})
	kingMoves = offsetTable([8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	})

	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq / 8

		// White pawn attacks (moves upward)
		if rank < 7 {
			if file > 0 {
				pawnAttacks[White][sq] |= uint64(1) << uint((rank+1)*8+file-1)
			}
			if file < 7 {
				pawnAttacks[White][sq] |= uint64(1) << uint((rank+1)*8+file+1)
			}
		}

		// Black pawn attacks (moves downward)
		if rank > 0 {
			if file > 0 {
				pawnAttacks[Black][sq] |= uint64(1) << uint((rank-1)*8+file-1)
			}
			if file < 7 {
				pawnAttacks[Black][sq] |= uint64(1) << uint((rank-1)*8+file+1)
			}
		}
	}
}

func initCastleMask() {
	for sq := range castleMask {
		castleMask[sq] = CastlingAll
	}
	castleMask[A1] &^= CastlingWhiteQ
	castleMask[H1] &^= CastlingWhiteK
	castleMask[A8] &^= CastlingBlackQ
	castleMask[H8] &^= CastlingBlackK
	castleMask[E1] &^= CastlingWhiteK | CastlingWhiteQ
	castleMask[E8] &^= CastlingBlackK | CastlingBlackQ
}

// KnightAttacks returns the knight targets from sq.
func KnightAttacks(sq Square) uint64 { return knightMoves[sq] }

// KingAttacks returns the king targets from sq.
func KingAttacks(sq Square) uint64 { return kingMoves[sq] }

// PawnAttacks returns the squares a pawn of color c attacks from sq.
func PawnAttacks(c Color, sq Square) uint64 { return pawnAttacks[c][sq] }

// ==========================
// Attack queries
// ==========================

// IsSquareAttacked reports whether the given square is attacked by the given color.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	them := p.bitboards[by]

	// Pawn attacks via reverse mask
	if pawnAttacks[by.Other()][sq]&them[PieceTypePawn] != 0 {
		return true
	}
	if knightMoves[sq]&them[PieceTypeKnight] != 0 {
		return true
	}
	if kingMoves[sq]&them[PieceTypeKing] != 0 {
		return true
	}
	if RookAttacks(sq, p.all)&(them[PieceTypeRook]|them[PieceTypeQueen]) != 0 {
		return true
	}
	return BishopAttacks(sq, p.all)&(them[PieceTypeBishop]|them[PieceTypeQueen]) != 0
}

// InCheck reports whether the specified color's king is currently in check.
func (p *Position) InCheck(color Color) bool {
	kingBB := p.bitboards[color][PieceTypeKing]
	if kingBB == 0 {
		return false
	}
	return p.IsSquareAttacked(lsb(kingBB), color.Other())
}

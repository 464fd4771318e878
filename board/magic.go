package board

import "github.com/dylhunn/dragontoothmg"

// Sliding attacks come from dragontoothmg's precomputed magic-bitboard tables.
// Both functions are pure: the result depends only on the square and the
// occupancy, and includes the first blocker in every direction regardless of
// its color. Callers mask out their own pieces.

// RookAttacks returns the rook attack set from sq for the given occupancy.
func RookAttacks(sq Square, occ uint64) uint64 {
	return dragontoothmg.CalculateRookMoveBitboard(uint8(sq), occ)
}

// BishopAttacks returns the bishop attack set from sq for the given occupancy.
func BishopAttacks(sq Square, occ uint64) uint64 {
	return dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), occ)
}

// QueenAttacks is the union of rook and bishop attacks.
func QueenAttacks(sq Square, occ uint64) uint64 {
	return RookAttacks(sq, occ) | BishopAttacks(sq, occ)
}

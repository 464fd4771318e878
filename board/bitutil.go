package board

import "math/bits"

// ==========================
// Bitboard helpers
// ==========================

const (
	FileA uint64 = 0x0101010101010101
	FileH uint64 = FileA << 7
	Rank1 uint64 = 0xFF
	Rank2 uint64 = Rank1 << 8
	Rank7 uint64 = Rank1 << 48
	Rank8 uint64 = Rank1 << 56

	// LightSquares has a bit set for every light square (h1 is light, a1 is dark).
	LightSquares uint64 = 0x55AA55AA55AA55AA
	DarkSquares  uint64 = ^LightSquares
)

// bb returns a bitboard with the given square bit set.
func bb(sq Square) uint64 { return 1 << uint64(sq) }

// SquareBB is the exported form of bb.
func SquareBB(sq Square) uint64 { return bb(sq) }

// popLSB removes and returns the least significant set bit from the mask.
func popLSB(mask *uint64) int {
	idx := bits.TrailingZeros64(*mask)
	*mask &= *mask - 1
	return idx
}

// lsb returns the index of the least significant set bit. The mask must be non-zero.
func lsb(mask uint64) Square { return Square(bits.TrailingZeros64(mask)) }

// PopCount returns the number of set bits.
func PopCount(mask uint64) int { return bits.OnesCount64(mask) }

// Squares lists the set squares of a bitboard in ascending order.
func Squares(mask uint64) []Square {
	out := make([]Square, 0, bits.OnesCount64(mask))
	for mask != 0 {
		out = append(out, Square(popLSB(&mask)))
	}
	return out
}

// FileMask returns the bitboard of a 0-based file.
func FileMask(file int) uint64 { return FileA << uint(file) }

// RankMask returns the bitboard of a 0-based rank.
func RankMask(rank int) uint64 { return Rank1 << uint(8*rank) }

// flipSquare mirrors a square vertically (a1 <-> a8).
func flipSquare(sq Square) Square { return sq ^ 56 }

package board

import "math/rand"

// Zobrist hashing tables for pieces, castling, en passant, and side to move.
var zobristPiece [15][64]uint64 // Zobrist keys for piece (index by piece code) on each square
var zobristCastle [16]uint64    // Zobrist keys for each castling rights state (0-15)
var zobristEnPassant [64]uint64 // Zobrist keys for en passant target square
var zobristWhiteToMove uint64
var zobristBlackToMove uint64

// Initialize Zobrist keys (called on package init)
func init() {
	initZobrist()
}

func initZobrist() {
	// Use a fixed seed for reproducibility in tests
	rnd := rand.New(rand.NewSource(0xC0DE))

	for _, pc := range []Piece{
		WhitePawn, WhiteKnight, WhiteBishop, WhiteRook, WhiteQueen, WhiteKing,
		BlackPawn, BlackKnight, BlackBishop, BlackRook, BlackQueen, BlackKing,
	} {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[pc][sq] = rnd.Uint64()
		}
	}

	for cr := 0; cr < 16; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}

	for sq := 0; sq < 64; sq++ {
		zobristEnPassant[sq] = rnd.Uint64()
	}

	zobristWhiteToMove = rnd.Uint64()
	zobristBlackToMove = rnd.Uint64()
}

// contextKey folds side to move, castling rights and en passant into one key.
func (p *Position) contextKey() uint64 {
	key := zobristCastle[p.castlingRights&CastlingAll]
	if p.sideToMove == White {
		key ^= zobristWhiteToMove
	} else {
		key ^= zobristBlackToMove
	}
	if p.enPassantSquare != NoSquare {
		key ^= zobristEnPassant[p.enPassantSquare]
	}
	return key
}

// Hash returns the position fingerprint from the incrementally maintained
// placement key and the current context.
func (p *Position) Hash() uint64 { return p.placementKey ^ p.contextKey() }

func (p *Position) computePlacementKey() uint64 {
	var key uint64
	for sq := 0; sq < 64; sq++ {
		pc := p.mailbox[sq]
		if pc != NoPiece {
			key ^= zobristPiece[pc][sq]
		}
	}
	return key
}

// ComputeZobrist calculates the Zobrist hash for the current board state from scratch.
func (p *Position) ComputeZobrist() uint64 {
	return p.computePlacementKey() ^ p.contextKey()
}

package board

import (
	"errors"
	"fmt"
)

// historyCapacity is the initial capacity of the ply stack. Deep searches and
// long games grow it, but ordinary play never reallocates.
const historyCapacity = 256

// Ply holds what Undo needs to reverse one applied move.
type Ply struct {
	move          Move
	captured      Piece
	prevCastling  CastlingRights
	prevEnPassant Square
	prevRule50    int
	key           uint64 // hash of the position reached by the move
	threefold     bool   // the position reached its third occurrence at this ply
}

// Move returns the move that produced this ply.
func (pl Ply) Move() Move { return pl.move }

// Captured returns the piece taken from the destination square, if any.
// En passant captures report NoPiece here.
func (pl Ply) Captured() Piece { return pl.captured }

// Position represents the chess board state, including piece placement and game state.
type Position struct {
	// Piece bitboards indexed by color and piece type (type index 0 unused)
	bitboards [2][7]uint64

	// Occupancy bitboards for each side and for the whole board
	occupancy [2]uint64
	all       uint64

	// Piece placement for each square (NoPiece or a Piece constant)
	mailbox [64]Piece

	// Side to move (which player's turn it is)
	sideToMove Color

	// Castling rights for both sides (bitmask using CastlingRights flags)
	castlingRights CastlingRights

	// En passant target square (if a pawn moved two steps last move, otherwise NoSquare)
	enPassantSquare Square

	// Halfmove clock (number of half-moves since last capture or pawn advance, for 50-move rule)
	halfmoveClock int

	// Fullmove number (starts at 1, incremented after Black's move)
	fullmoveNumber int

	// XOR of the piece-square keys of every occupied square
	placementKey uint64

	// Running piece-square evaluation, positive favours White
	evaluation int

	// Occurrences of each full hash along the applied line, for threefold repetition
	hashCounts map[uint64]int

	history []Ply
}

// newEmptyPosition returns a position with no pieces, White to move and no rights.
func newEmptyPosition() *Position {
	return &Position{
		enPassantSquare: NoSquare,
		fullmoveNumber:  1,
		hashCounts:      make(map[uint64]int),
		history:         make([]Ply, 0, historyCapacity),
	}
}

// NewInitialPosition returns the standard chess starting position.
func NewInitialPosition() *Position {
	return MustParseFEN(FENStartPos)
}

// Clone returns a deep copy that shares no mutable state with p.
func (p *Position) Clone() *Position {
	c := *p
	c.hashCounts = make(map[uint64]int, len(p.hashCounts))
	for k, v := range p.hashCounts {
		c.hashCounts[k] = v
	}
	c.history = make([]Ply, len(p.history), max(cap(p.history), historyCapacity))
	copy(c.history, p.history)
	return &c
}

// ==========================
// Read-only accessors
// ==========================

// SideToMove reports which side is to play.
func (p *Position) SideToMove() Color { return p.sideToMove }

// CastlingRights returns the remaining castling rights.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// EnPassantSquare returns the current en-passant target square or NoSquare.
func (p *Position) EnPassantSquare() Square { return p.enPassantSquare }

// HalfmoveClock returns the number of plies since the last pawn move or capture.
func (p *Position) HalfmoveClock() int { return p.halfmoveClock }

// FullmoveNumber returns the full move counter (incremented after Black's move).
func (p *Position) FullmoveNumber() int { return p.fullmoveNumber }

// PieceAt returns the piece on a square.
func (p *Position) PieceAt(sq Square) Piece { return p.mailbox[sq] }

// Pieces returns the bitboard of one color's pieces of one type.
func (p *Position) Pieces(c Color, pt PieceType) uint64 { return p.bitboards[c][pt] }

// ColorOccupancy returns the occupancy bitboard for the given color.
func (p *Position) ColorOccupancy(c Color) uint64 { return p.occupancy[c] }

// AllOccupancy returns a bitboard of all occupied squares.
func (p *Position) AllOccupancy() uint64 { return p.all }

// KingSquare returns the square of the given side's king, or NoSquare.
func (p *Position) KingSquare(c Color) Square {
	k := p.bitboards[c][PieceTypeKing]
	if k == 0 {
		return NoSquare
	}
	return lsb(k)
}

// HistoryLen returns the number of plies applied since the position was constructed.
func (p *Position) HistoryLen() int { return len(p.history) }

// LastPly returns the most recent ply record.
func (p *Position) LastPly() (Ply, bool) {
	if len(p.history) == 0 {
		return Ply{}, false
	}
	return p.history[len(p.history)-1], true
}

// Occurrences returns how often the current position has been reached by an applied move.
func (p *Position) Occurrences() int { return p.hashCounts[p.Hash()] }

// ==========================
// Piece placement primitives
// ==========================

// placePiece puts a piece on an empty square, updating both representations,
// the placement key and the evaluation.
func (p *Position) placePiece(sq Square, pc Piece) {
	if pc == NoPiece {
		return
	}
	c := pc.Color()
	mask := bb(sq)
	p.mailbox[sq] = pc
	p.bitboards[c][pc.Type()] |= mask
	p.occupancy[c] |= mask
	p.all |= mask
	p.placementKey ^= zobristPiece[pc][sq]
	p.evaluation += squareValue(pc, sq)
}

// removePiece clears a square and returns what stood there.
func (p *Position) removePiece(sq Square) Piece {
	pc := p.mailbox[sq]
	if pc == NoPiece {
		return NoPiece
	}
	c := pc.Color()
	mask := ^bb(sq)
	p.mailbox[sq] = NoPiece
	p.bitboards[c][pc.Type()] &= mask
	p.occupancy[c] &= mask
	p.all &= mask
	p.placementKey ^= zobristPiece[pc][sq]
	p.evaluation -= squareValue(pc, sq)
	return pc
}

// ==========================
// Consistency
// ==========================

// Validate checks internal consistency between the mailbox, per-piece
// bitboards, occupancy, hash, evaluation and repetition counts. It returns
// the first violation found.
func (p *Position) Validate() error {
	var want [2][7]uint64
	for sq := Square(0); sq < 64; sq++ {
		pc := p.mailbox[sq]
		if pc == NoPiece {
			continue
		}
		if pc.Type() == PieceTypeNone || pc.Type() > PieceTypeKing {
			return fmt.Errorf("invalid piece code %d on %s", pc, sq)
		}
		want[pc.Color()][pc.Type()] |= bb(sq)
	}
	if want != p.bitboards {
		return errors.New("piece bitboards disagree with mailbox")
	}

	var union [2]uint64
	for c := White; c <= Black; c++ {
		for pt := PieceTypePawn; pt <= PieceTypeKing; pt++ {
			if union[c]&p.bitboards[c][pt] != 0 {
				return fmt.Errorf("%s piece bitboards overlap", c)
			}
			union[c] |= p.bitboards[c][pt]
		}
	}
	if union[White]&union[Black] != 0 {
		return errors.New("white and black pieces overlap")
	}
	if union != p.occupancy {
		return errors.New("color occupancy is not the union of piece bitboards")
	}
	if p.all != p.occupancy[White]|p.occupancy[Black] {
		return errors.New("all-occupancy is not the union of color occupancy")
	}

	if p.placementKey != p.computePlacementKey() {
		return errors.New("placement key disagrees with mailbox")
	}
	if p.Hash() != p.ComputeZobrist() {
		return errors.New("incremental hash disagrees with recomputation")
	}
	if p.evaluation != p.computeEvaluation() {
		return fmt.Errorf("evaluation %d, recomputed %d", p.evaluation, p.computeEvaluation())
	}

	total := 0
	for _, n := range p.hashCounts {
		if n <= 0 {
			return errors.New("non-positive repetition count")
		}
		total += n
	}
	if total != len(p.history) {
		return fmt.Errorf("repetition counts sum to %d, history depth is %d", total, len(p.history))
	}
	if p.halfmoveClock < 0 {
		return errors.New("negative halfmove clock")
	}
	return nil
}

package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrInvalidFEN is wrapped by every ParseFEN failure.
var ErrInvalidFEN = errors.New("invalid FEN")

func fenError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidFEN, fmt.Sprintf(format, args...))
}

// pieceFromChar converts a FEN character to the corresponding Piece constant.
func pieceFromChar(ch rune) Piece {
	switch ch {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

// charFromPiece converts a Piece constant to its FEN character representation.
func charFromPiece(p Piece) rune {
	const letters = " PNBRQK"
	t := p.Type()
	if t == PieceTypeNone || t > PieceTypeKing {
		return '?'
	}
	ch := rune(letters[t])
	if p.Color() == Black {
		ch += 'a' - 'A'
	}
	return ch
}

// ParseFEN parses a FEN string and returns a new Position set up to that position.
// The clock fields are optional; everything else is required. Errors wrap ErrInvalidFEN.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return nil, fenError("expected 4 to 6 fields, got %d", len(fields))
	}

	p := newEmptyPosition()

	// 1. Piece placement
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fenError("expected 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			piece := pieceFromChar(ch)
			if piece == NoPiece {
				return nil, fenError("unrecognized piece character %q", ch)
			}
			if file >= 8 {
				return nil, fenError("rank %d has more than 8 squares", rank+1)
			}
			if piece.Type() == PieceTypePawn && (rank == 0 || rank == 7) {
				return nil, fenError("pawn on back rank %d", rank+1)
			}
			p.placePiece(NewSquare(file, rank), piece)
			file++
		}
		if file != 8 {
			return nil, fenError("rank %d does not have 8 columns", rank+1)
		}
	}
	for c := White; c <= Black; c++ {
		if n := PopCount(p.bitboards[c][PieceTypeKing]); n != 1 {
			return nil, fenError("%s has %d kings", c, n)
		}
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return nil, fenError("side to move must be 'w' or 'b', got %q", fields[1])
	}

	// 3. Castling rights
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				p.castlingRights |= CastlingWhiteK
			case 'Q':
				p.castlingRights |= CastlingWhiteQ
			case 'k':
				p.castlingRights |= CastlingBlackK
			case 'q':
				p.castlingRights |= CastlingBlackQ
			default:
				return nil, fenError("invalid castling rights character %q", ch)
			}
		}
	}

	// 4. En passant target square
	if fields[3] != "-" {
		sq, ok := ParseSquare(fields[3])
		if !ok || !p.validEnPassant(sq) {
			return nil, fenError("invalid en passant square %q", fields[3])
		}
		p.enPassantSquare = sq
	}

	// 5. Halfmove clock
	if len(fields) > 4 {
		halfmove, err := strconv.Atoi(fields[4])
		if err != nil || halfmove < 0 {
			return nil, fenError("halfmove clock %q is not a non-negative number", fields[4])
		}
		p.halfmoveClock = halfmove
	}

	// 6. Fullmove number
	if len(fields) > 5 {
		fullmove, err := strconv.Atoi(fields[5])
		if err != nil || fullmove < 1 {
			return nil, fenError("fullmove number %q is not a positive number", fields[5])
		}
		p.fullmoveNumber = fullmove
	}

	return p, nil
}

// validEnPassant reports whether sq can be the target of a double push just
// played by the side not to move: the target and the pawn's origin are
// empty and the pawn stands in front of the target.
func (p *Position) validEnPassant(sq Square) bool {
	us := p.sideToMove
	targetRank, origin := 5, sq+8
	if us == Black {
		targetRank, origin = 2, sq-8
	}
	if sq.Rank() != targetRank {
		return false
	}
	return p.mailbox[sq] == NoPiece &&
		p.mailbox[origin] == NoPiece &&
		p.mailbox[enPassantVictim(sq, us)] == PieceFromType(us.Other(), PieceTypePawn)
}

// MustParseFEN is like ParseFEN but panics on error. Intended for constants and tests.
func MustParseFEN(fen string) *Position {
	p, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return p
}

// FEN produces the FEN string representation of the position.
func (p *Position) FEN() string {
	var sb strings.Builder

	// 1. Piece placement
	for rank := 7; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < 8; file++ {
			pc := p.mailbox[NewSquare(file, rank)]
			if pc == NoPiece {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte('0' + byte(emptyCount))
				emptyCount = 0
			}
			sb.WriteRune(charFromPiece(pc))
		}
		if emptyCount > 0 {
			sb.WriteByte('0' + byte(emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	// 2. Side to move
	if p.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	// 3. Castling rights
	sb.WriteString(p.castlingRights.String())
	sb.WriteByte(' ')

	// 4. En passant square
	sb.WriteString(p.enPassantSquare.String())
	sb.WriteByte(' ')

	// 5. Halfmove clock and 6. fullmove number
	sb.WriteString(strconv.Itoa(p.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullmoveNumber))
	return sb.String()
}

// String renders castling rights in FEN order, "-" when none remain.
func (cr CastlingRights) String() string {
	if cr&CastlingAll == 0 {
		return "-"
	}
	var b []byte
	for i, ch := range "KQkq" {
		if cr&(1<<i) != 0 {
			b = append(b, byte(ch))
		}
	}
	return string(b)
}

package board

// Move encodes a chess move in a 16-bit value.
type Move uint16

// Bitfield layout within Move (from LSB to MSB)
const (
	moveFromShift    = 0  // 6 bits
	moveToShift      = 6  // 6 bits
	movePromoteShift = 12 // 2 bits
	moveKindShift    = 14 // 2 bits
)

// NoMove never collides with a real move: its origin equals its destination.
const NoMove Move = 0

// MoveKind is the special-move tag stored in the top two bits.
type MoveKind uint8

const (
	KindNormal MoveKind = iota
	KindCastling
	KindPromotion
	KindEnPassant
)

// Promotion tags in bits 12-13. Only meaningful when the kind is KindPromotion.
const (
	PromoteQueen uint8 = iota
	PromoteRook
	PromoteBishop
	PromoteKnight
)

var promoTypes = [4]PieceType{PieceTypeQueen, PieceTypeRook, PieceTypeBishop, PieceTypeKnight}

// NewMove constructs a Move value from components.
func NewMove(from, to Square, kind MoveKind, promo uint8) Move {
	return Move(uint16(from&0x3F)<<moveFromShift |
		uint16(to&0x3F)<<moveToShift |
		uint16(promo&0x3)<<movePromoteShift |
		uint16(kind&0x3)<<moveKindShift)
}

// NewPromotion builds a promotion move to the given piece type.
func NewPromotion(from, to Square, pt PieceType) Move {
	var tag uint8
	switch pt {
	case PieceTypeRook:
		tag = PromoteRook
	case PieceTypeBishop:
		tag = PromoteBishop
	case PieceTypeKnight:
		tag = PromoteKnight
	default:
		tag = PromoteQueen
	}
	return NewMove(from, to, KindPromotion, tag)
}

// From returns the source square of the move.
func (m Move) From() Square { return Square((m >> moveFromShift) & 0x3F) }

// To returns the destination square of the move.
func (m Move) To() Square { return Square((m >> moveToShift) & 0x3F) }

// Kind returns the special-move tag.
func (m Move) Kind() MoveKind { return MoveKind((m >> moveKindShift) & 0x3) }

// PromotionTag returns the raw 2-bit promotion tag.
func (m Move) PromotionTag() uint8 { return uint8((m >> movePromoteShift) & 0x3) }

// PromotionPieceType returns the colorless type of the promoted piece (or PieceTypeNone).
func (m Move) PromotionPieceType() PieceType {
	if m.Kind() != KindPromotion {
		return PieceTypeNone
	}
	return promoTypes[m.PromotionTag()]
}

// IsCastle, IsPromotion and IsEnPassant test the kind tag.
func (m Move) IsCastle() bool    { return m.Kind() == KindCastling }
func (m Move) IsPromotion() bool { return m.Kind() == KindPromotion }
func (m Move) IsEnPassant() bool { return m.Kind() == KindEnPassant }

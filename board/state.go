package board

// GameState is the terminal status of a position.
type GameState uint8

const (
	InProgress GameState = iota
	CheckmateByWhite
	CheckmateByBlack
	Stalemate
	ThreefoldRepetition
	FiftyMove
	InsufficientMaterial
)

var gameStateNames = [...]string{
	InProgress:           "in progress",
	CheckmateByWhite:     "checkmate by white",
	CheckmateByBlack:     "checkmate by black",
	Stalemate:            "stalemate",
	ThreefoldRepetition:  "threefold repetition",
	FiftyMove:            "fifty-move rule",
	InsufficientMaterial: "insufficient material",
}

func (s GameState) String() string {
	if int(s) < len(gameStateNames) {
		return gameStateNames[s]
	}
	return "unknown"
}

// IsCheckmate reports whether either side has been mated.
func (s GameState) IsCheckmate() bool { return s == CheckmateByWhite || s == CheckmateByBlack }

// IsDraw reports whether the game ended without a winner.
func (s GameState) IsDraw() bool { return s >= Stalemate }

// GameState classifies the position. It is evaluated on demand and not cached.
func (p *Position) GameState() GameState {
	return p.GameStateFrom(p.GeneratePseudoMoves())
}

// GameStateFrom classifies the position using an already generated
// pseudo-legal move list for the side to move.
func (p *Position) GameStateFrom(pseudo []Move) GameState {
	if !p.anyLegal(pseudo) {
		if p.InCheck(p.sideToMove) {
			if p.sideToMove == White {
				return CheckmateByBlack
			}
			return CheckmateByWhite
		}
		return Stalemate
	}
	if n := len(p.history); n > 0 && p.history[n-1].threefold {
		return ThreefoldRepetition
	}
	if p.halfmoveClock >= 100 {
		return FiftyMove
	}
	if p.InsufficientMaterial() {
		return InsufficientMaterial
	}
	return InProgress
}

// LegalMoveExists reports whether the side to move has at least one legal move.
func (p *Position) LegalMoveExists() bool {
	return p.anyLegal(p.GeneratePseudoMoves())
}

func (p *Position) anyLegal(pseudo []Move) bool {
	for _, m := range pseudo {
		if p.Apply(m) {
			p.Undo()
			return true
		}
	}
	return false
}

// InsufficientMaterial reports whether neither side can possibly deliver mate.
// Any pawn, rook or queen keeps mate possible, as does a side holding two
// bishops on opposite colours, two knights, or a knight with a bishop.
func (p *Position) InsufficientMaterial() bool {
	for c := White; c <= Black; c++ {
		bbs := p.bitboards[c]
		if bbs[PieceTypePawn]|bbs[PieceTypeRook]|bbs[PieceTypeQueen] != 0 {
			return false
		}
	}
	for c := White; c <= Black; c++ {
		bishops := p.bitboards[c][PieceTypeBishop]
		knights := p.bitboards[c][PieceTypeKnight]
		if bishops&LightSquares != 0 && bishops&DarkSquares != 0 {
			return false
		}
		if PopCount(knights) >= 2 {
			return false
		}
		if knights != 0 && bishops != 0 {
			return false
		}
	}
	return true
}

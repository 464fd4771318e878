package board

// Piece-square tables with material folded in, laid out from a1 (index 0)
// to h8 (index 63) as seen by White. Black reads them mirrored and negated.
var pieceSquareTables = [7][64]int{
	PieceTypePawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		105, 110, 110, 75, 75, 110, 110, 105,
		105, 95, 90, 100, 100, 90, 95, 105,
		100, 100, 100, 125, 125, 100, 100, 100,
		105, 105, 110, 127, 127, 110, 105, 105,
		110, 110, 120, 130, 130, 120, 110, 110,
		150, 150, 150, 150, 150, 150, 150, 150,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	PieceTypeKnight: {
		250, 260, 280, 270, 270, 280, 260, 250,
		260, 280, 300, 305, 305, 300, 280, 260,
		270, 305, 310, 315, 315, 310, 305, 270,
		270, 300, 315, 320, 320, 315, 300, 270,
		270, 305, 315, 320, 320, 315, 305, 270,
		270, 300, 310, 315, 315, 310, 300, 270,
		260, 280, 300, 300, 300, 300, 280, 260,
		250, 260, 270, 270, 270, 270, 260, 250,
	},
	PieceTypeBishop: {
		305, 315, 285, 315, 315, 285, 315, 305,
		315, 330, 325, 325, 325, 325, 330, 335,
		315, 335, 335, 335, 335, 335, 335, 315,
		315, 325, 335, 335, 335, 335, 325, 315,
		315, 330, 330, 335, 335, 330, 330, 315,
		315, 325, 330, 335, 335, 330, 325, 315,
		315, 325, 325, 325, 325, 325, 325, 315,
		305, 315, 315, 315, 315, 315, 315, 305,
	},
	PieceTypeRook: {
		500, 500, 500, 500, 500, 500, 500, 500,
		500, 500, 500, 500, 500, 500, 500, 500,
		500, 500, 500, 500, 500, 500, 500, 500,
		500, 500, 500, 500, 500, 500, 500, 500,
		500, 500, 500, 500, 500, 500, 500, 500,
		500, 500, 500, 500, 500, 500, 500, 500,
		500, 500, 500, 500, 500, 500, 500, 500,
		500, 500, 500, 500, 500, 500, 500, 500,
	},
	PieceTypeQueen: {
		900, 900, 900, 900, 900, 900, 900, 900,
		900, 900, 900, 900, 900, 900, 900, 900,
		900, 900, 900, 900, 900, 900, 900, 900,
		900, 900, 900, 900, 900, 900, 900, 900,
		900, 900, 900, 900, 900, 900, 900, 900,
		900, 900, 900, 900, 900, 900, 900, 900,
		900, 900, 900, 900, 900, 900, 900, 900,
		900, 900, 900, 900, 900, 900, 900, 900,
	},
	PieceTypeKing: {
		20, 30, 10, 0, 0, 10, 30, 20,
		20, 20, 0, 0, 0, 0, 20, 20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	},
}

// squareValue is the signed contribution of a piece standing on sq.
func squareValue(pc Piece, sq Square) int {
	if pc.Color() == White {
		return pieceSquareTables[pc.Type()][sq]
	}
	return -pieceSquareTables[pc.Type()][flipSquare(sq)]
}

// Evaluate returns the static score in centipawns, positive when White is better.
func (p *Position) Evaluate() int { return p.evaluation }

func (p *Position) computeEvaluation() int {
	score := 0
	for sq := Square(0); sq < 64; sq++ {
		if pc := p.mailbox[sq]; pc != NoPiece {
			score += squareValue(pc, sq)
		}
	}
	return score
}

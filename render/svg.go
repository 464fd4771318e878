// Package render draws positions as SVG images.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"chessbot/board"
)

const (
	lightColor     = "#f0d9b5"
	darkColor      = "#b58863"
	highlightColor = "#cdd26a"
	defaultSquare  = 45
)

// Options controls how a board is drawn.
type Options struct {
	// SquareSize is the side of one square in pixels. Zero means 45.
	SquareSize int
	// Flip draws the board from Black's side.
	Flip bool
	// Highlight marks the origin and destination of a move, usually the last one played.
	Highlight board.Move
	// NoCoordinates hides file letters and rank numbers.
	NoCoordinates bool
}

var glyphs = map[board.Piece]string{
	board.WhiteKing:   "♔",
	board.WhiteQueen:  "♕",
	board.WhiteRook:   "♖",
	board.WhiteBishop: "♗",
	board.WhiteKnight: "♘",
	board.WhitePawn:   "♙",
	board.BlackKing:   "♚",
	board.BlackQueen:  "♛",
	board.BlackRook:   "♜",
	board.BlackBishop: "♝",
	board.BlackKnight: "♞",
	board.BlackPawn:   "♟",
}

// WriteSVG writes an SVG image of p to w.
func WriteSVG(w io.Writer, p *board.Position, opts Options) error {
	size := opts.SquareSize
	if size <= 0 {
		size = defaultSquare
	}
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(8*size, 8*size)
	canvas.Title(p.FEN())

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := board.NewSquare(file, rank)
			x, y := origin(sq, size, opts.Flip)
			fill := darkColor
			if (file+rank)%2 == 1 {
				fill = lightColor
			}
			if highlighted(sq, opts.Highlight) {
				fill = highlightColor
			}
			canvas.Rect(x, y, size, size, "fill:"+fill)

			if pc := p.PieceAt(sq); pc != board.NoPiece {
				canvas.Text(x+size/2, y+size*4/5, glyphs[pc],
					fmt.Sprintf("font-size:%dpx;text-anchor:middle;fill:#000", size*4/5))
			}
		}
	}
	if !opts.NoCoordinates {
		drawCoordinates(canvas, size, opts.Flip)
	}
	canvas.End()
	return ew.err
}

func drawCoordinates(canvas *svg.SVG, size int, flip bool) {
	style := fmt.Sprintf("font-size:%dpx;font-family:sans-serif;fill:#555", size/5)
	for i := 0; i < 8; i++ {
		file, rank := i, i
		if flip {
			file, rank = 7-i, 7-i
		}
		canvas.Text(i*size+size-size/6, 8*size-size/12, string(rune('a'+file)), style)
		canvas.Text(size/20, (7-i)*size+size/4, string(rune('1'+rank)), style)
	}
}

// origin returns the top-left pixel of sq.
func origin(sq board.Square, size int, flip bool) (int, int) {
	col, row := sq.File(), 7-sq.Rank()
	if flip {
		col, row = 7-col, 7-row
	}
	return col * size, row * size
}

func highlighted(sq board.Square, m board.Move) bool {
	return m != board.NoMove && (m.From() == sq || m.To() == sq)
}

// errWriter keeps the first write error; svgo discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(b []byte) (int, error) {
	if e.err != nil {
		return len(b), nil
	}
	n, err := e.w.Write(b)
	if err != nil {
		e.err = err
	}
	return n, err
}

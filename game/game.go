// Package game wraps a board.Position into a playable session: validated
// human moves, engine replies, undo, resignation and a final result.
package game

import (
	"errors"
	"fmt"

	"chessbot/board"
	"chessbot/engine"
)

// ErrGameOver is returned when a move or resignation is attempted after the game ended.
var ErrGameOver = errors.New("game is over")

// Option configures a Game.
type Option func(*Game)

// WithSearcher sets the searcher used by PlayBest.
func WithSearcher(s *engine.Searcher) Option {
	return func(g *Game) { g.searcher = s }
}

// Game is one chess game. It is not safe for concurrent use.
type Game struct {
	pos      *board.Position
	moves    []board.Move
	resigned bool
	loser    board.Color
	searcher *engine.Searcher
}

// New starts a game from the standard initial position.
func New(opts ...Option) *Game {
	return newGame(board.NewInitialPosition(), opts)
}

// FromFEN starts a game from an arbitrary position.
func FromFEN(fen string, opts ...Option) (*Game, error) {
	p, err := board.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return newGame(p, opts), nil
}

func newGame(p *board.Position, opts []Option) *Game {
	g := &Game{pos: p}
	for _, opt := range opts {
		opt(g)
	}
	if g.searcher == nil {
		g.searcher = engine.NewSearcher()
	}
	return g
}

// Play applies a move given in coordinate notation ("e2e4", "e7e8q").
func (g *Game) Play(text string) error {
	if g.Ended() {
		return fmt.Errorf("play %s: %w", text, ErrGameOver)
	}
	m, err := g.pos.ParseLegalMove(text)
	if err != nil {
		return fmt.Errorf("play %s: %w", text, err)
	}
	g.apply(m)
	return nil
}

// PlayBest lets the engine choose and play a move for the side to move.
func (g *Game) PlayBest(depth int) (board.Move, error) {
	if g.Ended() {
		return board.NoMove, ErrGameOver
	}
	res := g.searcher.Search(g.pos, depth)
	if res.Move == board.NoMove {
		return board.NoMove, ErrGameOver
	}
	g.apply(res.Move)
	return res.Move, nil
}

func (g *Game) apply(m board.Move) {
	if !g.pos.Apply(m) {
		panic(fmt.Sprintf("game: legal move %s rejected in %s", m, g.pos.FEN()))
	}
	g.moves = append(g.moves, m)
}

// Undo takes back the last move. A resignation is withdrawn first.
// It reports false when there is nothing to take back.
func (g *Game) Undo() bool {
	if g.resigned {
		g.resigned = false
		return true
	}
	if len(g.moves) == 0 {
		return false
	}
	g.pos.Undo()
	g.moves = g.moves[:len(g.moves)-1]
	return true
}

// Resign ends the game with a loss for c.
func (g *Game) Resign(c board.Color) error {
	if g.Ended() {
		return ErrGameOver
	}
	g.resigned = true
	g.loser = c
	return nil
}

// State classifies the current position.
func (g *Game) State() board.GameState { return g.pos.GameState() }

// Ended reports whether the game is over by rule or by resignation.
func (g *Game) Ended() bool {
	return g.resigned || g.State() != board.InProgress
}

// Turn returns the side to move.
func (g *Game) Turn() board.Color { return g.pos.SideToMove() }

// FEN returns the current position in Forsyth-Edwards Notation.
func (g *Game) FEN() string { return g.pos.FEN() }

// Position returns a copy of the current position.
func (g *Game) Position() *board.Position { return g.pos.Clone() }

// Moves returns the moves played so far.
func (g *Game) Moves() []board.Move {
	return append([]board.Move(nil), g.moves...)
}

// LastMove returns the most recent move, or NoMove.
func (g *Game) LastMove() board.Move {
	if len(g.moves) == 0 {
		return board.NoMove
	}
	return g.moves[len(g.moves)-1]
}

// Outcome returns the PGN result token: "1-0", "0-1", "1/2-1/2" or "*".
func (g *Game) Outcome() string {
	if g.resigned {
		if g.loser == board.White {
			return "0-1"
		}
		return "1-0"
	}
	switch s := g.State(); {
	case s == board.CheckmateByWhite:
		return "1-0"
	case s == board.CheckmateByBlack:
		return "0-1"
	case s.IsDraw():
		return "1/2-1/2"
	default:
		return "*"
	}
}

// Summary describes how the game ended, or that it is still running.
func (g *Game) Summary() string {
	if g.resigned {
		return fmt.Sprintf("%s resigned", g.loser)
	}
	switch s := g.State(); s {
	case board.InProgress:
		return fmt.Sprintf("%s to move", g.Turn())
	case board.CheckmateByWhite, board.CheckmateByBlack:
		return s.String()
	default:
		return "draw by " + s.String()
	}
}

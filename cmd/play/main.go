// Command play runs a game against the engine in the terminal.
//
// Enter moves in coordinate notation (e2e4, e7e8q). Other commands:
// undo, resign, fen, quit.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"chessbot/board"
	"chessbot/engine"
	"chessbot/game"
	"chessbot/render"
)

func main() {
	depth := flag.Int("depth", 2, "engine search depth in plies")
	color := flag.String("color", "white", "side you play: white or black")
	fen := flag.String("fen", board.FENStartPos, "starting position")
	svgPath := flag.String("svg", "", "write an SVG snapshot of the board here after every move")
	workers := flag.Int("workers", 1, "goroutines used by the engine at the root")
	verbose := flag.Bool("v", false, "log search statistics")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).With().Timestamp().Logger()

	var human board.Color
	switch strings.ToLower(*color) {
	case "white", "w":
		human = board.White
	case "black", "b":
		human = board.Black
	default:
		log.Fatal().Str("color", *color).Msg("unknown color")
	}

	searcher := engine.NewSearcher(engine.WithWorkers(*workers), engine.WithLogger(log))
	g, err := game.FromFEN(*fen, game.WithSearcher(searcher))
	if err != nil {
		log.Fatal().Err(err).Msg("bad starting position")
	}

	s := &session{game: g, human: human, depth: *depth, svgPath: *svgPath, log: log, out: os.Stdout}
	s.run(os.Stdin)
}

type session struct {
	game    *game.Game
	human   board.Color
	depth   int
	svgPath string
	log     zerolog.Logger
	out     io.Writer
}

func (s *session) run(in io.Reader) {
	scanner := bufio.NewScanner(in)
	s.snapshot()
	for {
		if s.game.Ended() {
			fmt.Fprintf(s.out, "game over: %s (%s)\n", s.game.Summary(), s.game.Outcome())
			return
		}
		if s.game.Turn() != s.human {
			m, err := s.game.PlayBest(s.depth)
			if err != nil {
				s.log.Error().Err(err).Msg("engine move")
				return
			}
			fmt.Fprintf(s.out, "engine plays %s\n", m)
			s.snapshot()
			continue
		}

		fmt.Fprintf(s.out, "%s> ", s.game.Turn())
		if !scanner.Scan() {
			return
		}
		switch cmd := strings.ToLower(strings.TrimSpace(scanner.Text())); cmd {
		case "":
		case "quit":
			return
		case "fen":
			fmt.Fprintln(s.out, s.game.FEN())
		case "resign":
			if err := s.game.Resign(s.human); err != nil {
				s.log.Warn().Err(err).Msg("resign")
			}
		case "undo":
			// take back the engine reply and our own move
			s.game.Undo()
			s.game.Undo()
			s.snapshot()
		default:
			if err := s.game.Play(cmd); err != nil {
				switch {
				case errors.Is(err, board.ErrInvalidMove):
					fmt.Fprintln(s.out, "could not read move; use coordinates like e2e4 or e7e8q")
				case errors.Is(err, board.ErrIllegalMove):
					fmt.Fprintln(s.out, "illegal move")
				default:
					fmt.Fprintln(s.out, err)
				}
				continue
			}
			s.snapshot()
		}
	}
}

func (s *session) snapshot() {
	if s.svgPath == "" {
		return
	}
	f, err := os.Create(s.svgPath)
	if err != nil {
		s.log.Error().Err(err).Str("path", s.svgPath).Msg("create svg")
		return
	}
	opts := render.Options{Flip: s.human == board.Black, Highlight: s.game.LastMove()}
	if err := render.WriteSVG(f, s.game.Position(), opts); err != nil {
		s.log.Error().Err(err).Msg("write svg")
	}
	if err := f.Close(); err != nil {
		s.log.Error().Err(err).Msg("close svg")
	}
}

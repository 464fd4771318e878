package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"chessbot/board"
	"chessbot/engine"
)

const defaultDepth = 4

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(zerolog.InfoLevel).With().Timestamp().Logger()
	uciLoop(os.Stdin, os.Stdout, engine.NewSearcher(engine.WithLogger(log)))
}

func uciLoop(in io.Reader, out io.Writer, searcher *engine.Searcher) {
	scanner := bufio.NewScanner(in)
	pos := board.NewInitialPosition()

	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Fprintln(out, "id name chessbot")
			fmt.Fprintln(out, "id author chessbot developers")
			fmt.Fprintln(out, "uciok")
		case "isready":
			fmt.Fprintln(out, "readyok")
		case "ucinewgame":
			pos = board.NewInitialPosition()
		case "quit":
			return
		case "stop":
			// searches run to completion before the next command is read
		case "d":
			fmt.Fprintln(out, pos.FEN())
			fmt.Fprintln(out, "state", pos.GameState())
		case "go":
			depth := defaultDepth
			goScanner := bufio.NewScanner(strings.NewReader(line))
			goScanner.Split(bufio.ScanWords)
			goScanner.Scan() // skip the first token
			for goScanner.Scan() {
				switch nextToken := strings.ToLower(goScanner.Text()); nextToken {
				case "depth":
					if !goScanner.Scan() {
						fmt.Fprintln(out, "info string Malformed go command option depth")
						continue
					}
					d, err := strconv.Atoi(goScanner.Text())
					if err != nil || d < 1 {
						fmt.Fprintln(out, "info string Malformed go command option; could not convert depth")
						continue
					}
					depth = d
				case "wtime", "btime", "winc", "binc", "movestogo", "movetime":
					goScanner.Scan() // fixed-depth search ignores clocks
				case "infinite":
				default:
					fmt.Fprintln(out, "info string Unknown go subcommand", nextToken)
				}
			}

			res := searcher.Search(pos, depth)
			// mate scores are flat, so "mate N" names the horizon, not a measured distance
			fmt.Fprintf(out, "info depth %d score %s nodes %d time %d\n",
				res.Depth, uciScore(res, pos.SideToMove()), res.Nodes, res.Elapsed.Milliseconds())
			if res.Move == board.NoMove {
				fmt.Fprintln(out, "bestmove 0000")
			} else {
				fmt.Fprintln(out, "bestmove", res.Move)
			}
		case "position":
			next, err := parsePosition(line)
			if err != nil {
				fmt.Fprintln(out, "info string", err)
				continue
			}
			pos = next
		default:
			fmt.Fprintln(out, "info string Unknown command", tokens[0])
		}
	}
}

// parsePosition handles "position startpos|fen <fen> [moves m1 m2 ...]".
func parsePosition(line string) (*board.Position, error) {
	posScanner := bufio.NewScanner(strings.NewReader(line))
	posScanner.Split(bufio.ScanWords)
	posScanner.Scan() // skip the first token
	if !posScanner.Scan() {
		return nil, fmt.Errorf("malformed position command")
	}

	var pos *board.Position
	switch strings.ToLower(posScanner.Text()) {
	case "startpos":
		pos = board.NewInitialPosition()
		posScanner.Scan() // advance the scanner to leave it in a consistent state
	case "fen":
		var fields []string
		for posScanner.Scan() && strings.ToLower(posScanner.Text()) != "moves" {
			fields = append(fields, posScanner.Text())
		}
		p, err := board.ParseFEN(strings.Join(fields, " "))
		if err != nil {
			return nil, err
		}
		pos = p
	default:
		return nil, fmt.Errorf("invalid position subcommand %q", posScanner.Text())
	}

	if strings.ToLower(posScanner.Text()) != "moves" {
		return pos, nil
	}
	for posScanner.Scan() { // for each move
		m, err := pos.ParseLegalMove(strings.ToLower(posScanner.Text()))
		if err != nil {
			return nil, fmt.Errorf("move %s in %s: %w", posScanner.Text(), pos.FEN(), err)
		}
		pos.Apply(m)
	}
	return pos, nil
}

// uciScore converts a White-relative score to the side-to-move view. Mate
// distance is not tracked, so mates are reported at the search horizon.
func uciScore(res engine.Result, stm board.Color) string {
	score := res.Score
	if stm == board.Black {
		score = -score
	}
	switch {
	case score >= engine.Infinity:
		return fmt.Sprintf("mate %d", (res.Depth+1)/2)
	case score <= -engine.Infinity:
		return fmt.Sprintf("mate -%d", max(res.Depth/2, 1))
	default:
		return fmt.Sprintf("cp %d", score)
	}
}

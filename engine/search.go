// Package engine selects moves with a fixed-depth minimax search and
// alpha-beta pruning over board.Position's make/undo protocol.
package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"chessbot/board"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	// Infinity is the mate score: +Infinity when White mates, -Infinity when Black does.
	Infinity  = 9999999
	DrawScore = 0
)

// Result describes one completed search.
type Result struct {
	Move    board.Move // NoMove when the side to move has no legal move
	Score   int        // from White's point of view
	Nodes   uint64
	Depth   int
	Elapsed time.Duration
}

// Searcher runs fixed-depth searches. The zero configuration is serial and silent.
type Searcher struct {
	workers int
	log     zerolog.Logger
}

// NewSearcher returns a Searcher configured by opts.
func NewSearcher(opts ...Option) *Searcher {
	s := &Searcher{workers: 1, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BestMove searches p to the given depth with a default Searcher and returns
// the chosen move, or NoMove when there is none.
func BestMove(p *board.Position, depth int) board.Move {
	return NewSearcher().Search(p, depth).Move
}

// Search runs minimax to depth plies (at least one) from p. White maximizes,
// Black minimizes. Ties go to the earliest move in generation order. The
// position is left unchanged.
func (s *Searcher) Search(p *board.Position, depth int) Result {
	start := time.Now()
	if depth < 1 {
		depth = 1
	}

	var res Result
	if s.workers > 1 {
		res = s.searchParallel(p, depth)
	} else {
		res = s.searchSerial(p, depth)
	}
	res.Depth = depth
	res.Elapsed = time.Since(start)

	s.log.Debug().
		Int("depth", res.Depth).
		Int("score", res.Score).
		Uint64("nodes", res.Nodes).
		Dur("elapsed", res.Elapsed).
		Int("workers", s.workers).
		Stringer("move", res.Move).
		Msg("search complete")
	return res
}

func (s *Searcher) searchSerial(p *board.Position, depth int) Result {
	st := newSearchState(depth)
	st.nodes++

	maximizing := p.SideToMove() == board.White
	alpha, beta := -Infinity, Infinity
	best := board.NoMove
	bestScore := 0

	for _, m := range p.GeneratePseudoMoves() {
		if !p.Apply(m) {
			continue
		}
		score := st.minimax(p, depth-1, 1, alpha, beta)
		p.Undo()

		if best == board.NoMove || improves(score, bestScore, maximizing) {
			best, bestScore = m, score
		}
		if maximizing {
			alpha = max(alpha, bestScore)
		} else {
			beta = min(beta, bestScore)
		}
		if beta <= alpha {
			break
		}
	}

	if best == board.NoMove {
		bestScore = terminalScore(p.GameState())
	}
	return Result{Move: best, Score: bestScore, Nodes: st.nodes}
}

// searchParallel scores every legal root move with a full window on a
// private copy of the position, then picks the first best in generation
// order. The chosen move and score match searchSerial.
func (s *Searcher) searchParallel(p *board.Position, depth int) Result {
	moves := p.LegalMoves()
	if len(moves) == 0 {
		return Result{Move: board.NoMove, Score: terminalScore(p.GameState()), Nodes: 1}
	}

	scores := make([]int, len(moves))
	var nodes atomic.Uint64
	nodes.Add(1)

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < min(s.workers, len(moves)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q := p.Clone()
			st := newSearchState(depth)
			for i := range jobs {
				q.Apply(moves[i])
				scores[i] = st.minimax(q, depth-1, 1, -Infinity, Infinity)
				q.Undo()
			}
			nodes.Add(st.nodes)
		}()
	}
	for i := range moves {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	maximizing := p.SideToMove() == board.White
	bestIdx := 0
	for i := 1; i < len(moves); i++ {
		if improves(scores[i], scores[bestIdx], maximizing) {
			bestIdx = i
		}
	}
	return Result{Move: moves[bestIdx], Score: scores[bestIdx], Nodes: nodes.Load()}
}

// searchState holds the per-search node counter and one reusable move
// buffer per ply.
type searchState struct {
	nodes uint64
	bufs  [][]board.Move
}

func newSearchState(depth int) *searchState {
	return &searchState{bufs: make([][]board.Move, depth+1)}
}

func (st *searchState) movesAt(p *board.Position, ply int) []board.Move {
	if ply >= len(st.bufs) {
		st.bufs = append(st.bufs, nil)
	}
	buf := st.bufs[ply]
	if buf == nil {
		buf = make([]board.Move, 0, 128)
	}
	st.bufs[ply] = p.GeneratePseudoMovesInto(buf)
	return st.bufs[ply]
}

// minimax scores p from White's point of view. Terminal positions score
// +-Infinity or DrawScore at any depth; depth 0 falls back to the static
// evaluation.
func (st *searchState) minimax(p *board.Position, depth, ply, alpha, beta int) int {
	st.nodes++
	moves := st.movesAt(p, ply)

	if state := p.GameStateFrom(moves); state != board.InProgress {
		return terminalScore(state)
	}
	if depth == 0 {
		return p.Evaluate()
	}

	if p.SideToMove() == board.White {
		best := -Infinity
		for _, m := range moves {
			if !p.Apply(m) {
				continue
			}
			score := st.minimax(p, depth-1, ply+1, alpha, beta)
			p.Undo()

			best = max(best, score)
			alpha = max(alpha, best)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := Infinity
	for _, m := range moves {
		if !p.Apply(m) {
			continue
		}
		score := st.minimax(p, depth-1, ply+1, alpha, beta)
		p.Undo()

		best = min(best, score)
		beta = min(beta, best)
		if beta <= alpha {
			break
		}
	}
	return best
}

func terminalScore(state board.GameState) int {
	switch state {
	case board.CheckmateByWhite:
		return Infinity
	case board.CheckmateByBlack:
		return -Infinity
	default:
		return DrawScore
	}
}

func improves(score, best int, maximizing bool) bool {
	if maximizing {
		return score > best
	}
	return score < best
}

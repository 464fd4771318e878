package board

// Perft counts leaf nodes (legal move sequences) from the position for a given depth.
// Per-depth move buffers are reused to avoid allocations.
func Perft(p *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	pc := perftCtx{bufs: make([][]Move, depth+1)}
	return perftRec(p, depth, &pc)
}

type perftCtx struct {
	bufs [][]Move
}

func (pc *perftCtx) bufFor(depth int) []Move {
	buf := pc.bufs[depth]
	if buf == nil {
		buf = make([]Move, 0, 256)
	}
	return buf[:0]
}

func perftRec(p *Position, depth int, pc *perftCtx) uint64 {
	if depth == 0 {
		return 1
	}
	moves := p.GeneratePseudoMovesInto(pc.bufFor(depth))
	pc.bufs[depth] = moves
	var nodes uint64
	for _, m := range moves {
		if p.Apply(m) {
			nodes += perftRec(p, depth-1, pc)
			p.Undo()
		}
	}
	return nodes
}

// PerftDivide returns a map from each legal root move to the number of leaf nodes
// reachable from that move at the given depth. Useful for debugging.
func PerftDivide(p *Position, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range p.GeneratePseudoMoves() {
		if p.Apply(m) {
			result[m] = Perft(p, depth-1)
			p.Undo()
		}
	}
	return result
}

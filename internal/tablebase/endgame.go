package tablebase

import "github.com/hailam/checkerplay/internal/board"

// maxProbeDepth bounds the endgame solver's own recursion so a
// pathological all-kings shuffle cannot recurse forever; positions
// that genuinely need more plies than this to resolve report Draw
// (unresolved), and the caller falls back to its heuristic estimate.
const maxProbeDepth = 96

type frameKey struct {
	hash uint64
	side board.Side
}

// EndgameProber exactly solves positions at or below maxPieces by
// exhaustive recursive search with no depth cutoff (beyond the
// runaway guard above) — spec.md §9's sum-type idea applied to a
// genuinely small search space where an exact answer is cheap.
type EndgameProber struct {
	maxPieces int
}

// NewEndgameProber returns a prober willing to solve positions with
// at most maxPieces pieces on the board.
func NewEndgameProber(maxPieces int) *EndgameProber {
	return &EndgameProber{maxPieces: maxPieces}
}

func (e *EndgameProber) MaxPieces() int { return e.maxPieces }
func (e *EndgameProber) Available() bool { return e.maxPieces > 0 }

// Probe exactly solves pos if it has at most MaxPieces() pieces.
func (e *EndgameProber) Probe(pos *board.Position, side board.Side) ProbeResult {
	if !e.Available() || pos.PieceCount() > e.maxPieces {
		return ProbeResult{}
	}
	memo := make(map[frameKey]WDL)
	onPath := make(map[frameKey]bool)
	return ProbeResult{Found: true, WDL: e.solve(pos, side, 0, memo, onPath)}
}

func (e *EndgameProber) solve(pos *board.Position, side board.Side, depth int, memo map[frameKey]WDL, onPath map[frameKey]bool) WDL {
	if score, ok := pos.IsTerminal(); ok {
		if score.IsWin() {
			return Win
		}
		return Loss
	}

	key := frameKey{hash: pos.Hash(), side: side}
	if wdl, ok := memo[key]; ok {
		return wdl
	}
	if onPath[key] || depth >= maxProbeDepth {
		return Draw
	}

	children := pos.Successors(side)
	if len(children) == 0 {
		// The side to move has no legal move: a loss for that side.
		if side == board.Red {
			return Loss
		}
		return Win
	}

	onPath[key] = true
	best := Loss
	if side == board.Black {
		best = Win
	}
	for _, child := range children {
		wdl := e.solve(child, side.Opposite(), depth+1, memo, onPath)
		if side == board.Red && wdl > best {
			best = wdl
			if best == Win {
				break
			}
		}
		if side == board.Black && wdl < best {
			best = wdl
			if best == Loss {
				break
			}
		}
	}
	delete(onPath, key)
	memo[key] = best
	return best
}

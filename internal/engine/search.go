package engine

import (
	"github.com/hailam/checkerplay/internal/board"
	"github.com/hailam/checkerplay/internal/tablebase"
)

// Searcher performs the depth-limited negamax search with alpha-beta
// pruning described in spec §4.3. One Searcher is owned by exactly
// one top-level Search call — its transposition store, search stack,
// and strategy map are never shared across root positions (spec §5).
type Searcher struct {
	tt       *TranspositionStore
	stack    *SearchStack
	strategy *StrategyMap
	prober   tablebase.Prober
	budget   *Budget
	nodes    uint64

	// disableCache bypasses the transposition store entirely. It
	// exists so tests can check cache soundness (spec §8 property 8:
	// replacing the store with a no-op must not change any returned
	// score, only runtime).
	disableCache bool
}

// DisableCache turns off transposition memoization for this Searcher.
func (s *Searcher) DisableCache(disabled bool) { s.disableCache = disabled }

// NewSearcher returns a Searcher with fresh stores. A nil prober
// disables the endgame shortcut (equivalent to tablebase.NoopProber).
func NewSearcher(prober tablebase.Prober) *Searcher {
	if prober == nil {
		prober = tablebase.NoopProber{}
	}
	return &Searcher{
		tt:       NewTranspositionStore(),
		stack:    NewSearchStack(),
		strategy: NewStrategyMap(),
		prober:   prober,
	}
}

// Nodes returns the number of frames visited by the most recent Search.
func (s *Searcher) Nodes() uint64 { return s.nodes }

// Search runs the negamax search from root at rootSide down to
// maxDepth plies, stopping early if budget elapses, then recovers the
// principal variation (spec §4.3/§4.5). The returned sequence always
// begins with root.
func (s *Searcher) Search(root *board.Position, rootSide board.Side, maxDepth int, budget *Budget) []*board.Position {
	s.budget = budget
	s.nodes = 0
	s.negamax(root, rootSide, maxDepth, board.LossScore(), board.WinScore())
	return Recover(s.strategy, root, rootSide)
}

// negamax implements spec §4.3's nine steps. alpha is the best score
// Red can already guarantee along this path, beta the best Black can
// already guarantee; a node that cannot beat both is pruned.
func (s *Searcher) negamax(pos *board.Position, side board.Side, depthRemaining int, alpha, beta board.Score) board.Score {
	s.nodes++

	// Step 1: terminal test, then no-legal-move loss.
	if score, ok := pos.IsTerminal(); ok {
		return score
	}
	children := pos.Successors(side)
	if len(children) == 0 {
		if side == board.Red {
			return board.LossScore()
		}
		return board.WinScore()
	}

	// Endgame shortcut: at the depth cutoff, an exact small-position
	// answer preempts both the transposition probe and the heuristic
	// below. Interior frames still expand so their best move is recorded.
	if depthRemaining <= 0 && s.prober.Available() && pos.PieceCount() <= s.prober.MaxPieces() {
		if res := s.prober.Probe(pos, side); res.Found {
			switch res.WDL {
			case tablebase.Win:
				return board.WinScore()
			case tablebase.Loss:
				return board.LossScore()
			}
		}
	}

	// Step 2: cache probe.
	frame := Frame{Hash: pos.Hash(), Side: int8(side)}
	if !s.disableCache {
		if score, ok := s.tt.Get(frame, depthRemaining); ok {
			return score
		}
	}

	// Step 3: depth cutoff (and, pragmatically, a time cutoff so a
	// budget that expires mid-search still yields a usable estimate).
	if depthRemaining <= 0 || s.budget.Expired() {
		return pos.Utility()
	}

	// Step 5: order children by static evaluation.
	orderChildren(children, side)

	var best board.Score
	if side == board.Red {
		best = board.LossScore()
	} else {
		best = board.WinScore()
	}
	var bestChild *board.Position

	// Step 6: push this frame for the duration of the descent so a
	// child reaching back to it is caught by the cycle guard.
	s.stack.Push(frame)
	for _, child := range children {
		// Step 4: cycle guard, asymmetric — only this candidate child
		// is skipped; it cannot improve the minimax value along any
		// cycle-free continuation (spec §4.4).
		childFrame := Frame{Hash: child.Hash(), Side: int8(side.Opposite())}
		if s.stack.Contains(childFrame) {
			continue
		}

		score := s.negamax(child, side.Opposite(), depthRemaining-1, alpha, beta)

		// Step 7: combine in minimax fashion.
		if side == board.Red {
			if score > best || bestChild == nil {
				best = score
				bestChild = child
				if best > alpha {
					alpha = best
				}
			}
		} else {
			if score < best || bestChild == nil {
				best = score
				bestChild = child
				if best < beta {
					beta = best
				}
			}
		}
		if alpha >= beta {
			break
		}
		if s.budget.Expired() {
			break
		}
	}
	s.stack.Pop()

	if bestChild == nil {
		// Every child was excluded by the cycle guard: there is no
		// cycle-free continuation to record, so this frame falls back
		// to its own heuristic rather than recursing further.
		return pos.Utility()
	}

	// Step 8/9: record strategy and cache, then return.
	s.strategy.Update(frame, side, bestChild, best)
	if !s.disableCache {
		s.tt.Put(frame, depthRemaining, best)
	}
	return best
}

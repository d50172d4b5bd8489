package engine

import "github.com/hailam/checkerplay/internal/board"

// strategyEntry records the best successor found for a frame, and the
// score that move achieved — spec §3's StrategyEntry.
type strategyEntry struct {
	Next  *board.Position
	Score board.Score
}

// StrategyMap is the (hash, side) -> (chosen successor, score)
// mapping the search builds up, used afterward for PV recovery
// (spec §4.5). It is adapted directly from
// original_source/board.py's ExploreState.strategy /
// update_strategy / recover_best_path.
type StrategyMap struct {
	entries map[Frame]strategyEntry
}

// NewStrategyMap returns an empty map, owned by exactly one search
// invocation (spec §5).
func NewStrategyMap() *StrategyMap {
	return &StrategyMap{entries: make(map[Frame]strategyEntry)}
}

// Update records next as the chosen successor for frame if it is
// better than what the map currently holds for that frame, scored
// from side's perspective (higher is better for Red, lower for
// Black) — mirrors ExploreState.update_strategy's "player * score"
// comparison.
func (s *StrategyMap) Update(f Frame, side board.Side, next *board.Position, score board.Score) {
	cur, ok := s.entries[f]
	if !ok || float64(side)*float64(score) > float64(side)*float64(cur.Score) {
		s.entries[f] = strategyEntry{Next: next, Score: score}
	}
}

// Recover walks the map from root/rootSide, appending the chosen
// successor at each step and flipping side, until a lookup misses or
// the next board's hash has already appeared in the path being
// built — the same cycle safeguard as the search stack, applied here
// to the output sequence (spec §4.5).
func Recover(s *StrategyMap, root *board.Position, rootSide board.Side) []*board.Position {
	path := []*board.Position{root}
	seen := map[uint64]bool{root.Hash(): true}

	cur, side := root, rootSide
	for {
		f := Frame{Hash: cur.Hash(), Side: int8(side)}
		entry, ok := s.entries[f]
		if !ok {
			break
		}
		h := entry.Next.Hash()
		if seen[h] {
			break
		}
		path = append(path, entry.Next)
		seen[h] = true
		cur = entry.Next
		side = side.Opposite()
	}
	return path
}

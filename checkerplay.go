// Package checkerplay solves single-player checkers endgame puzzles:
// given a board position with Red to move, it produces the principal
// variation of the best achievable outcome for Red under a
// depth-limited, wall-clock-bounded alpha-beta search.
package checkerplay

import (
	"time"

	"github.com/hailam/checkerplay/internal/board"
	"github.com/hailam/checkerplay/internal/engine"
	"github.com/hailam/checkerplay/internal/tablebase"
)

// DefaultEndgamePieces is the piece-count threshold at or below which
// the search consults an exact endgame prober at the depth cutoff
// instead of the heuristic (SPEC_FULL §6.6).
const DefaultEndgamePieces = 4

// Solve runs the search from pos with Red to move, down to maxDepth
// plies or until maxTime elapses, whichever comes first. maxTime <= 0
// means unlimited. The returned sequence always begins with pos.
func Solve(pos *board.Position, maxDepth int, maxTime time.Duration) ([]*board.Position, error) {
	prober := tablebase.NewCachedProber(tablebase.NewEndgameProber(DefaultEndgamePieces), 4096)
	searcher := engine.NewSearcher(prober)
	pv := searcher.Search(pos, board.Red, maxDepth, engine.NewBudget(maxTime))
	return pv, nil
}

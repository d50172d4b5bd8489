package engine

import (
	"sort"

	"github.com/hailam/checkerplay/internal/board"
)

// orderChildren sorts successors by static evaluation: descending
// (best-for-Red first) when side is Red, ascending when side is
// Black (spec §4.3 step 5). Good ordering is what makes alpha-beta
// pruning effective; this is a deliberately small replacement for the
// teacher's MVV-LVA/killer/history MoveOrderer, which has no
// checkers analogue (there is only one capturing-piece rank to order
// by — the evaluate() score itself).
func orderChildren(children []*board.Position, side board.Side) {
	sort.Slice(children, func(i, j int) bool {
		a, b := children[i].Evaluate(), children[j].Evaluate()
		if side == board.Red {
			return a > b
		}
		return a < b
	})
}

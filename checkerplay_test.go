package checkerplay

import (
	"testing"
	"time"

	"github.com/hailam/checkerplay/internal/board"
	"github.com/hailam/checkerplay/internal/puzzle"
)

func TestSolveOnePlyWin(t *testing.T) {
	pos := puzzle.MustLoad(puzzle.ScenarioAOnePlyWin)

	pv, err := Solve(pos, 10, time.Second)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(pv) != 2 {
		t.Fatalf("expected PV of length 2, got %d", len(pv))
	}
	score, ok := pv[len(pv)-1].IsTerminal()
	if !ok || !score.IsWin() {
		t.Errorf("expected a Red win, got %v ok=%v", score, ok)
	}
}

func TestSolveRespectsMaxDepth(t *testing.T) {
	placements := map[[2]int8]int8{
		{0, 0}: board.RedKing,
		{7, 7}: board.BlackKing,
	}
	pos := board.NewPosition(8, 8, placements)

	const maxDepth = 4
	pv, err := Solve(pos, maxDepth, time.Second)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(pv) > maxDepth+1 {
		t.Errorf("PV length %d exceeds maxDepth+1 = %d", len(pv), maxDepth+1)
	}
}

func TestSolveUnlimitedBudget(t *testing.T) {
	pos := board.NewPosition(8, 8, map[[2]int8]int8{{1, 1}: board.RedMan})
	pv, err := Solve(pos, 10, 0)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(pv) != 1 {
		t.Fatalf("expected PV of length 1 for an already-terminal root, got %d", len(pv))
	}
}

func TestSolvePromotionViaJump(t *testing.T) {
	pos := puzzle.MustLoad(puzzle.ScenarioDPromotionViaJump)

	pv, err := Solve(pos, 10, time.Second)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(pv) < 2 {
		t.Fatalf("expected at least one move, got PV length %d", len(pv))
	}
	if got := pv[1].At(0, 0); got != board.RedKing {
		t.Errorf("expected a Red king at (0,0) after the jump, got %d", got)
	}
}

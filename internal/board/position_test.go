package board

import "testing"

func TestHashDiscriminatesRankOnSameSquare(t *testing.T) {
	man := NewPosition(8, 8, map[[2]int8]int8{{4, 4}: RedMan})
	king := NewPosition(8, 8, map[[2]int8]int8{{4, 4}: RedKing})
	if man.Hash() == king.Hash() {
		t.Fatal("man and king on the same square must hash differently")
	}
}

func TestHashDiscriminatesColorOnSameSquare(t *testing.T) {
	red := NewPosition(8, 8, map[[2]int8]int8{{4, 4}: RedMan})
	black := NewPosition(8, 8, map[[2]int8]int8{{4, 4}: BlackMan})
	if red.Hash() == black.Hash() {
		t.Fatal("red and black men on the same square must hash differently")
	}
}

func TestHashEqualityImpliesEqual(t *testing.T) {
	a := NewPosition(8, 8, map[[2]int8]int8{{1, 1}: RedMan, {6, 6}: BlackKing})
	b := NewPosition(8, 8, map[[2]int8]int8{{6, 6}: BlackKing, {1, 1}: RedMan})
	if a.Hash() != b.Hash() {
		t.Fatal("identical occupied-square/value sets must hash equal regardless of construction order")
	}
	if !a.Equal(b) {
		t.Fatal("identical occupied-square/value sets must compare equal")
	}
}

func TestIsTerminal(t *testing.T) {
	redOnly := NewPosition(8, 8, map[[2]int8]int8{{1, 1}: RedMan})
	if score, ok := redOnly.IsTerminal(); !ok || !score.IsWin() {
		t.Errorf("expected red win when black has no pieces, got %v ok=%v", score, ok)
	}

	blackOnly := NewPosition(8, 8, map[[2]int8]int8{{1, 1}: BlackMan})
	if score, ok := blackOnly.IsTerminal(); !ok || !score.IsLoss() {
		t.Errorf("expected black win when red has no pieces, got %v ok=%v", score, ok)
	}

	both := NewPosition(8, 8, map[[2]int8]int8{{1, 1}: RedMan, {6, 6}: BlackMan})
	if _, ok := both.IsTerminal(); ok {
		t.Errorf("expected non-terminal when both sides have pieces")
	}
}

func TestEvaluateIsMeanPieceValue(t *testing.T) {
	pos := NewPosition(8, 8, map[[2]int8]int8{{1, 1}: RedMan, {2, 2}: RedKing, {6, 6}: BlackMan})
	got := pos.Evaluate()
	want := Score(float64(1+2-1) / 3.0)
	if got != want {
		t.Errorf("Evaluate() = %v, want %v", got, want)
	}
	if pos.Utility() != got {
		t.Errorf("Utility() must equal Evaluate() in the canonical heuristic")
	}
}

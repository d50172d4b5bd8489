package board

import (
	"strings"
	"testing"
)

const scenarioA = `
........
........
........
...b....
..r.....
........
........
........
`

func TestReadRender(t *testing.T) {
	pos, err := Read(scenarioA)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if pos.Width != 8 || pos.Height != 8 {
		t.Fatalf("expected 8x8, got %dx%d", pos.Width, pos.Height)
	}
	if got := pos.At(3, 3); got != BlackMan {
		t.Errorf("expected black man at (3,3), got %d", got)
	}
	if got := pos.At(2, 4); got != RedMan {
		t.Errorf("expected red man at (2,4), got %d", got)
	}

	rendered := pos.Render()
	pos2, err := Read(rendered)
	if err != nil {
		t.Fatalf("Read(Render()): %v", err)
	}
	if !pos.Equal(pos2) {
		t.Errorf("round-trip changed position")
	}
}

func TestReadBadFormat(t *testing.T) {
	_, err := Read("........\n...x....\n")
	if err == nil {
		t.Fatal("expected ErrBadFormat")
	}
}

func TestReadInvalidPositionManOnKingRow(t *testing.T) {
	rows := make([]string, 8)
	for i := range rows {
		rows[i] = strings.Repeat(".", 8)
	}
	rows[0] = "r......."
	rows[7] = "b......."
	_, err := Read(strings.Join(rows, "\n") + "\n")
	if err == nil {
		t.Fatal("expected ErrInvalidPosition for red man on its own king row")
	}
}

func TestReadInvalidPositionNoPieces(t *testing.T) {
	rows := make([]string, 8)
	for i := range rows {
		rows[i] = strings.Repeat(".", 8)
	}
	_, err := Read(strings.Join(rows, "\n") + "\n")
	if err == nil {
		t.Fatal("expected ErrInvalidPosition for an empty board")
	}
}

func TestWriteReadSequence(t *testing.T) {
	pos, err := Read(scenarioA)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	succs := pos.Successors(Red)
	if len(succs) == 0 {
		t.Fatal("expected at least one successor")
	}

	var buf strings.Builder
	if err := WriteSequence(&buf, []*Position{pos, succs[0]}); err != nil {
		t.Fatalf("WriteSequence: %v", err)
	}
	got, err := ReadSequence(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("ReadSequence: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 boards back, got %d", len(got))
	}
	if !got[0].Equal(pos) || !got[1].Equal(succs[0]) {
		t.Errorf("sequence round-trip mismatch")
	}
}

func TestWriteBoardsBlankLineSeparated(t *testing.T) {
	pos, err := Read(scenarioA)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	succs := pos.Successors(Red)
	if len(succs) == 0 {
		t.Fatal("expected at least one successor")
	}

	var buf strings.Builder
	if err := WriteBoards(&buf, []*Position{pos, succs[0]}); err != nil {
		t.Fatalf("WriteBoards: %v", err)
	}
	if !strings.Contains(buf.String(), "\n\n") {
		t.Error("expected a blank line between consecutive boards")
	}
}

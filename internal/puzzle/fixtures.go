// Package puzzle holds hand-authored fixture boards used by tests
// across the module, replacing the inverse-move puzzle generator in
// original_source/board.py's BoardGenerator (out of scope: spec.md §1
// excludes puzzle-generation utilities, so fixtures are authored by
// hand instead of synthesized).
package puzzle

import (
	"embed"
	"fmt"
	"strings"

	"github.com/hailam/checkerplay/internal/board"
)

//go:embed testdata/*.txt
var fixtureFS embed.FS

// Names of the fixtures mirroring spec.md §8's Scenario A-E.
const (
	ScenarioAOnePlyWin         = "scenario_a_one_ply_win"
	ScenarioCMultiJump         = "scenario_c_multi_jump"
	ScenarioDPromotionViaJump  = "scenario_d_promotion_via_jump"
	ScenarioEKingLossByNoMoves = "scenario_e_king_loss_by_no_moves"
)

// Load reads and parses the named fixture board.
func Load(name string) (*board.Position, error) {
	data, err := fixtureFS.ReadFile("testdata/" + name + ".txt")
	if err != nil {
		return nil, fmt.Errorf("puzzle: unknown fixture %q: %w", name, err)
	}
	return board.Read(string(data))
}

// MustLoad is Load, panicking on error — for test setup only.
func MustLoad(name string) *board.Position {
	pos, err := Load(name)
	if err != nil {
		panic(err)
	}
	return pos
}

// Names returns the names of all embedded fixtures, sorted.
func Names() []string {
	entries, err := fixtureFS.ReadDir("testdata")
	if err != nil {
		panic(err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
	}
	return names
}

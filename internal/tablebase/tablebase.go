// Package tablebase provides an in-process "endgame database": an
// exact solver for small checkers subpositions, cached so a repeat
// probe of the same position is free. It is adapted from the
// teacher's internal/tablebase (a Syzygy/Lichess WDL prober) — same
// Prober interface and cache shape, repurposed from looking up an
// external binary tablebase file to solving positions itself, since
// this domain has no external tablebase format to consume
// (SPEC_FULL.md §6.6).
package tablebase

import "github.com/hailam/checkerplay/internal/board"

// WDL is the exact result of a position from Red's perspective.
type WDL int8

const (
	Loss WDL = -1 // forced win for Black
	Draw WDL = 0  // unresolved (depth/cycle limit reached)
	Win  WDL = 1  // forced win for Red
)

// ProbeResult is the outcome of a tablebase probe.
type ProbeResult struct {
	Found bool
	WDL   WDL
}

// Prober looks up exact results for small positions.
type Prober interface {
	// Probe returns the exact outcome for pos with side to move, if
	// pos is small enough for this prober to have solved it.
	Probe(pos *board.Position, side board.Side) ProbeResult

	// MaxPieces is the largest piece count this prober will attempt.
	MaxPieces() int

	// Available reports whether this prober can usefully be probed.
	Available() bool
}

// NoopProber always reports "not found" — the zero-value default
// when no endgame database is configured.
type NoopProber struct{}

func (NoopProber) Probe(*board.Position, board.Side) ProbeResult { return ProbeResult{} }
func (NoopProber) MaxPieces() int                                { return 0 }
func (NoopProber) Available() bool                               { return false }

// CountPieces returns the total number of pieces on the board.
func CountPieces(pos *board.Position) int {
	return pos.PieceCount()
}

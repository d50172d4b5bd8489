package board

// Successors returns the legal successor positions for side to move,
// honoring forced capture and mandatory multi-jump (spec §4.1).
//
// The generator walks every occupied square once, collecting quiet
// moves and jumps into separate slices; if any jump exists the
// returned set contains only jump-derived positions. Each maximal
// jump sequence for a single piece contributes one successor per
// distinct landing path — ties (two jump sequences reaching the same
// final board) are deduplicated by hash, mirroring the source's
// get_successors.
func (p *Position) Successors(side Side) []*Position {
	var moves, jumps []*Position

	for _, e := range p.entries {
		if Side(sign(e.Piece)) != side {
			continue
		}
		king := IsKing(e.Piece)
		for _, dir := range directions(side, king) {
			moveX, moveY := e.X+dir[0], e.Y+dir[1]
			jumpX, jumpY := e.X+2*dir[0], e.Y+2*dir[1]

			if !p.InBounds(moveX, moveY) {
				continue
			}
			occ := p.At(moveX, moveY)
			switch {
			case occ == 0:
				moves = append(moves, p.step(e.X, e.Y, e.Piece, moveX, moveY))
			case Side(sign(occ)) != side && p.InBounds(jumpX, jumpY) && p.At(jumpX, jumpY) == 0:
				jumps = append(jumps, p.jumpChain(e.X, e.Y, e.Piece, dir, side)...)
			default:
				// Blocked by a friendly piece, or by an enemy piece with
				// no legal landing square: neither a move nor a jump.
			}
		}
	}

	successors := jumps
	if len(successors) == 0 {
		successors = moves
	}
	return dedupByHash(successors)
}

// directions returns the diagonal unit steps available to a piece.
// Men move only toward their forward row; kings move in all four.
func directions(side Side, king bool) [][2]int8 {
	forward := int8(-1) // Red's forward is decreasing y
	if side == Black {
		forward = 1
	}
	dirs := [][2]int8{{1, forward}, {-1, forward}}
	if king {
		dirs = append(dirs, [2]int8{1, -forward}, [2]int8{-1, -forward})
	}
	return dirs
}

// step builds the position after a single non-capturing move,
// promoting the moved piece if it lands on its king row.
func (p *Position) step(fromX, fromY int8, piece int8, toX, toY int8) *Position {
	next := make([]entry, 0, len(p.entries))
	for _, e := range p.entries {
		if e.X == fromX && e.Y == fromY {
			continue
		}
		next = append(next, e)
	}
	next = append(next, entry{X: toX, Y: toY, Piece: promote(p, piece, toY)})
	return p.withEntries(next)
}

// promote returns piece upgraded to a king if destY is its king row.
func promote(p *Position, piece int8, destY int8) int8 {
	if IsKing(piece) {
		return piece
	}
	kingRow := int8(0)
	if piece < 0 {
		kingRow = p.Height - 1
	}
	if destY == kingRow {
		return piece * 2
	}
	return piece
}

// jumpChain recursively follows a multi-jump from (x, y) in direction
// dir, returning one successor per maximal continuation. A piece
// promoted mid-sequence immediately gains king mobility for any
// further jump in the same turn (spec §4.1 algorithmic notes).
func (p *Position) jumpChain(x, y int8, piece int8, dir [2]int8, side Side) []*Position {
	capturedX, capturedY := x+dir[0], y+dir[1]
	landX, landY := x+2*dir[0], y+2*dir[1]

	landed := promote(p, piece, landY)
	next := make([]entry, 0, len(p.entries)-1)
	for _, e := range p.entries {
		if e.X == x && e.Y == y {
			continue
		}
		if e.X == capturedX && e.Y == capturedY {
			continue
		}
		next = append(next, e)
	}
	next = append(next, entry{X: landX, Y: landY, Piece: landed})
	landedBoard := p.withEntries(next)

	king := IsKing(landed)
	var continuations []*Position
	for _, contDir := range directions(side, king) {
		capX, capY := landX+contDir[0], landY+contDir[1]
		toX, toY := landX+2*contDir[0], landY+2*contDir[1]
		if !p.InBounds(toX, toY) {
			continue
		}
		occ := landedBoard.At(capX, capY)
		if occ != 0 && Side(sign(occ)) != side && landedBoard.At(toX, toY) == 0 {
			continuations = append(continuations, landedBoard.jumpChain(landX, landY, landed, contDir, side)...)
		}
	}
	if len(continuations) == 0 {
		return []*Position{landedBoard}
	}
	return continuations
}

// dedupByHash removes positions that hash-equal an earlier entry,
// preserving first-seen order (order is not semantically significant
// — the search engine re-sorts before recursing).
func dedupByHash(ps []*Position) []*Position {
	if len(ps) < 2 {
		return ps
	}
	seen := make(map[uint64]bool, len(ps))
	out := ps[:0:0]
	for _, pos := range ps {
		h := pos.Hash()
		if seen[h] {
			continue
		}
		seen[h] = true
		out = append(out, pos)
	}
	return out
}

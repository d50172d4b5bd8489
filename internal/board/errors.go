package board

import "errors"

// ErrBadFormat is returned when board text contains a character outside
// the recognized alphabet, or contains no rows at all.
var ErrBadFormat = errors.New("board: bad format")

// ErrInvalidPosition is returned when a parsed board violates a
// structural invariant: a man sitting on its own king row, or a board
// with no pieces of either color.
var ErrInvalidPosition = errors.New("board: invalid position")

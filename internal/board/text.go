package board

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// charPiece maps the board text alphabet to piece values.
var charPiece = map[rune]int8{
	'r': RedMan,
	'R': RedKing,
	'b': BlackMan,
	'B': BlackKing,
}

var pieceChar = map[int8]rune{
	RedMan:    'r',
	RedKing:   'R',
	BlackMan:  'b',
	BlackKing: 'B',
}

// Read parses the board text format (spec §6): one row per line,
// top-to-bottom (y=0 first), each character one of {. r R b B}.
// Trailing whitespace on a line is ignored. Width is taken from the
// longest row and rows shorter than that are treated as padded with
// empty squares, so row length alone never makes the text invalid.
// Any unrecognized character, or text with no rows, is ErrBadFormat.
func Read(text string) (*Position, error) {
	scanner := bufio.NewScanner(strings.NewReader(text))
	var rows []string
	width := 0
	for scanner.Scan() {
		row := strings.TrimRight(scanner.Text(), " \t\r")
		if row == "" && len(rows) == 0 {
			continue // tolerate leading blank lines
		}
		rows = append(rows, row)
		if len(row) > width {
			width = len(row)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("board: read: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	if width == 0 || len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty board", ErrBadFormat)
	}

	height := len(rows)
	placements := make(map[[2]int8]int8)
	for y, row := range rows {
		if len(row) > width {
			return nil, fmt.Errorf("%w: row %d exceeds declared width %d", ErrBadFormat, y, width)
		}
		for x, ch := range row {
			if ch == '.' {
				continue
			}
			piece, ok := charPiece[ch]
			if !ok {
				return nil, fmt.Errorf("%w: unrecognized character %q at row %d col %d", ErrBadFormat, ch, y, x)
			}
			placements[[2]int8{int8(x), int8(y)}] = piece
		}
	}

	pos := NewPosition(width, height, placements)
	if err := validate(pos); err != nil {
		return nil, err
	}
	return pos, nil
}

// validate enforces invariants spec §7 lists as optional
// (InvalidPosition): both colors absent, or a man resting on its own
// king row. original_source/board.py never checks either condition at
// read time; we do, once, at construction.
func validate(p *Position) error {
	var red, black int
	var err error
	p.Each(func(x, y int8, piece int8) {
		if piece > 0 {
			red++
		} else {
			black++
		}
		if piece == RedMan && y == 0 {
			err = fmt.Errorf("%w: red man on its own king row at (%d,%d)", ErrInvalidPosition, x, y)
		}
		if piece == BlackMan && y == p.Height-1 {
			err = fmt.Errorf("%w: black man on its own king row at (%d,%d)", ErrInvalidPosition, x, y)
		}
	})
	if err != nil {
		return err
	}
	if red == 0 && black == 0 {
		return fmt.Errorf("%w: no pieces on board", ErrInvalidPosition)
	}
	return nil
}

// Render is the inverse of Read: one line per row, '.' for empty
// squares, a trailing newline after every row (spec §6).
func (p *Position) Render() string {
	var b strings.Builder
	for y := int8(0); y < p.Height; y++ {
		for x := int8(0); x < p.Width; x++ {
			piece := p.At(x, y)
			if piece == 0 {
				b.WriteByte('.')
				continue
			}
			b.WriteRune(pieceChar[piece])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// sequenceSeparator is the line used by the native solver's
// in-process multi-board buffers (original_source/extern.py splits on
// "---\n" to recover a list of boards from one string).
const sequenceSeparator = "---\n"

// WriteSequence writes a sequence of boards to w using the "---"
// separator convention from spec §6, for in-process/archive use. The
// top-level CLI instead uses the blank-line convention (each board's
// own render plus a joining "\n").
func WriteSequence(w io.Writer, boards []*Position) error {
	for _, b := range boards {
		if _, err := io.WriteString(w, b.Render()); err != nil {
			return err
		}
		if _, err := io.WriteString(w, sequenceSeparator); err != nil {
			return err
		}
	}
	return nil
}

// WriteBoards writes a sequence of boards using the CLI's blank-line
// convention (spec §6): each board's own render, already ending in a
// newline, followed by a joining "\n" between boards — so consecutive
// boards come out separated by exactly one blank line.
func WriteBoards(w io.Writer, boards []*Position) error {
	for i, b := range boards {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, b.Render()); err != nil {
			return err
		}
	}
	return nil
}

// ReadSequence parses the inverse of WriteSequence.
func ReadSequence(r io.Reader) ([]*Position, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("board: read sequence: %w", err)
	}
	chunks := strings.Split(string(data), sequenceSeparator)
	// Split on a trailing separator leaves one empty trailing chunk.
	if len(chunks) > 0 && chunks[len(chunks)-1] == "" {
		chunks = chunks[:len(chunks)-1]
	}
	boards := make([]*Position, 0, len(chunks))
	for _, chunk := range chunks {
		pos, err := Read(chunk)
		if err != nil {
			return nil, err
		}
		boards = append(boards, pos)
	}
	return boards, nil
}

package board

// Zobrist hash keys for position hashing, keyed by (square, piece).
// Uses a PRNG with a fixed seed for reproducibility across runs — two
// processes hash the same position identically, which transposition
// and archive persistence both depend on.
//
// The source's original hash JSON-serialized the sorted entry tuple
// as a collision-avoidance workaround; spec §9 calls that out and
// asks for Zobrist keying that folds rank into the key so a man and a
// king on the same square never collide. zobristKey below does that
// by keying on pieceIndex, which is distinct per (color, rank).

const maxZobristSquares = 1024 // supports boards up to 32x32

var (
	zobristPiece [maxZobristSquares][4]uint64
	zobristSide  uint64
)

func init() {
	initZobrist()
}

// prng is a small xorshift64* generator for reproducible keys.
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := newPRNG(0xC43C4EC5B19A7E2D) // fixed seed

	for sq := range zobristPiece {
		for pi := range zobristPiece[sq] {
			zobristPiece[sq][pi] = rng.next()
		}
	}
	zobristSide = rng.next()
}

// pieceIndex maps a piece value to a dense index: 0 red man, 1 red
// king, 2 black man, 3 black king. Panics on an invalid piece value,
// since that can only happen from a bug in the caller — never from
// untrusted input (the text reader rejects bad characters earlier).
func pieceIndex(piece int8) int {
	switch piece {
	case RedMan:
		return 0
	case RedKing:
		return 1
	case BlackMan:
		return 2
	case BlackKing:
		return 3
	default:
		panic("board: invalid piece value")
	}
}

// zobristKey returns the key for one occupied square. width only
// participates in the square index so that positions are hashed
// consistently for a fixed board size; callers never compare hashes
// across differently-sized boards.
func zobristKey(width, x, y, piece int8) uint64 {
	sq := int(y)*int(width) + int(x)
	sq %= maxZobristSquares
	return zobristPiece[sq][pieceIndex(piece)]
}

// ZobristSideToMove returns the key XORed in when it is Black to
// move. Position.Hash() itself never depends on side to move (the
// side is passed alongside a board, not stored inside it — spec §3);
// this is exposed for callers that fold side into a combined key
// instead of using a (hash, side) struct pair.
func ZobristSideToMove() uint64 {
	return zobristSide
}

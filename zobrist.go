// zobrist.go implements incremental-by-construction Zobrist hashing: a
// fixed table of 64-bit random constants, XORed together for every piece,
// the side to move, remaining castling rights, and the en-passant file.
// The table is generated once from a fixed seed so hashes are reproducible
// across runs, which the determinism tests in zobrist_test.go rely on.
package zugzwang

import "math/rand"

var (
	zobristPieceSquare [2][NumPieceKinds][64]uint64
	zobristSide        uint64
	zobristCastle      [4]uint64
	zobristEnPassant   [8]uint64
)

// zobristSeed is fixed so every process run produces identical keys; tests
// assert exact equality across independently constructed boards.
const zobristSeed = 0x5A6B7C8D9EA1B2C3

// InitZobristKeys fills the Zobrist constant tables. Call once, alongside
// InitAttackTables, before using Hash.
func InitZobristKeys() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for color := 0; color < 2; color++ {
		for kind := 0; kind < NumPieceKinds; kind++ {
			for sq := 0; sq < 64; sq++ {
				zobristPieceSquare[color][kind][sq] = rng.Uint64()
			}
		}
	}
	zobristSide = rng.Uint64()
	for i := range zobristCastle {
		zobristCastle[i] = rng.Uint64()
	}
	for i := range zobristEnPassant {
		zobristEnPassant[i] = rng.Uint64()
	}
}

// castleRightBits lists the four individual castling-right masks in a fixed
// order matching zobristCastle's indexing.
var castleRightBits = [4]BitBoard{
	CastleWhiteKingsideMask,
	CastleWhiteQueensideMask,
	CastleBlackKingsideMask,
	CastleBlackQueensideMask,
}

// Hash computes the Zobrist key for board. Two boards reached by different
// move orders but identical in piece placement, side to move, castling
// rights, and en-passant file hash equal.
func Hash(board Board) uint64 {
	b := &board
	var key uint64

	for color := 0; color < 2; color++ {
		for kind := 0; kind < NumPieceKinds; kind++ {
			for it := b.Pieces[color][kind].Squares(); ; {
				sq, ok := it.Next()
				if !ok {
					break
				}
				key ^= zobristPieceSquare[color][kind][sq]
			}
		}
	}

	if !b.WhiteToMove {
		key ^= zobristSide
	}

	for i, mask := range castleRightBits {
		if b.Castle&mask == mask {
			key ^= zobristCastle[i]
		}
	}

	if b.EnPassant != 0 {
		file := b.EnPassant.LSB() % 8
		key ^= zobristEnPassant[file]
	}

	return key
}

// board.go defines the position representation: twelve piece bitboards, the
// derived occupancy aggregates, castling rights, and the en-passant target.
// Board is a plain value; every operation that changes it returns a new
// value or mutates a local copy, never a shared one.
package zugzwang

// Board is an immutable-by-convention value type holding one chess position.
type Board struct {
	// Pieces[color][kind] is the bitboard of that color's pieces of that kind.
	Pieces [2][NumPieceKinds]BitBoard

	// OccupiedBy[color] is the union of Pieces[color][*]; Occupied is their
	// union. Both are derived and recomputed by Recompute after any mutation.
	OccupiedBy [2]BitBoard
	Occupied   BitBoard

	// Castle holds the king and rook home-square bits of each castling right;
	// a right is held only while every bit of its CastleXxxMask constant
	// (below) is set.
	Castle BitBoard

	// EnPassant has at most one bit set: the capture-target square created
	// by the opponent's immediately preceding double pawn push.
	EnPassant BitBoard

	// WhiteToMove is true when it is white's turn to move.
	WhiteToMove bool
}

// Castling-right bits within Board.Castle, keyed by the rook's home square.
const (
	CastleWhiteKingsideMask  BitBoard = 0x90
	CastleWhiteQueensideMask BitBoard = 0x11
	CastleBlackKingsideMask  BitBoard = 0x9000000000000000
	CastleBlackQueensideMask BitBoard = 0x1100000000000000
)

// castleRank returns the full-rank castle mask for the given color, cleared
// whenever that color's king moves.
func castleRank(c Color) BitBoard {
	if c == ColorWhite {
		return CastleWhiteKingsideMask | CastleWhiteQueensideMask
	}
	return CastleBlackKingsideMask | CastleBlackQueensideMask
}

// castleInfo describes one castling right: the rook's home-square bit, the
// squares that must be empty between king and rook, the squares the king
// must not be attacked on (including its origin and destination), and the
// two-square XOR masks applied to king and rook on execution.
type castleInfo struct {
	rightMask  BitBoard
	emptyMask  BitBoard
	attackMask BitBoard
	kingXor    BitBoard
	rookXor    BitBoard
}

var castleInfos = [2][2]castleInfo{
	ColorWhite: {
		{ // kingside
			rightMask:  CastleWhiteKingsideMask,
			emptyMask:  SquareMask(SF1) | SquareMask(SG1),
			attackMask: SquareMask(SE1) | SquareMask(SF1) | SquareMask(SG1),
			kingXor:    SquareMask(SE1) | SquareMask(SG1),
			rookXor:    SquareMask(SF1) | SquareMask(SH1),
		},
		{ // queenside
			rightMask:  CastleWhiteQueensideMask,
			emptyMask:  SquareMask(SB1) | SquareMask(SC1) | SquareMask(SD1),
			attackMask: SquareMask(SE1) | SquareMask(SD1) | SquareMask(SC1),
			kingXor:    SquareMask(SE1) | SquareMask(SC1),
			rookXor:    SquareMask(SD1) | SquareMask(SA1),
		},
	},
	ColorBlack: {
		{ // kingside
			rightMask:  CastleBlackKingsideMask,
			emptyMask:  SquareMask(SF8) | SquareMask(SG8),
			attackMask: SquareMask(SE8) | SquareMask(SF8) | SquareMask(SG8),
			kingXor:    SquareMask(SE8) | SquareMask(SG8),
			rookXor:    SquareMask(SF8) | SquareMask(SH8),
		},
		{ // queenside
			rightMask:  CastleBlackQueensideMask,
			emptyMask:  SquareMask(SB8) | SquareMask(SC8) | SquareMask(SD8),
			attackMask: SquareMask(SE8) | SquareMask(SD8) | SquareMask(SC8),
			kingXor:    SquareMask(SE8) | SquareMask(SC8),
			rookXor:    SquareMask(SD8) | SquareMask(SA8),
		},
	},
}

// Recompute refreshes the derived occupancy aggregates from the piece
// bitboards. Call after any direct mutation of Pieces.
func (b *Board) Recompute() {
	var white, black BitBoard
	for kind := 0; kind < NumPieceKinds; kind++ {
		white |= b.Pieces[ColorWhite][kind]
		black |= b.Pieces[ColorBlack][kind]
	}
	b.OccupiedBy[ColorWhite] = white
	b.OccupiedBy[ColorBlack] = black
	b.Occupied = white | black
}

// PieceAt returns the kind and color of the piece on sq, or (PieceNone, 0,
// false) if the square is empty.
func (b *Board) PieceAt(sq int) (Piece, Color, bool) {
	mask := SquareMask(sq)
	if b.Occupied&mask == 0 {
		return PieceNone, 0, false
	}
	color := ColorWhite
	if b.OccupiedBy[ColorBlack]&mask != 0 {
		color = ColorBlack
	}
	for kind := 0; kind < NumPieceKinds; kind++ {
		if b.Pieces[color][kind]&mask != 0 {
			return kind, color, true
		}
	}
	return PieceNone, 0, false
}

// Color returns ColorWhite or ColorBlack for the side to move.
func (b *Board) Color() Color {
	if b.WhiteToMove {
		return ColorWhite
	}
	return ColorBlack
}

func opposite(c Color) Color {
	return c ^ 1
}

// AttacksBy returns the union of every square color's pieces attack, given
// occupied as the blocking set. Callers computing the opponent's reach
// against their own king pass occupied with the king's bit removed, so a
// slider behind the king still covers the flight square.
func AttacksBy(b *Board, color Color, occupied BitBoard) BitBoard {
	var attacks BitBoard

	pieces := &b.Pieces[color]
	for it := pieces[Pawn].Squares(); ; {
		sq, ok := it.Next()
		if !ok {
			break
		}
		attacks |= pawnAttacks[color][sq]
	}
	for it := pieces[Knight].Squares(); ; {
		sq, ok := it.Next()
		if !ok {
			break
		}
		attacks |= knightAttacks[sq]
	}
	for it := pieces[Bishop].Squares(); ; {
		sq, ok := it.Next()
		if !ok {
			break
		}
		attacks |= BishopAttacks(sq, occupied)
	}
	for it := pieces[Rook].Squares(); ; {
		sq, ok := it.Next()
		if !ok {
			break
		}
		attacks |= RookAttacks(sq, occupied)
	}
	for it := pieces[Queen].Squares(); ; {
		sq, ok := it.Next()
		if !ok {
			break
		}
		attacks |= QueenAttacks(sq, occupied)
	}
	if pieces[King] != 0 {
		attacks |= kingAttacks[pieces[King].LSB()]
	}
	return attacks
}

// capture removes any enemy piece at mask from victim's piece boards and
// erodes castling rights for that square. It returns the captured piece's
// material value, or 0 if mask was empty.
func (b *Board) capture(mask BitBoard, attacker Color) int {
	victim := opposite(attacker)
	if b.OccupiedBy[victim]&mask == 0 {
		return 0
	}
	value := 0
	for kind := 0; kind < NumPieceKinds; kind++ {
		if b.Pieces[victim][kind]&mask != 0 {
			b.Pieces[victim][kind] &^= mask
			value = pieceWeights[kind]
			break
		}
	}
	b.Castle &^= mask
	return value
}

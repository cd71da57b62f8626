// piece.go contains the closed sum of piece kinds, colors, and promotion
// flags, plus the square/piece symbol tables used by FEN and diagnostics.
package zugzwang

// Piece is an alias for int to avoid bothersome conversions while still
// reading like a distinct type at call sites.
type Piece = int

// Piece indices double as the kind index into Board.Pieces[color][kind].
// White and black share the same kind ordering; the color is the outer
// index, so each per-color loop runs over a single contiguous range.
const (
	Pawn Piece = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
	PieceNone Piece = -1
)

// Color is an alias for int; ColorWhite/ColorBlack index per-color arrays.
type Color = int

const (
	ColorWhite Color = iota
	ColorBlack
)

// PromotionPiece is an alias for int. The numeric values match the Polyglot
// book encoding used by §6.3: 0 = none, 1 = knight, 2 = bishop, 3 = rook,
// 4 = queen.
type PromotionPiece = int

const (
	PromotionNone PromotionPiece = iota
	PromotionKnight
	PromotionBishop
	PromotionRook
	PromotionQueen
)

// pieceWeights gives each piece kind's material value in pawns, indexed by
// Piece. Used as the return value of Board.capture; the evaluator keeps its
// own copy in materialWeight (eval.go).
var pieceWeights = [NumPieceKinds]int{
	Pawn:   1,
	Knight: 3,
	Bishop: 3,
	Rook:   5,
	Queen:  9,
	King:   0,
}

// pieceSymbols maps (color, kind) to its FEN character.
var pieceSymbols = [2][NumPieceKinds]byte{
	ColorWhite: {Pawn: 'P', Knight: 'N', Bishop: 'B', Rook: 'R', Queen: 'Q', King: 'K'},
	ColorBlack: {Pawn: 'p', Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q', King: 'k'},
}

// Square2String maps each board square index to its algebraic notation.
var Square2String = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// Named square indices for the squares referenced by castling and en-passant
// logic elsewhere in the package.
const (
	SA1 = iota
	SB1
	SC1
	SD1
	SE1
	SF1
	SG1
	SH1
	SA2
	SB2
	SC2
	SD2
	SE2
	SF2
	SG2
	SH2
	SA3
	SB3
	SC3
	SD3
	SE3
	SF3
	SG3
	SH3
	SA4
	SB4
	SC4
	SD4
	SE4
	SF4
	SG4
	SH4
	SA5
	SB5
	SC5
	SD5
	SE5
	SF5
	SG5
	SH5
	SA6
	SB6
	SC6
	SD6
	SE6
	SF6
	SG6
	SH6
	SA7
	SB7
	SC7
	SD7
	SE7
	SF7
	SG7
	SH7
	SA8
	SB8
	SC8
	SD8
	SE8
	SF8
	SG8
	SH8
)

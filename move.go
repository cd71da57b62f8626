// move.go defines the external Move record used for opening-book play and
// the function that applies one to a Board. Internal search never builds a
// Move; it works directly with successor Boards produced by GenerateMoves.
package zugzwang

// Move is an external representation of a single ply, as decoded from an
// opening-book record (§6.3) or constructed by a collaborator.
type Move struct {
	From      int
	To        int
	Promotion PromotionPiece
	Weight    uint16
}

// promotionPieceKind maps a PromotionPiece to the Piece kind it produces.
var promotionPieceKind = [5]Piece{
	PromotionNone:   PieceNone,
	PromotionKnight: Knight,
	PromotionBishop: Bishop,
	PromotionRook:   Rook,
	PromotionQueen:  Queen,
}

// ApplyMove returns the board resulting from applying m to b. It locates the
// moving piece by scanning b's piece boards, handles en-passant capture
// removal, en-passant target creation, castling, and ordinary captures, and
// recomputes occupancy and side to move.
func ApplyMove(b Board, m Move) Board {
	mover := b.Color()
	fromMask := SquareMask(m.From)
	toMask := SquareMask(m.To)

	kind, _, found := b.PieceAt(m.From)
	if !found {
		return b
	}

	if kind == King {
		for _, info := range castleInfos[mover] {
			if fromMask|toMask == info.kingXor {
				b.Pieces[mover][King] ^= info.kingXor
				b.Pieces[mover][Rook] ^= info.rookXor
				b.Castle &^= castleRank(mover)
				b.EnPassant = 0
				b.Recompute()
				b.WhiteToMove = !b.WhiteToMove
				return b
			}
		}
	}

	if kind == Pawn && toMask == b.EnPassant && b.EnPassant != 0 {
		var capturedSq int
		if mover == ColorWhite {
			capturedSq = m.To - 8
		} else {
			capturedSq = m.To + 8
		}
		b.Pieces[opposite(mover)][Pawn] &^= SquareMask(capturedSq)
	} else {
		b.capture(toMask, mover)
	}

	b.Pieces[mover][kind] &^= fromMask
	destKind := kind
	if m.Promotion != PromotionNone {
		destKind = promotionPieceKind[m.Promotion]
	}
	b.Pieces[mover][destKind] |= toMask

	if kind == Pawn && abs(m.To-m.From) == 16 {
		if mover == ColorWhite {
			b.EnPassant = SquareMask(m.From + 8)
		} else {
			b.EnPassant = SquareMask(m.From - 8)
		}
	} else {
		b.EnPassant = 0
	}

	if kind == Rook {
		b.Castle &^= fromMask
	}
	if kind == King {
		b.Castle &^= castleRank(mover)
	}

	b.Recompute()
	b.WhiteToMove = !b.WhiteToMove
	return b
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

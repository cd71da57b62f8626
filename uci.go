// uci.go formats a Move as long algebraic notation (e.g. "e2e4", "a7a8q"),
// the minimal display format any CLI or GUI collaborator needs to show the
// engine's chosen reply.
package zugzwang

var promotionLetter = [5]byte{
	PromotionNone:   0,
	PromotionKnight: 'n',
	PromotionBishop: 'b',
	PromotionRook:   'r',
	PromotionQueen:  'q',
}

// FormatUCI renders m as long algebraic notation.
func FormatUCI(m Move) string {
	s := Square2String[m.From] + Square2String[m.To]
	if letter := promotionLetter[m.Promotion]; letter != 0 {
		s += string(letter)
	}
	return s
}

// DiffMove recovers the {from, to, promotion} that turned before into after,
// for display purposes only: it scans for the squares whose occupancy
// changed. Castling moves both the king and the rook, so the king's own
// from/to is recovered separately via castleInfos (the same masks ApplyMove
// matches against) rather than from the combined occupancy diff, which would
// otherwise mix in the rook's squares. En passant still diffs cleanly since
// only the capturing pawn's own from/to squares change for mover.
func DiffMove(before, after Board, mover Color) Move {
	beforeKing := before.Pieces[mover][King]
	afterKing := after.Pieces[mover][King]
	if kingXor := beforeKing ^ afterKing; kingXor != 0 {
		for _, info := range castleInfos[mover] {
			if kingXor == info.kingXor {
				return Move{From: beforeKing.LSB(), To: afterKing.LSB(), Promotion: PromotionNone}
			}
		}
	}

	var from, to int = -1, -1
	beforeMover := before.OccupiedBy[mover]
	afterMover := after.OccupiedBy[mover]
	vacated := beforeMover &^ afterMover
	occupied := afterMover &^ beforeMover
	if vacated != 0 {
		from = vacated.LSB()
	}
	if occupied != 0 {
		to = occupied.LSB()
	}
	if from == -1 || to == -1 {
		return Move{}
	}

	promotion := PromotionNone
	if beforeKind, _, ok := before.PieceAt(from); ok && beforeKind == Pawn {
		if afterKind, _, ok := after.PieceAt(to); ok && afterKind != Pawn {
			switch afterKind {
			case Queen:
				promotion = PromotionQueen
			case Rook:
				promotion = PromotionRook
			case Bishop:
				promotion = PromotionBishop
			case Knight:
				promotion = PromotionKnight
			}
		}
	}
	return Move{From: from, To: to, Promotion: promotion}
}

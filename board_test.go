package zugzwang

import "testing"

func TestRecomputeOccupancy(t *testing.T) {
	var b Board
	b.Pieces[ColorWhite][Pawn] = SquareMask(SE2)
	b.Pieces[ColorBlack][Knight] = SquareMask(SF6)
	b.Recompute()

	if b.OccupiedBy[ColorWhite] != SquareMask(SE2) {
		t.Fatalf("expected white occupancy to be just e2")
	}
	if b.OccupiedBy[ColorBlack] != SquareMask(SF6) {
		t.Fatalf("expected black occupancy to be just f6")
	}
	if b.Occupied != SquareMask(SE2)|SquareMask(SF6) {
		t.Fatalf("expected occupied to be the union of both colors")
	}
}

func TestPieceAt(t *testing.T) {
	board, _, _, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	kind, color, found := board.PieceAt(SE1)
	if !found || kind != King || color != ColorWhite {
		t.Fatalf("expected white king on e1, got kind=%d color=%d found=%v", kind, color, found)
	}
	_, _, found = board.PieceAt(SE4)
	if found {
		t.Fatalf("expected e4 to be empty in the starting position")
	}
}

func TestCaptureErodesCastleMask(t *testing.T) {
	var b Board
	b.Pieces[ColorWhite][Rook] = SquareMask(SA1)
	b.Pieces[ColorBlack][Rook] = SquareMask(SH1)
	b.Castle = CastleWhiteKingsideMask | CastleWhiteQueensideMask
	b.Recompute()

	value := b.capture(SquareMask(SA1), ColorBlack)
	if value != pieceWeights[Rook] {
		t.Fatalf("expected capture to report rook value %d, got %d", pieceWeights[Rook], value)
	}
	if b.Pieces[ColorWhite][Rook] != 0 {
		t.Fatalf("captured rook should be removed from its board")
	}
	if b.Castle&CastleWhiteQueensideMask == CastleWhiteQueensideMask {
		t.Fatalf("capturing a1 should clear white's queenside right")
	}
}

func TestAttacksByKnight(t *testing.T) {
	var b Board
	b.Pieces[ColorWhite][Knight] = SquareMask(SB1)
	b.Recompute()

	attacks := AttacksBy(&b, ColorWhite, b.Occupied)
	want := SquareMask(SA3) | SquareMask(SC3) | SquareMask(SD2)
	if attacks != want {
		t.Fatalf("expected knight on b1 to attack a3,c3,d2, got %#x", attacks)
	}
}

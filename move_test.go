package zugzwang

import "testing"

func TestApplyMoveQuietPawnPush(t *testing.T) {
	board, _, _, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	next := ApplyMove(board, Move{From: SE2, To: SE4})

	if next.Pieces[ColorWhite][Pawn]&SquareMask(SE2) != 0 {
		t.Fatalf("pawn should have left e2")
	}
	if next.Pieces[ColorWhite][Pawn]&SquareMask(SE4) == 0 {
		t.Fatalf("pawn should be on e4")
	}
	if next.EnPassant != SquareMask(SE3) {
		t.Fatalf("expected en passant target e3, got %#x", next.EnPassant)
	}
	if next.WhiteToMove {
		t.Fatalf("side to move should have toggled to black")
	}
}

func TestApplyMoveCastlingKingside(t *testing.T) {
	board, _, _, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	next := ApplyMove(board, Move{From: SE1, To: SG1})

	if next.Pieces[ColorWhite][King]&SquareMask(SG1) == 0 {
		t.Fatalf("king should be on g1")
	}
	if next.Pieces[ColorWhite][Rook]&SquareMask(SF1) == 0 {
		t.Fatalf("rook should be on f1")
	}
	if next.Castle&(CastleWhiteKingsideMask|CastleWhiteQueensideMask) != 0 {
		t.Fatalf("white should have lost all castling rights, got %#x", next.Castle)
	}
	if next.Castle&(CastleBlackKingsideMask|CastleBlackQueensideMask) == 0 {
		t.Fatalf("black's castling rights should be untouched")
	}
}

func TestApplyMoveEnPassantCapture(t *testing.T) {
	board, _, _, err := ParseFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	if err != nil {
		t.Fatal(err)
	}
	next := ApplyMove(board, Move{From: SE5, To: SD6})

	if next.Pieces[ColorBlack][Pawn]&SquareMask(SD5) != 0 {
		t.Fatalf("captured black pawn should be removed from d5")
	}
	if next.Pieces[ColorWhite][Pawn]&SquareMask(SD6) == 0 {
		t.Fatalf("capturing pawn should be on d6")
	}
	if next.EnPassant != 0 {
		t.Fatalf("en passant target should be cleared after capture")
	}
}

func TestApplyMovePromotion(t *testing.T) {
	board, _, _, err := ParseFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	next := ApplyMove(board, Move{From: SA7, To: SA8, Promotion: PromotionQueen})

	if next.Pieces[ColorWhite][Pawn] != 0 {
		t.Fatalf("no white pawns should remain")
	}
	if next.Pieces[ColorWhite][Queen]&SquareMask(SA8) == 0 {
		t.Fatalf("a queen should appear on a8")
	}
}

func TestCaptureErodesCastleRights(t *testing.T) {
	board, _, _, err := ParseFEN("4k2r/8/8/8/8/8/8/R3K2R w Qk - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	captured := ApplyMove(board, Move{From: SH1, To: SH8})
	if captured.Castle&CastleBlackKingsideMask == CastleBlackKingsideMask {
		t.Fatalf("capturing the h8 rook should clear black's kingside right")
	}
}

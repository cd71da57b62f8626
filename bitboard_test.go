package zugzwang

import "testing"

func TestShiftsKillWraparound(t *testing.T) {
	aFilePawn := SquareMask(SA4)
	if shiftWest(aFilePawn) != 0 {
		t.Fatalf("shiftWest from the A file should wrap to nothing, got %#x", shiftWest(aFilePawn))
	}
	hFilePawn := SquareMask(SH4)
	if shiftEast(hFilePawn) != 0 {
		t.Fatalf("shiftEast from the H file should wrap to nothing, got %#x", shiftEast(hFilePawn))
	}
	if shiftNE(hFilePawn) != 0 {
		t.Fatalf("shiftNE from the H file should wrap to nothing, got %#x", shiftNE(hFilePawn))
	}
}

func TestPopCountAndLSB(t *testing.T) {
	bb := SquareMask(SA1) | SquareMask(SD4) | SquareMask(SH8)
	if got := bb.PopCount(); got != 3 {
		t.Fatalf("expected popcount 3, got %d", got)
	}
	if got := bb.LSB(); got != SA1 {
		t.Fatalf("expected LSB %d, got %d", SA1, got)
	}
	if got := bb.MSB(); got != SH8 {
		t.Fatalf("expected MSB %d, got %d", SH8, got)
	}
}

func TestPopLSBDrains(t *testing.T) {
	bb := SquareMask(SB2) | SquareMask(SG7)
	first := PopLSB(&bb)
	if first != SB2 {
		t.Fatalf("expected first square %d, got %d", SB2, first)
	}
	second := PopLSB(&bb)
	if second != SG7 {
		t.Fatalf("expected second square %d, got %d", SG7, second)
	}
	if bb != 0 {
		t.Fatalf("expected bitboard drained to 0, got %#x", bb)
	}
}

func TestSquareIteratorOrder(t *testing.T) {
	bb := SquareMask(SH8) | SquareMask(SA1) | SquareMask(SD4)
	var got []int
	for it := bb.Squares(); ; {
		sq, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, sq)
	}
	want := []int{SA1, SD4, SH8}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

// bitboard.go implements the 64-bit set primitives every other package in
// this module is built on: file-masked shifts, population count, bit scan,
// and a lazy iterator over set bits.
package zugzwang

import "math/bits"

// BitBoard is a set of squares, one bit per square. Bit i corresponds to
// square i (0 = a1, 7 = h1, 56 = a8, 63 = h8).
type BitBoard uint64

// File and rank masks used to kill wraparound when shifting a BitBoard
// east/west across the board edge.
const (
	FileA BitBoard = 0x0101010101010101
	FileB BitBoard = FileA << 1
	FileG BitBoard = FileA << 6
	FileH BitBoard = FileA << 7

	Rank1 BitBoard = 0xFF
	Rank2 BitBoard = Rank1 << (8 * 1)
	Rank3 BitBoard = Rank1 << (8 * 2)
	Rank4 BitBoard = Rank1 << (8 * 3)
	Rank5 BitBoard = Rank1 << (8 * 4)
	Rank6 BitBoard = Rank1 << (8 * 5)
	Rank7 BitBoard = Rank1 << (8 * 6)
	Rank8 BitBoard = Rank1 << (8 * 7)

	notAFile  BitBoard = ^FileA
	notHFile  BitBoard = ^FileH
	notABFile BitBoard = ^(FileA | FileB)
	notGHFile BitBoard = ^(FileG | FileH)

	AllSquares BitBoard = 0xFFFFFFFFFFFFFFFF
)

// Single-step directional shifts, file-masked so a piece on the A or H file
// never wraps onto the opposite edge.
func shiftNorth(b BitBoard) BitBoard { return b << 8 }
func shiftSouth(b BitBoard) BitBoard { return b >> 8 }
func shiftEast(b BitBoard) BitBoard  { return (b & notHFile) << 1 }
func shiftWest(b BitBoard) BitBoard  { return (b & notAFile) >> 1 }
func shiftNE(b BitBoard) BitBoard    { return (b & notHFile) << 9 }
func shiftNW(b BitBoard) BitBoard    { return (b & notAFile) << 7 }
func shiftSE(b BitBoard) BitBoard    { return (b & notHFile) >> 7 }
func shiftSW(b BitBoard) BitBoard    { return (b & notAFile) >> 9 }

// PopCount returns the number of set bits in b.
func (b BitBoard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// LSB returns the index of the least significant set bit, or 64 if b is empty.
func (b BitBoard) LSB() int { return bits.TrailingZeros64(uint64(b)) }

// MSB returns the index of the most significant set bit, or -1 if b is empty.
func (b BitBoard) MSB() int { return 63 - bits.LeadingZeros64(uint64(b)) }

// PopLSB removes the least significant set bit from *b and returns its index.
func PopLSB(b *BitBoard) int {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// Squares returns a lazily-evaluated iterator over the set squares of b, in
// ascending order. Calling Next repeatedly drains the underlying copy, not b
// itself.
func (b BitBoard) Squares() SquareIterator { return SquareIterator{bits: b} }

// SquareIterator walks the set bits of a BitBoard without allocating.
type SquareIterator struct{ bits BitBoard }

// Next returns the next set square and true, or (0, false) once exhausted.
func (it *SquareIterator) Next() (int, bool) {
	if it.bits == 0 {
		return 0, false
	}
	return PopLSB(&it.bits), true
}

// SquareMask returns the single-bit BitBoard for the given square index.
func SquareMask(sq int) BitBoard { return BitBoard(1) << uint(sq) }

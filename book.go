// book.go reads a Polyglot-style opening book: a flat file of 16-byte,
// big-endian records sorted by position key. Records sharing a key form a
// weighted multiset of alternative replies.
package zugzwang

import (
	"encoding/binary"
	"fmt"
	"math/rand"
	"os"
	"sort"
)

const bookRecordSize = 16

// bookEntry is one decoded record.
type bookEntry struct {
	key    uint64
	move   Move
	weight uint16
}

// Book is an in-memory, key-sorted opening book.
type Book struct {
	entries []bookEntry
}

// LoadBook reads and decodes every record in path. Records need not arrive
// in key order; LoadBook sorts them so Lookup can binary-search.
func LoadBook(path string) (*Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("zugzwang: reading book %q: %w", path, err)
	}
	if len(data)%bookRecordSize != 0 {
		return nil, fmt.Errorf("zugzwang: book %q has %d bytes, not a multiple of %d", path, len(data), bookRecordSize)
	}

	entries := make([]bookEntry, 0, len(data)/bookRecordSize)
	for offset := 0; offset < len(data); offset += bookRecordSize {
		record := data[offset : offset+bookRecordSize]
		key := binary.BigEndian.Uint64(record[0:8])
		packed := binary.BigEndian.Uint16(record[8:10])
		weight := binary.BigEndian.Uint16(record[10:12])
		entries = append(entries, bookEntry{
			key:    key,
			move:   decodeBookMove(packed, weight),
			weight: weight,
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
	log.Infof("loaded opening book %q: %d records", path, len(entries))
	return &Book{entries: entries}, nil
}

// decodeBookMove unpacks a Polyglot move: bits 0-5 to-square, bits 6-11
// from-square, bits 12-14 promotion piece, bit 15 reserved.
func decodeBookMove(packed, weight uint16) Move {
	return Move{
		To:        int(packed & 0x3f),
		From:      int((packed >> 6) & 0x3f),
		Promotion: PromotionPiece((packed >> 12) & 0x7),
		Weight:    weight,
	}
}

// Lookup returns a weighted-random move for key, or (Move{}, false) if the
// key is absent.
func (book *Book) Lookup(key uint64) (Move, bool) {
	lo := sort.Search(len(book.entries), func(i int) bool { return book.entries[i].key >= key })
	hi := lo
	for hi < len(book.entries) && book.entries[hi].key == key {
		hi++
	}
	if lo == hi {
		return Move{}, false
	}

	var total int
	for _, e := range book.entries[lo:hi] {
		total += int(e.weight) + 1
	}
	pick := rand.Intn(total)
	for _, e := range book.entries[lo:hi] {
		pick -= int(e.weight) + 1
		if pick < 0 {
			return e.move, true
		}
	}
	return book.entries[hi-1].move, true
}

package zugzwang

import (
	"os"
	"testing"
)

// TestMain initializes the package's precomputed tables once for the whole
// test binary; every other _test.go file assumes attack and Zobrist tables
// are already populated.
func TestMain(m *testing.M) {
	InitAttackTables()
	InitZobristKeys()
	os.Exit(m.Run())
}

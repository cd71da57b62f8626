// Command zugzwang is a perft and search demonstration harness built on the
// zugzwang engine library. It is a collaborator over the core's FindMove,
// GenerateMoves, and FEN functions, not part of the core contract.
package main

import (
	"flag"
	"log"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/dkazarin/zugzwang"
)

const startingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func main() {
	fen := flag.String("fen", startingPositionFEN, "FEN position to search or walk")
	depth := flag.Int("depth", 0, "search or perft depth (0 uses the config's search_depth)")
	perft := flag.Bool("perft", false, "count leaf nodes at depth instead of searching")
	bookPath := flag.String("book", "", "path to a Polyglot-format opening book")
	useColor := flag.Bool("color", true, "colorize the rendered board")
	config := flag.String("config", "", "path to a TOML engine config file")

	flag.Parse()

	zugzwang.InitAttackTables()
	zugzwang.InitZobristKeys()

	cfg := zugzwang.DefaultEngineConfig()
	if *config != "" {
		loaded, err := zugzwang.LoadEngineConfig(*config)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}
	zugzwang.SetLogLevel(cfg.ParsedLogLevel())

	searchDepth := *depth
	if searchDepth <= 0 {
		searchDepth = cfg.SearchDepth
	}

	board, halfmove, fullmove, err := zugzwang.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("parsing FEN: %v", err)
	}

	if *perft {
		runPerft(board, searchDepth)
		return
	}

	var book *zugzwang.Book
	path := *bookPath
	if path == "" {
		path = cfg.BookPath
	}
	if path != "" {
		book, err = zugzwang.LoadBook(path)
		if err != nil {
			log.Fatalf("loading book: %v", err)
		}
	}

	table := zugzwang.NewTranspositionTable()
	table.SetAgeLimit(cfg.TableAgeLimit)
	start := time.Now()
	successor, score := zugzwang.FindMove(board, searchDepth, 0, table, book)
	elapsed := time.Since(start)

	mover := zugzwang.ColorWhite
	if !board.WhiteToMove {
		mover = zugzwang.ColorBlack
	}
	move := zugzwang.DiffMove(board, successor, mover)

	printBoard(successor, *useColor)
	log.Printf("move: %s  score: %.2f  elapsed: %s", zugzwang.FormatUCI(move), score, elapsed)
	log.Printf("resulting fen: %s", zugzwang.SerializeFEN(successor, halfmove+1, fullmove))
}

// runPerft walks the legal move tree to depth and reports the leaf count
// and elapsed time.
func runPerft(board zugzwang.Board, depth int) {
	start := time.Now()
	nodes := perft(board, depth)
	elapsed := time.Since(start)
	log.Printf("depth %d: %d nodes in %s", depth, nodes, elapsed)
}

func perft(board zugzwang.Board, depth int) int {
	if depth == 0 {
		return 1
	}
	successors := zugzwang.GenerateMoves(board)
	if depth == 1 {
		return len(successors)
	}
	nodes := 0
	for _, s := range successors {
		nodes += perft(s.Board, depth-1)
	}
	return nodes
}

// printBoard renders board to stdout, one rank per line, optionally
// colorizing white pieces cyan and black pieces magenta.
func printBoard(board zugzwang.Board, useColor bool) {
	white := color.New(color.FgCyan).SprintFunc()
	black := color.New(color.FgMagenta).SprintFunc()

	var out strings.Builder
	out.WriteString("  a b c d e f g h\n")
	for rank := 7; rank >= 0; rank-- {
		out.WriteString(string(rune('1' + rank)))
		out.WriteByte(' ')
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			kind, pieceColor, found := board.PieceAt(sq)
			symbol := "."
			if found {
				symbol = string(pieceLetter(kind, pieceColor))
			}
			if useColor && found {
				if pieceColor == zugzwang.ColorWhite {
					symbol = white(symbol)
				} else {
					symbol = black(symbol)
				}
			}
			out.WriteString(symbol)
			out.WriteByte(' ')
		}
		out.WriteByte('\n')
	}
	log.Print("\n" + out.String())
}

func pieceLetter(kind zugzwang.Piece, c zugzwang.Color) byte {
	letters := [2][6]byte{
		zugzwang.ColorWhite: {'P', 'N', 'B', 'R', 'Q', 'K'},
		zugzwang.ColorBlack: {'p', 'n', 'b', 'r', 'q', 'k'},
	}
	return letters[c][kind]
}

// fen.go parses and serializes Forsyth-Edwards Notation. Parse errors are
// returned as a concrete FENError value rather than a panic, so a malformed
// position string from a GUI or test fixture is just another return value
// at the boundary.
package zugzwang

import (
	"fmt"
	"strconv"
	"strings"
)

// FENErrorKind classifies why ParseFEN rejected its input.
type FENErrorKind int

const (
	ErrWrongFieldCount FENErrorKind = iota
	ErrWrongRankCount
	ErrInvalidPiece
	ErrRankLength
	ErrInvalidActiveColor
	ErrInvalidCastling
	ErrInvalidEnPassant
	ErrInvalidHalfmoveClock
	ErrInvalidFullmoveNumber
)

// FENError reports a malformed FEN string, naming both the category of
// mistake and the offending text.
type FENError struct {
	Kind   FENErrorKind
	Detail string
}

func (e *FENError) Error() string {
	return fmt.Sprintf("fen: %s", e.Detail)
}

var fenPieceKind = map[rune]struct {
	kind  Piece
	color Color
}{
	'P': {Pawn, ColorWhite}, 'N': {Knight, ColorWhite}, 'B': {Bishop, ColorWhite},
	'R': {Rook, ColorWhite}, 'Q': {Queen, ColorWhite}, 'K': {King, ColorWhite},
	'p': {Pawn, ColorBlack}, 'n': {Knight, ColorBlack}, 'b': {Bishop, ColorBlack},
	'r': {Rook, ColorBlack}, 'q': {Queen, ColorBlack}, 'k': {King, ColorBlack},
}

// ParseFEN decodes a standard six-field FEN string into a Board plus the
// halfmove clock and fullmove number, which the core reads but does not
// track internally (§6.1); callers that round-trip a position must carry
// these two values alongside the Board themselves.
func ParseFEN(fen string) (Board, int, int, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return Board{}, 0, 0, &FENError{ErrWrongFieldCount,
			fmt.Sprintf("expected 6 space-separated fields, got %d", len(fields))}
	}

	var board Board
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return Board{}, 0, 0, &FENError{ErrWrongRankCount,
			fmt.Sprintf("expected 8 ranks, got %d", len(ranks))}
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			entry, ok := fenPieceKind[ch]
			if !ok {
				return Board{}, 0, 0, &FENError{ErrInvalidPiece, fmt.Sprintf("invalid piece character %q", ch)}
			}
			if file >= 8 {
				return Board{}, 0, 0, &FENError{ErrRankLength, fmt.Sprintf("rank %q is longer than 8 files", rankStr)}
			}
			sq := rank*8 + file
			board.Pieces[entry.color][entry.kind] |= SquareMask(sq)
			file++
		}
		if file != 8 {
			return Board{}, 0, 0, &FENError{ErrRankLength, fmt.Sprintf("rank %q does not span 8 files", rankStr)}
		}
	}

	switch fields[1] {
	case "w":
		board.WhiteToMove = true
	case "b":
		board.WhiteToMove = false
	default:
		return Board{}, 0, 0, &FENError{ErrInvalidActiveColor, fmt.Sprintf("invalid active color %q", fields[1])}
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				board.Castle |= CastleWhiteKingsideMask
			case 'Q':
				board.Castle |= CastleWhiteQueensideMask
			case 'k':
				board.Castle |= CastleBlackKingsideMask
			case 'q':
				board.Castle |= CastleBlackQueensideMask
			default:
				return Board{}, 0, 0, &FENError{ErrInvalidCastling, fmt.Sprintf("invalid castling character %q", ch)}
			}
		}
	}

	if fields[3] != "-" {
		sq, ok := parseSquareName(fields[3])
		if !ok || SquareMask(sq)&(Rank3|Rank6) == 0 {
			return Board{}, 0, 0, &FENError{ErrInvalidEnPassant, fmt.Sprintf("invalid en passant square %q", fields[3])}
		}
		board.EnPassant = SquareMask(sq)
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return Board{}, 0, 0, &FENError{ErrInvalidHalfmoveClock, fmt.Sprintf("invalid halfmove clock %q", fields[4])}
	}

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return Board{}, 0, 0, &FENError{ErrInvalidFullmoveNumber, fmt.Sprintf("invalid fullmove number %q", fields[5])}
	}

	board.Recompute()
	return board, halfmove, fullmove, nil
}

// parseSquareName decodes algebraic notation ("e4") into a square index.
func parseSquareName(s string) (int, bool) {
	if len(s) != 2 {
		return 0, false
	}
	file := s[0] - 'a'
	rank := s[1] - '1'
	if file > 7 || rank > 7 {
		return 0, false
	}
	return int(rank)*8 + int(file), true
}

// SerializeFEN renders board, halfmove, and fullmove back into standard FEN.
func SerializeFEN(board Board, halfmove, fullmove int) string {
	var placement strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			kind, color, found := board.PieceAt(sq)
			if !found {
				empty++
				continue
			}
			if empty > 0 {
				placement.WriteByte(byte('0' + empty))
				empty = 0
			}
			placement.WriteByte(pieceSymbols[color][kind])
		}
		if empty > 0 {
			placement.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			placement.WriteByte('/')
		}
	}

	active := "b"
	if board.WhiteToMove {
		active = "w"
	}

	var castling strings.Builder
	if board.Castle&CastleWhiteKingsideMask == CastleWhiteKingsideMask {
		castling.WriteByte('K')
	}
	if board.Castle&CastleWhiteQueensideMask == CastleWhiteQueensideMask {
		castling.WriteByte('Q')
	}
	if board.Castle&CastleBlackKingsideMask == CastleBlackKingsideMask {
		castling.WriteByte('k')
	}
	if board.Castle&CastleBlackQueensideMask == CastleBlackQueensideMask {
		castling.WriteByte('q')
	}
	castlingStr := castling.String()
	if castlingStr == "" {
		castlingStr = "-"
	}

	ep := "-"
	if board.EnPassant != 0 {
		ep = Square2String[board.EnPassant.LSB()]
	}

	return fmt.Sprintf("%s %s %s %s %d %d", placement.String(), active, castlingStr, ep, halfmove, fullmove)
}

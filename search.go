// search.go implements the search driver: an opening-book shortcut ahead of
// iterative-deepening negamax alpha-beta, with transposition-table probing
// and fail-hard bound storage at every node that expands its successors.
package zugzwang

import "sort"

// CheckmateValue is returned (with the losing side's sign) when the side to
// move has been mated. CheckmateThreshold marks the boundary above which a
// score is treated as a mate score rather than a material evaluation.
const (
	CheckmateValue     float32 = 1_000_000
	CheckmateThreshold float32 = 100_000
)

// FindMove is the engine's single entry point: given a position, a search
// depth, the table's current generation, a transposition table, and an
// optional opening book, it returns the chosen successor and its score.
func FindMove(board Board, depth, age int, table *TranspositionTable, book *Book) (Board, float32) {
	if book != nil {
		if move, ok := book.Lookup(Hash(board)); ok {
			log.Debugf("book hit at depth %d, age %d", depth, age)
			return ApplyMove(board, move), 0
		}
	}

	var bestBoard Board
	var bestScore float32
	for d := 1; d <= depth; d++ {
		bestBoard, bestScore = alphaBeta(board, d, boundNegInf, boundPosInf, board.WhiteToMove, age, table)
		log.Debugf("depth %d complete: score=%.2f table=%d entries", d, bestScore, table.Len())
	}
	table.EvictAged(age)
	return bestBoard, bestScore
}

// alphaBeta searches board to the given depth, maximizing for white and
// minimizing for black, probing and storing bounds in table as it goes.
func alphaBeta(board Board, depth int, alpha, beta float32, whiteToMove bool, age int, table *TranspositionTable) (Board, float32) {
	key := Hash(board)
	origAlpha, origBeta := alpha, beta

	if stored, ok := table.Get(key); ok && stored.Depth >= depth {
		if stored.Lower >= beta {
			return stored.Response, stored.Lower
		}
		if stored.Upper <= alpha {
			return stored.Response, stored.Upper
		}
		if stored.Lower > alpha {
			alpha = stored.Lower
		}
		if stored.Upper < beta {
			beta = stored.Upper
		}
		if alpha >= beta {
			return stored.Response, stored.Lower
		}
	}

	if depth == 0 {
		return board, Heuristic(board)
	}

	successors := GenerateMoves(board)
	if len(successors) == 0 {
		return terminalScore(board, whiteToMove)
	}
	sortSuccessorsByScore(successors)

	bestBoard := successors[0].Board
	var bestValue float32
	if whiteToMove {
		bestValue = boundNegInf
	} else {
		bestValue = boundPosInf
	}

	for _, succ := range successors {
		_, value := alphaBeta(succ.Board, depth-1, alpha, beta, !whiteToMove, age, table)
		if whiteToMove {
			if value > bestValue {
				bestValue = value
				bestBoard = succ.Board
			}
			if bestValue > alpha {
				alpha = bestValue
			}
		} else {
			if value < bestValue {
				bestValue = value
				bestBoard = succ.Board
			}
			if bestValue < beta {
				beta = bestValue
			}
		}
		if alpha >= beta {
			break
		}
	}

	bestValue = adjustMateDistance(bestValue)
	table.Store(key, Entry{
		Depth:    depth,
		Response: bestBoard,
		Age:      age,
		Lower:    boundFor(bestValue, origAlpha, origBeta, false),
		Upper:    boundFor(bestValue, origAlpha, origBeta, true),
	})

	return bestBoard, bestValue
}

// boundFor computes the fail-hard lower or upper bound to store for value,
// given the alpha/beta window the search was originally called with.
func boundFor(value, origAlpha, origBeta float32, upper bool) float32 {
	switch {
	case value <= origAlpha: // fail-low: only an upper bound is known
		if upper {
			return value
		}
		return boundNegInf
	case value >= origBeta: // fail-high: only a lower bound is known
		if upper {
			return boundPosInf
		}
		return value
	default: // exact
		return value
	}
}

// terminalScore handles a side with no legal moves: checkmate or stalemate.
func terminalScore(board Board, whiteToMove bool) (Board, float32) {
	us := board.Color()
	enemy := opposite(us)
	kingBB := board.Pieces[us][King]
	inCheck := AttacksBy(&board, enemy, board.Occupied)&kingBB != 0
	if !inCheck {
		return board, 0
	}
	if whiteToMove {
		return board, -CheckmateValue + 2
	}
	return board, CheckmateValue - 2
}

// adjustMateDistance nudges a mate score one step closer to zero so that a
// shallower, faster mate is always preferred over a deeper one.
func adjustMateDistance(value float32) float32 {
	if value > CheckmateThreshold {
		return value - 1
	}
	if value < -CheckmateThreshold {
		return value + 1
	}
	return value
}

// sortSuccessorsByScore orders successors by descending static score. The
// sort is stable so ties retain GenerateMoves's generation order (rooks,
// bishops, queens, knights, pawn pushes, pawn attacks, en passant, king,
// castles), which §5 requires for reproducible search.
func sortSuccessorsByScore(successors []Successor) {
	sort.SliceStable(successors, func(i, j int) bool {
		return successors[i].Score > successors[j].Score
	})
}

// sliding.go implements the classical ray+blocker algorithm for rook/bishop/
// queen attacks (§4.2): each direction's attack set is the precomputed ray,
// clipped at the nearest blocker found in the given occupancy. Ascending
// rays (N, NE, E, NW) clip at the nearest set bit via a trailing-zero scan;
// descending rays (S, SE, W, SW) clip via a leading-zero (MSB) scan.
//
// X-ray variants see through the first blocker, used by movegen.go to
// detect sliders that pin a piece to the king.
package zugzwang

// rayAttack returns the attack set of a single ray direction from sq,
// clipped at the first blocker present in occupied.
func rayAttack(dir, sq int, occupied BitBoard) BitBoard {
	ray := rays[dir][sq]
	blockers := ray & occupied
	if blockers == 0 {
		return ray
	}
	var blocker int
	if isAscending(dir) {
		blocker = blockers.LSB()
	} else {
		blocker = blockers.MSB()
	}
	return ray &^ rays[dir][blocker]
}

func isAscending(dir int) bool {
	return dir == DirN || dir == DirNE || dir == DirE || dir == DirNW
}

// RookAttacks returns the squares a rook on sq attacks given occupied.
func RookAttacks(sq int, occupied BitBoard) BitBoard {
	return rayAttack(DirN, sq, occupied) | rayAttack(DirE, sq, occupied) |
		rayAttack(DirS, sq, occupied) | rayAttack(DirW, sq, occupied)
}

// BishopAttacks returns the squares a bishop on sq attacks given occupied.
func BishopAttacks(sq int, occupied BitBoard) BitBoard {
	return rayAttack(DirNE, sq, occupied) | rayAttack(DirSE, sq, occupied) |
		rayAttack(DirSW, sq, occupied) | rayAttack(DirNW, sq, occupied)
}

// QueenAttacks returns the squares a queen on sq attacks given occupied.
func QueenAttacks(sq int, occupied BitBoard) BitBoard {
	return RookAttacks(sq, occupied) | BishopAttacks(sq, occupied)
}

// xrayRookAttacks removes the first blocker encountered along each
// orthogonal ray and re-clips against the remaining occupancy, exposing
// whatever lies directly behind it. Used to find rook/queen pins.
func xrayRookAttacks(sq int, occupied BitBoard) BitBoard {
	attacks := RookAttacks(sq, occupied)
	blockers := attacks & occupied
	return attacks ^ RookAttacks(sq, occupied^blockers)
}

// xrayBishopAttacks is the diagonal analogue of xrayRookAttacks, used to
// find bishop/queen pins.
func xrayBishopAttacks(sq int, occupied BitBoard) BitBoard {
	attacks := BishopAttacks(sq, occupied)
	blockers := attacks & occupied
	return attacks ^ BishopAttacks(sq, occupied^blockers)
}

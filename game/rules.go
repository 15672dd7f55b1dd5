package game

import "fmt"

// ApplyMove returns the board after mover places a disc at m and every flanked run of
// opponent discs is flipped. The input board is not modified.
//
// m must be legal for mover; anything else is a move generator bug and panics.
func ApplyMove(b Board, m Move, mover, opponent Cell) Board {
	if !m.InBounds() || b[m.Row][m.Col] != Empty {
		panic(fmt.Sprintf("apply %v: cell is not an empty board cell", m))
	}

	b[m.Row][m.Col] = mover
	flipped := 0
	for _, d := range directions {
		n := runLength(b, m.Row, m.Col, d, mover, opponent)
		for i := 1; i <= n; i++ {
			b[m.Row+i*d[0]][m.Col+i*d[1]] = mover
		}
		flipped += n
	}
	if flipped == 0 {
		panic(fmt.Sprintf("apply %v: move flips no %v discs", m, opponent))
	}
	return b
}

// Flips returns how many opponent discs a move at m would flip, 0 if it is not legal.
func Flips(b Board, m Move, mover, opponent Cell) int {
	if !m.InBounds() || b[m.Row][m.Col] != Empty {
		return 0
	}
	total := 0
	for _, d := range directions {
		total += runLength(b, m.Row, m.Col, d, mover, opponent)
	}
	return total
}

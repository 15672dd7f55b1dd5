package game

import "golang.org/x/exp/slices"

// Compass directions as (row, col) steps.
var directions = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}

// LegalMoves scans outward from every attacker disc and collects the first empty cell
// reached after crossing at least one defender disc. Moves appear once, in the order
// they are first found.
func LegalMoves(b Board, attacker, defender Cell) []Move {
	moves := []Move{}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] != attacker {
				continue
			}
			for _, d := range directions {
				if m, ok := scanFrom(b, r, c, d, defender); ok && !slices.Contains(moves, m) {
					moves = append(moves, m)
				}
			}
		}
	}
	return moves
}

func scanFrom(b Board, row, col int, d [2]int, defender Cell) (Move, bool) {
	crossed := false
	for row, col = row+d[0], col+d[1]; inBounds(row, col); row, col = row+d[0], col+d[1] {
		switch b[row][col] {
		case defender:
			crossed = true
		case Empty:
			return Move{Row: row, Col: col}, crossed
		default:
			return Move{}, false
		}
	}
	return Move{}, false
}

// IsLegal tests a single target cell: it must be empty and, in some direction, be
// followed by one or more defender discs closed off by an attacker disc.
func IsLegal(b Board, row, col int, attacker, defender Cell) bool {
	if !inBounds(row, col) || b[row][col] != Empty {
		return false
	}
	for _, d := range directions {
		if runLength(b, row, col, d, attacker, defender) > 0 {
			return true
		}
	}
	return false
}

// runLength counts the defender discs that placing attacker at (row, col) would flip in
// direction d, or 0 when the run is not closed by an attacker disc.
func runLength(b Board, row, col int, d [2]int, attacker, defender Cell) int {
	n := 0
	for r, c := row+d[0], col+d[1]; inBounds(r, c); r, c = r+d[0], c+d[1] {
		switch b[r][c] {
		case defender:
			n++
		case attacker:
			return n
		default:
			return 0
		}
	}
	return 0
}

// region is a cartesian product of row and column indices.
type region struct {
	rows, cols [2]int
}

// Regions in search priority: corners first, then edges and inner rings by how good
// they usually are for the mover, X-squares last.
var regions = []region{
	{[2]int{0, 7}, [2]int{0, 7}},
	{[2]int{0, 7}, [2]int{2, 5}},
	{[2]int{0, 7}, [2]int{3, 4}},
	{[2]int{2, 5}, [2]int{2, 5}},
	{[2]int{2, 5}, [2]int{3, 4}},
	{[2]int{1, 6}, [2]int{2, 5}},
	{[2]int{1, 6}, [2]int{3, 4}},
	{[2]int{0, 7}, [2]int{1, 6}},
	{[2]int{1, 6}, [2]int{1, 6}},
	{[2]int{3, 4}, [2]int{3, 4}},
}

// OrderedMoves returns the same set as LegalMoves, visiting empty cells region by
// region so that alpha-beta sees the promising moves first.
func OrderedMoves(b Board, attacker, defender Cell) []Move {
	moves := []Move{}
	for _, reg := range regions {
		moves = appendRegion(moves, b, reg.rows, reg.cols, attacker, defender)
		if reg.rows != reg.cols {
			moves = appendRegion(moves, b, reg.cols, reg.rows, attacker, defender)
		}
	}
	return moves
}

func appendRegion(moves []Move, b Board, rows, cols [2]int, attacker, defender Cell) []Move {
	for _, r := range rows {
		for _, c := range cols {
			if IsLegal(b, r, c, attacker, defender) {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}
	return moves
}

// HasMove reports whether attacker can play anywhere.
func HasMove(b Board, attacker, defender Cell) bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if IsLegal(b, r, c, attacker, defender) {
				return true
			}
		}
	}
	return false
}

package game

// InSecondRing reports whether m lies in the band one cell in from the edge, excluding
// the X-squares. Every weight there is negative.
func InSecondRing(m Move) bool {
	return ((m.Row == 1 || m.Row == Size-2) && m.Col > 1 && m.Col < Size-2) ||
		((m.Col == 1 || m.Col == Size-2) && m.Row > 1 && m.Row < Size-2)
}

// IsSafe is an approximate test of whether playing candidate lets the opponent take a
// wall or corner. A direction is unsafe when a run of our discs ends at an opponent
// disc, or ends at an empty cell while the opponent sits directly behind candidate.
func IsSafe(b Board, candidate Move, mover, opponent Cell) bool {
	for _, d := range directions {
		exposed := false
	walk:
		for r, c := candidate.Row+d[0], candidate.Col+d[1]; inBounds(r, c); r, c = r+d[0], c+d[1] {
			switch b[r][c] {
			case mover:
				exposed = true
			case Empty:
				pr, pc := candidate.Row-d[0], candidate.Col-d[1]
				if exposed && inBounds(pr, pc) && b[pr][pc] == opponent {
					return false
				}
				break walk
			case opponent:
				if exposed {
					return false
				}
			}
		}
	}
	return true
}

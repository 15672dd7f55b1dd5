package game

import "fmt"

// Move is a board coordinate where a disc is placed.
type Move struct {
	Row int
	Col int
}

// NoMove is returned when the side to move has no legal move.
var NoMove = Move{Row: -1, Col: -1}

var corners = [4]Move{{0, 0}, {0, Size - 1}, {Size - 1, 0}, {Size - 1, Size - 1}}

func (m Move) InBounds() bool {
	return inBounds(m.Row, m.Col)
}

func (m Move) IsCorner() bool {
	for _, c := range corners {
		if m == c {
			return true
		}
	}
	return false
}

func (m Move) String() string {
	if m == NoMove {
		return "none"
	}
	return fmt.Sprintf("[%d,%d]", m.Row, m.Col)
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

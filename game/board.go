package game

import (
	"fmt"
	"strings"
)

// Board is a row-major grid of cells. It is a value type: assignment copies the grid,
// so each search branch can own its board without further cloning.
type Board [Size][Size]Cell

// NewBoard returns the standard opening position.
func NewBoard() Board {
	var b Board
	mid := Size / 2
	b[mid-1][mid-1], b[mid][mid] = White, White
	b[mid-1][mid], b[mid][mid-1] = Black, Black
	return b
}

// FromRows builds a board from a slice grid, rejecting wrong dimensions and cell values.
func FromRows(rows [][]Cell) (Board, error) {
	var b Board
	if len(rows) != Size {
		return b, fmt.Errorf("got %d rows: %w", len(rows), ErrBoardSize)
	}
	for r, row := range rows {
		if len(row) != Size {
			return b, fmt.Errorf("row %d has %d cells: %w", r, len(row), ErrBoardSize)
		}
		copy(b[r][:], row)
	}
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// Validate reports the first cell holding a value other than Empty, Black or White.
func (b Board) Validate() error {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if !b[r][c].Valid() {
				return fmt.Errorf("cell [%d,%d] = %d: %w", r, c, b[r][c], ErrInvalidCell)
			}
		}
	}
	return nil
}

func (b Board) Get(m Move) Cell {
	return b[m.Row][m.Col]
}

func (b *Board) Set(m Move, c Cell) {
	b[m.Row][m.Col] = c
}

// Count returns the number of cells holding c.
func (b Board) Count(c Cell) int {
	n := 0
	for r := 0; r < Size; r++ {
		for col := 0; col < Size; col++ {
			if b[r][col] == c {
				n++
			}
		}
	}
	return n
}

// Discs returns the number of occupied cells.
func (b Board) Discs() int {
	return Size*Size - b.Count(Empty)
}

func (b Board) Empties() int {
	return b.Count(Empty)
}

func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			switch b[r][c] {
			case Black:
				sb.WriteByte('X')
			case White:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard reads the format produced by String: one line per row, 'X' for black,
// 'O' for white and '.' for empty. Blank lines and surrounding spaces are ignored.
func ParseBoard(s string) (Board, error) {
	var rows [][]Cell
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]Cell, 0, len(line))
		for i, ch := range line {
			switch ch {
			case 'X':
				row = append(row, Black)
			case 'O':
				row = append(row, White)
			case '.':
				row = append(row, Empty)
			default:
				return Board{}, fmt.Errorf("row %d col %d: unexpected %q: %w", len(rows), i, ch, ErrInvalidCell)
			}
		}
		rows = append(rows, row)
	}
	return FromRows(rows)
}
